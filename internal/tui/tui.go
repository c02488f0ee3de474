package tui

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-formstate/field"
	"github.com/MKhiriev/go-formstate/internal/config"
	"github.com/MKhiriev/go-formstate/internal/logger"
	"github.com/MKhiriev/go-formstate/models"
	tea "github.com/charmbracelet/bubbletea"
)

// TUI runs the signup demo.
type TUI struct {
	signup    *SignupModel
	buildInfo models.BuildInfo
	log       *logger.Logger
}

// New builds the signup screen from cfg.
func New(ctx context.Context, cfg *config.StructuredConfig, buildInfo models.BuildInfo, log *logger.Logger) (*TUI, error) {
	form, err := newSignupForm(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("build signup form: %w", err)
	}

	return &TUI{
		signup:    newSignupModel(ctx, form, cfg.Validation.Timeout, cfg.Validation.AutoValidate),
		buildInfo: buildInfo,
		log:       log,
	}, nil
}

// Run shows the screen until the form is accepted or the user quits. It
// returns the accepted values, or [ErrUserQuit].
func (t *TUI) Run() (field.Values, error) {
	root := NewRootModel(t.signup, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen()).Run()
	if err != nil {
		return nil, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return nil, tea.ErrProgramKilled
	}
	if result.quitByUser || t.signup.Accepted() == nil {
		return nil, ErrUserQuit
	}

	t.log.Info().Strs("fields", t.signup.form.form.Names()).Msg("signup form accepted")
	return t.signup.Accepted(), nil
}
