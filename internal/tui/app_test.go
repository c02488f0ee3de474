package tui

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"testing"

	"github.com/MKhiriev/go-formstate/models"
	"github.com/MKhiriev/go-formstate/validation"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootModel_CtrlCQuits(t *testing.T) {
	root := NewRootModel(newTestSignup(t, testConfig()), models.NewBuildInfo("v1", "", ""))

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
	assert.True(t, updated.(RootModel).quitByUser)
}

func TestRootModel_BuildInfoWindow(t *testing.T) {
	signup := newTestSignup(t, testConfig())
	var root tea.Model = NewRootModel(signup, models.NewBuildInfo("v1.4.2", "", "abc123"))

	root, _ = root.Update(tea.KeyMsg{Type: tea.KeyF1})
	view := root.View()
	assert.Contains(t, view, "ABOUT")
	assert.Contains(t, view, "v1.4.2")
	assert.Contains(t, view, "abc123")

	// keys do not reach the screen while the window is open
	root, _ = root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Empty(t, signup.form.fields[0].Value())

	root, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Contains(t, root.View(), "SIGN UP")

	root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "x", signup.form.fields[0].Value())
}

func TestHumanizeFault(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "pass timeout", err: fmt.Errorf("validate field: %w", context.DeadlineExceeded), want: "Validation timed out"},
		{name: "panic", err: fmt.Errorf("%w: %w", validation.ErrValidatorFault, validation.ErrValidatorPanic), want: "A validator crashed, see the log file"},
		{
			name: "service timeout",
			err:  fmt.Errorf("%w at index 0: %w", validation.ErrValidatorFault, &url.Error{Op: "Get", URL: "http://x", Err: context.DeadlineExceeded}),
			want: "Check service did not answer in time",
		},
		{
			name: "connection refused",
			err:  fmt.Errorf("%w at index 0: %w", validation.ErrValidatorFault, &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}),
			want: "Check service is unavailable",
		},
		{name: "other", err: errors.New("boom"), want: "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, humanizeFault(tt.err))
		})
	}
}
