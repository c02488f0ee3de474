package tui

import (
	"github.com/MKhiriev/go-formstate/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel wraps the active screen:
// 1) handles global ctrl+c quit
// 2) toggles the build info window
// 3) delegates all other messages to the screen
type RootModel struct {
	current tea.Model

	quitByUser bool
	buildInfo  models.BuildInfo

	showBuildInfo bool
}

// NewRootModel opens screen.
func NewRootModel(screen tea.Model, buildInfo models.BuildInfo) RootModel {
	return RootModel{
		current:   screen,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(k, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(k, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case key.Matches(k, keys.esc) && r.showBuildInfo:
			r.showBuildInfo = false
			return r, nil
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.current == nil {
		return renderPage("formdemo", "", "")
	}
	return r.current.View()
}
