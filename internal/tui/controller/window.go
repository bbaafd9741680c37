package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/tui/model"
	"screenlight/internal/tui/view"
)

// handleWindowSizeMsg records the new terminal dimensions and resizes the log
// overlay viewport to match.
func handleWindowSizeMsg(m *model.Model, msg tea.WindowSizeMsg) (*model.Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height

	_, _, innerW, innerH := view.OverlaySize(msg.Width, msg.Height)
	if m.LogViewport.Width != innerW {
		m.ActivityLogDirty = true
	}
	m.LogViewport.Width = innerW
	m.LogViewport.Height = innerH
	return m, nil
}
