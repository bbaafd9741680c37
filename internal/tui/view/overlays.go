package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"screenlight/internal/color"
	"screenlight/internal/session"
	"screenlight/internal/tui/components"
	"screenlight/internal/tui/model"
	"screenlight/internal/tui/utils"
)

const (
	overlayMargin    = 2
	overlayMaxWidth  = 100
	overlayChromeX   = 6 // border + padding
	overlayChromeY   = 5 // border, title, blank, footer
	logTimestampCols = 12
)

// OverlaySize returns the outer size of an overlay panel and the size of the
// viewport inside it for a width x height terminal.
func OverlaySize(width, height int) (panelW, panelH, innerW, innerH int) {
	panelW = width - 2*overlayMargin
	if panelW > overlayMaxWidth {
		panelW = overlayMaxWidth
	}
	panelH = height - overlayMargin
	innerW = panelW - overlayChromeX
	innerH = panelH - overlayChromeY
	if innerW < 1 {
		innerW = 1
	}
	if innerH < 1 {
		innerH = 1
	}
	return panelW, panelH, innerW, innerH
}

func placeOverlay(m *model.Model, out session.Output, box string) string {
	return lipgloss.Place(m.Width, m.Height, lipgloss.Center, lipgloss.Center, box,
		lipgloss.WithWhitespaceBackground(color.Lipgloss(out.Color)))
}

func renderHelpOverlay(m *model.Model, out session.Output) string {
	panelW, panelH, innerW, _ := OverlaySize(m.Width, m.Height)
	m.Help.Width = innerW
	content := m.Help.View(m.Keys) + "\n\n" +
		"Mouse: drag a slider, click a button, swipe up or down to show or hide\n" +
		"the controls, double-click to toggle them."

	box := components.NewPanel("Screen Light").
		WithContent(content).
		WithFooter("h or esc to close").
		WithDimensions(panelW, panelH).
		Render()
	return placeOverlay(m, out, box)
}

func renderLogOverlay(m *model.Model, out session.Output) string {
	panelW, panelH, _, _ := OverlaySize(m.Width, m.Height)
	box := components.NewPanel("Activity Log").
		WithType(components.PanelTypeInfo).
		WithContent(m.LogViewport.View()).
		WithFooter("L or esc to close, ↑/↓ to scroll").
		WithDimensions(panelW, panelH).
		Render()
	return placeOverlay(m, out, box)
}

// FormatLogLines fits activity log lines into width cells.
func FormatLogLines(lines []string, width int) string {
	if width < logTimestampCols {
		width = logTimestampCols
	}
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = utils.TruncateWithTail(line, width)
	}
	return strings.Join(out, "\n")
}
