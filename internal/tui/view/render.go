package view

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"screenlight/internal/color"
	"screenlight/internal/light"
	"screenlight/internal/session"
	"screenlight/internal/tui/components"
	"screenlight/internal/tui/design"
	"screenlight/internal/tui/model"
	"screenlight/internal/tui/utils"
)

// Render renders the UI according to the current model state.
func Render(m *model.Model) string {
	if m.CurrentAppMode == model.ModeQuitting {
		return m.QuittingMessage
	}
	if m.Width <= 0 || m.Height <= 0 {
		return ""
	}

	out := m.Output()
	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		return renderHelpOverlay(m, out)
	case model.ModeLogOverlay:
		return renderLogOverlay(m, out)
	default:
		return renderLight(ComputeLayout(m.Width, m.Height, out), out)
	}
}

// segment is pre-styled text occupying w cells from column x.
type segment struct {
	x    int
	w    int
	text string
}

func renderLight(lay Layout, out session.Output) string {
	rows := make([][]segment, lay.Height)
	put := func(y int, s segment) {
		if y >= 0 && y < len(rows) {
			rows[y] = append(rows[y], s)
		}
	}

	if lay.PanelOpen {
		for i, line := range renderControlPanel(lay, out) {
			put(lay.Panel.Y+i, segment{x: lay.Panel.X, w: lipgloss.Width(line), text: line})
		}
	}
	for _, p := range lay.Pills {
		put(p.Rect.Y, pillSegment(p.Text, p.Rect, p.Warning))
	}
	bg := lipgloss.NewStyle().Background(color.Lipgloss(out.Color))
	if !lay.Affordance.Empty() {
		put(lay.Affordance.Y, affordanceSegment(bg.Foreground(color.Muted(out.Color)), lay.Affordance))
	}

	lines := make([]string, lay.Height)
	for y := range lines {
		lines[y] = composeRow(lay.Width, bg, rows[y])
	}
	return strings.Join(lines, "\n")
}

func pillSegment(text string, r Rect, warning bool) segment {
	p := components.NewPill(text).WithMaxWidth(r.W)
	if warning {
		p.AsWarning()
	}
	rendered := p.Render()
	return segment{x: r.X, w: lipgloss.Width(rendered), text: rendered}
}

// affordanceSegment draws the toggle hint straight on the light in ink that
// stays readable at any setting.
func affordanceSegment(style lipgloss.Style, r Rect) segment {
	text := style.Padding(0, design.SpaceXS).Render(utils.TruncateString(AffordanceText, r.W-2*design.SpaceXS))
	return segment{x: r.X, w: lipgloss.Width(text), text: text}
}

// composeRow lays segments over a row painted with bg. Segments that overlap
// an earlier one or run past the edge are dropped.
func composeRow(width int, bg lipgloss.Style, segs []segment) string {
	sort.SliceStable(segs, func(i, j int) bool { return segs[i].x < segs[j].x })

	var b strings.Builder
	cursor := 0
	for _, s := range segs {
		if s.x < cursor || s.x+s.w > width {
			continue
		}
		if gap := s.x - cursor; gap > 0 {
			b.WriteString(bg.Render(strings.Repeat(" ", gap)))
		}
		b.WriteString(s.text)
		cursor = s.x + s.w
	}
	if gap := width - cursor; gap > 0 {
		b.WriteString(bg.Render(strings.Repeat(" ", gap)))
	}
	return b.String()
}

func renderControlPanel(lay Layout, out session.Output) []string {
	w := lay.InnerWidth
	blank := strings.Repeat(" ", w)

	rows := make([]string, panelRows)
	for i := range rows {
		rows[i] = blank
	}
	rows[rowTemperature] = labelRow("Color Temperature", fmt.Sprintf("%dK", out.Setting.TemperatureKelvin), w)
	rows[rowTemperatureT] = sliderTrack(
		SliderFraction(model.SliderTemperature, out.Setting.TemperatureKelvin), w,
		light.KelvinToRGB(light.MinTemperature).Hex(), light.KelvinToRGB(light.MaxTemperature).Hex())
	rows[rowBrightness] = labelRow("Brightness", fmt.Sprintf("%d%%", out.Setting.BrightnessPercent), w)
	rows[rowBrightnessT] = sliderTrack(
		SliderFraction(model.SliderBrightness, out.Setting.BrightnessPercent), w,
		light.Black.Hex(), light.KelvinToRGB(out.Setting.TemperatureKelvin).Hex())
	rows[rowButtons] = buttonRow(lay, w)

	box := design.ControlPanelStyle.
		Width(lay.Panel.W - design.ControlPanelStyle.GetHorizontalBorderSize()).
		Render(strings.Join(rows, "\n"))
	return strings.Split(box, "\n")
}

func labelRow(label, value string, width int) string {
	vw := utils.CellWidth(value)
	if vw >= width {
		return design.ControlValueStyle.Render(utils.PadRight(value, width))
	}
	label = utils.PadRight(utils.TruncateWithTail(label, width-vw-1), width-vw)
	return design.ControlLabelStyle.Render(label) + design.ControlValueStyle.Render(value)
}

func sliderTrack(fraction float64, width int, from, to string) string {
	bar := progress.New(
		progress.WithWidth(width),
		progress.WithoutPercentage(),
		progress.WithGradient(from, to),
	)
	return bar.ViewAs(fraction)
}

func buttonRow(lay Layout, width int) string {
	origin := lay.Panel.X + panelInsetX
	var b strings.Builder
	cursor := 0
	for _, btn := range lay.Buttons {
		x := btn.Rect.X - origin
		if x > cursor {
			b.WriteString(design.ControlLabelStyle.Render(strings.Repeat(" ", x-cursor)))
		}
		style := design.ButtonStyle
		switch {
		case btn.Active:
			style = design.ButtonActiveStyle
		case btn.Button == session.ButtonWakeLock && strings.HasPrefix(btn.Label, "Requesting"):
			style = design.ButtonPendingStyle
		}
		b.WriteString(style.Render(btn.Label))
		cursor = x + btn.Rect.W
	}
	if cursor < width {
		b.WriteString(design.ControlLabelStyle.Render(strings.Repeat(" ", width-cursor)))
	}
	return b.String()
}
