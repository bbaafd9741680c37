package view

import (
	"fmt"
	"math"

	"screenlight/internal/light"
	"screenlight/internal/session"
	"screenlight/internal/tui/design"
	"screenlight/internal/tui/model"
	"screenlight/internal/tui/utils"
)

// Control panel geometry. The panel hangs from the bottom edge: a top border,
// no bottom border, and seven content rows.
const (
	panelBorderTop  = 1
	panelInsetX     = 1 + design.SpaceSM // border + padding
	panelRows       = 7
	panelHeight     = panelBorderTop + panelRows
	rowTemperature  = 0
	rowTemperatureT = 1
	rowBrightness   = 3
	rowBrightnessT  = 4
	rowButtons      = 6
	buttonGap       = 1
	topMargin       = 1
	sideMargin      = 2
)

// Indicator and affordance texts.
const (
	AffordanceText      = "^ controls"
	WakeLockBadgeText   = "Screen Lock Active"
	WakeLockPendingText = "Requesting screen lock…"
)

// Rect is a cell rectangle on screen.
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether the cell (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return r.W > 0 && r.H > 0 && x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Empty reports whether r covers no cells.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// ButtonSpec is a panel button and where it is drawn.
type ButtonSpec struct {
	Button session.Button
	Label  string
	Active bool
	Rect   Rect
}

// PillKind distinguishes the floating labels.
type PillKind int

const (
	PillBrightness PillKind = iota
	PillTemperature
	PillNotice
	PillWakeLock
)

// PillSpec is one floating label and where it is drawn.
type PillSpec struct {
	Kind    PillKind
	Text    string
	Warning bool
	Rect    Rect
}

// Layout is the geometry of one frame. It is a pure function of the terminal
// size and the session output, so rendering and mouse hit-testing agree.
type Layout struct {
	Width  int
	Height int

	PanelOpen        bool
	Panel            Rect
	InnerWidth       int
	TemperatureTrack Rect
	BrightnessTrack  Rect
	Buttons          []ButtonSpec

	Affordance Rect
	Pills      []PillSpec
}

// ComputeLayout places every element for a width x height terminal.
func ComputeLayout(width, height int, out session.Output) Layout {
	l := Layout{Width: width, Height: height, PanelOpen: out.PanelOpen}
	if width <= 0 || height <= 0 {
		return l
	}

	if out.PanelOpen {
		l.placePanel(out)
	}
	l.placePills(out)
	return l
}

func (l *Layout) placePanel(out session.Output) {
	w := l.Width * 9 / 10
	if w > design.ControlPanelMaxWidth {
		w = design.ControlPanelMaxWidth
	}
	if w < design.ControlPanelMinWidth {
		w = design.ControlPanelMinWidth
	}
	if w > l.Width {
		w = l.Width
	}
	y := l.Height - panelHeight
	if y < 0 {
		y = 0
	}
	l.Panel = Rect{X: (l.Width - w) / 2, Y: y, W: w, H: l.Height - y}
	l.InnerWidth = w - 2*panelInsetX
	if l.InnerWidth < 1 {
		l.InnerWidth = 1
	}

	cx, cy := l.Panel.X+panelInsetX, l.Panel.Y+panelBorderTop
	l.TemperatureTrack = Rect{X: cx, Y: cy + rowTemperatureT, W: l.InnerWidth, H: 1}
	l.BrightnessTrack = Rect{X: cx, Y: cy + rowBrightnessT, W: l.InnerWidth, H: 1}
	l.Buttons = layoutButtons(buttonSpecs(out, false), cx, cy+rowButtons, l.InnerWidth)
	if l.Buttons == nil {
		l.Buttons = layoutButtons(buttonSpecs(out, true), cx, cy+rowButtons, l.InnerWidth)
	}
}

func buttonSpecs(out session.Output, compact bool) []ButtonSpec {
	wake, full := "Keep Screen On", "Fullscreen"
	if compact {
		wake, full = "Lock", "Full"
	}
	switch {
	case out.WakeLockActive && compact:
		wake = "Unlock"
	case out.WakeLockActive:
		wake = "Disable Lock"
	case out.WakeLockPending:
		wake = "Requesting…"
		if compact {
			wake = "…"
		}
	}
	if out.FullscreenActive {
		full = "Exit Fullscreen"
		if compact {
			full = "Window"
		}
	}
	return []ButtonSpec{
		{Button: session.ButtonWakeLock, Label: wake, Active: out.WakeLockActive},
		{Button: session.ButtonFullscreen, Label: full, Active: out.FullscreenActive},
		{Button: session.ButtonCloseMenu, Label: "Hide"},
	}
}

// layoutButtons centers specs on row y. It returns nil if they do not fit.
func layoutButtons(specs []ButtonSpec, x, y, width int) []ButtonSpec {
	total := 0
	for i := range specs {
		specs[i].Rect = Rect{Y: y, W: utils.CellWidth(specs[i].Label) + 2*design.SpaceXS, H: 1}
		total += specs[i].Rect.W
	}
	total += buttonGap * (len(specs) - 1)
	if total > width {
		return nil
	}
	cursor := x + (width-total)/2
	for i := range specs {
		specs[i].Rect.X = cursor
		cursor += specs[i].Rect.W + buttonGap
	}
	return specs
}

func (l *Layout) placePills(out session.Output) {
	maxW := l.Width - 2
	if maxW < 1 {
		maxW = 1
	}
	pillRect := func(text string, x, y int) Rect {
		w := utils.CellWidth(text) + 2*design.SpaceXS
		if w > maxW {
			w = maxW
		}
		if x < 0 {
			x = (l.Width - w) / 2
		}
		return Rect{X: x, Y: y, W: w, H: 1}
	}

	var badge *PillSpec
	if out.WakeLockActive || out.WakeLockPending {
		text := WakeLockBadgeText
		if !out.WakeLockActive {
			text = WakeLockPendingText
		}
		w := utils.CellWidth(text) + 2*design.SpaceXS
		r := pillRect(text, l.Width-w-sideMargin, topMargin)
		if r.X < 0 {
			r.X = 0
		}
		badge = &PillSpec{Kind: PillWakeLock, Text: text, Rect: r}
	}

	var centered []PillSpec
	if out.BrightnessIndicatorVisible {
		centered = append(centered, PillSpec{Kind: PillBrightness, Text: fmt.Sprintf("Brightness: %d%%", out.Setting.BrightnessPercent)})
	}
	if out.TemperatureIndicatorVisible {
		centered = append(centered, PillSpec{Kind: PillTemperature, Text: fmt.Sprintf("Temperature: %dK", out.Setting.TemperatureKelvin)})
	}
	if out.NoticeVisible && out.Notice != "" {
		centered = append(centered, PillSpec{Kind: PillNotice, Text: out.Notice, Warning: true})
	}

	row := topMargin
	if badge != nil && len(centered) > 0 {
		first := pillRect(centered[0].Text, -1, row)
		if first.X+first.W > badge.Rect.X {
			row++
		}
	}
	for i := range centered {
		centered[i].Rect = pillRect(centered[i].Text, -1, row+i)
	}

	if badge != nil {
		l.Pills = append(l.Pills, *badge)
	}
	l.Pills = append(l.Pills, centered...)

	if out.ToggleAffordanceVisible {
		y := l.Height - 2
		if y < 0 {
			y = 0
		}
		l.Affordance = pillRect(AffordanceText, -1, y)
	}
}

// ButtonAt returns the button under (x, y). The affordance counts as the
// show-menu button.
func (l Layout) ButtonAt(x, y int) (session.Button, bool) {
	for _, b := range l.Buttons {
		if b.Rect.Contains(x, y) {
			return b.Button, true
		}
	}
	if l.Affordance.Contains(x, y) {
		return session.ButtonShowMenu, true
	}
	return 0, false
}

// SliderAt returns the slider whose track or label row is under (x, y).
func (l Layout) SliderAt(x, y int) model.Slider {
	if !l.PanelOpen {
		return model.SliderNone
	}
	if trackHit(l.TemperatureTrack, x, y) {
		return model.SliderTemperature
	}
	if trackHit(l.BrightnessTrack, x, y) {
		return model.SliderBrightness
	}
	return model.SliderNone
}

// trackHit accepts the track row and the label row above it.
func trackHit(track Rect, x, y int) bool {
	return track.Contains(x, y) || track.Contains(x, y+1)
}

// InPanel reports whether (x, y) is on the open control panel.
func (l Layout) InPanel(x, y int) bool {
	return l.PanelOpen && l.Panel.Contains(x, y)
}

// Track returns the track rect of s.
func (l Layout) Track(s model.Slider) Rect {
	switch s {
	case model.SliderTemperature:
		return l.TemperatureTrack
	case model.SliderBrightness:
		return l.BrightnessTrack
	default:
		return Rect{}
	}
}

// SliderStep is the value granularity of each slider.
func SliderStep(s model.Slider) int {
	if s == model.SliderTemperature {
		return 100
	}
	return 1
}

func sliderRange(s model.Slider) (int, int) {
	if s == model.SliderTemperature {
		return light.MinTemperature, light.MaxTemperature
	}
	return light.MinBrightness, light.MaxBrightness
}

// SliderValue maps column x on track to a value of s, snapped to the
// slider's step. Columns outside the track clamp to the ends.
func SliderValue(s model.Slider, track Rect, x int) int {
	lo, hi := sliderRange(s)
	if track.W <= 1 {
		return lo
	}
	frac := float64(x-track.X) / float64(track.W-1)
	frac = math.Max(0, math.Min(1, frac))
	step := float64(SliderStep(s))
	v := float64(lo) + frac*float64(hi-lo)
	v = float64(lo) + math.Round((v-float64(lo))/step)*step
	return int(math.Min(float64(hi), v))
}

// SliderFraction is the filled share of s's track for value v.
func SliderFraction(s model.Slider, v int) float64 {
	lo, hi := sliderRange(s)
	f := float64(v-lo) / float64(hi-lo)
	return math.Max(0, math.Min(1, f))
}
