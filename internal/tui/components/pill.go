package components

import (
	"github.com/charmbracelet/lipgloss"

	"screenlight/internal/tui/design"
	"screenlight/internal/tui/utils"
)

// Pill is a one-line rounded label floating over the light: the transient
// indicators, the wake lock badge and the menu affordance.
type Pill struct {
	Text     string
	MaxWidth int
	Warning  bool
}

// NewPill creates a pill for text.
func NewPill(text string) *Pill {
	return &Pill{Text: text}
}

// WithMaxWidth limits the rendered width, text included padding.
func (p *Pill) WithMaxWidth(w int) *Pill {
	p.MaxWidth = w
	return p
}

// AsWarning renders the text in the warning color.
func (p *Pill) AsWarning() *Pill {
	p.Warning = true
	return p
}

// Width returns the rendered width in cells.
func (p *Pill) Width() int {
	return lipgloss.Width(p.Render())
}

// Render returns the styled pill.
func (p *Pill) Render() string {
	style := design.PillStyle
	if p.Warning {
		style = design.PillWarningStyle
	}
	text := p.Text
	if p.MaxWidth > 0 {
		text = utils.TruncateWithTail(text, p.MaxWidth-style.GetHorizontalFrameSize())
	}
	return style.Render(text)
}
