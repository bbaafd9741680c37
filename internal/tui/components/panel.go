package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"screenlight/internal/tui/design"
	"screenlight/internal/tui/utils"
)

// PanelType defines the visual style of a panel
type PanelType int

const (
	PanelTypeDefault PanelType = iota
	PanelTypeInfo
	PanelTypeWarning
	PanelTypeError
)

// String makes PanelType satisfy the fmt.Stringer interface.
func (pt PanelType) String() string {
	switch pt {
	case PanelTypeDefault:
		return "Default"
	case PanelTypeInfo:
		return "Info"
	case PanelTypeWarning:
		return "Warning"
	case PanelTypeError:
		return "Error"
	default:
		return "Unknown"
	}
}

// Panel is a bordered box with a title, used for the overlays.
type Panel struct {
	Title   string
	Content string
	Footer  string
	Width   int
	Height  int
	Type    PanelType
}

// NewPanel creates a new panel with default settings
func NewPanel(title string) *Panel {
	return &Panel{
		Title:  title,
		Width:  design.MinPanelWidth,
		Height: design.MinPanelHeight,
		Type:   PanelTypeDefault,
	}
}

// WithContent sets the panel content
func (p *Panel) WithContent(content string) *Panel {
	p.Content = content
	return p
}

// WithFooter sets a hint line shown at the bottom of the panel
func (p *Panel) WithFooter(footer string) *Panel {
	p.Footer = footer
	return p
}

// WithDimensions sets the panel dimensions
func (p *Panel) WithDimensions(width, height int) *Panel {
	p.Width = width
	p.Height = height
	return p
}

// WithType sets the panel type for styling
func (p *Panel) WithType(panelType PanelType) *Panel {
	p.Type = panelType
	return p
}

// Render returns the styled panel
func (p *Panel) Render() string {
	if p.Width < design.MinPanelWidth {
		p.Width = design.MinPanelWidth
	}
	if p.Height < design.MinPanelHeight {
		p.Height = design.MinPanelHeight
	}

	style := p.getStyle()
	innerWidth := p.Width - style.GetHorizontalFrameSize()
	innerHeight := p.Height - style.GetVerticalFrameSize()
	if innerWidth < 1 {
		innerWidth = 1
	}
	if innerHeight < 1 {
		innerHeight = 1
	}

	var lines []string
	if p.Title != "" {
		lines = append(lines, p.renderTitle(innerWidth), "")
	}

	available := innerHeight - len(lines)
	if p.Footer != "" {
		available--
	}
	if p.Content != "" && available > 0 {
		contentLines := strings.Split(p.Content, "\n")
		if len(contentLines) > available {
			contentLines = append(contentLines[:available-1], "...")
		}
		for _, line := range contentLines {
			if lipgloss.Width(line) > innerWidth {
				line = lipgloss.NewStyle().MaxWidth(innerWidth).Render(line)
			}
			lines = append(lines, line)
		}
	}

	for len(lines) < innerHeight-1 || (p.Footer == "" && len(lines) < innerHeight) {
		lines = append(lines, "")
	}
	if p.Footer != "" {
		lines = append(lines, design.HintStyle.Render(utils.TruncateWithTail(p.Footer, innerWidth)))
	}
	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	return style.
		Width(p.Width - style.GetHorizontalBorderSize()).
		Height(p.Height - style.GetVerticalBorderSize()).
		Render(strings.Join(lines, "\n"))
}

// getStyle returns the appropriate style based on panel type
func (p *Panel) getStyle() lipgloss.Style {
	switch p.Type {
	case PanelTypeInfo:
		return design.PanelStyle.BorderForeground(design.ColorInfo)
	case PanelTypeWarning:
		return design.PanelStyle.BorderForeground(design.ColorWarning)
	case PanelTypeError:
		return design.PanelStyle.BorderForeground(design.ColorError)
	default:
		return design.PanelStyle
	}
}

// renderTitle renders the panel title
func (p *Panel) renderTitle(width int) string {
	if p.Title == "" {
		return ""
	}
	return design.TitleStyle.Render(utils.TruncateWithTail(p.Title, width))
}
