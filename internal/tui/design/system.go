package design

import (
	"github.com/charmbracelet/lipgloss"
)

// Design System Constants
const (
	// Spacing units, in terminal cells
	SpaceXS = 1
	SpaceSM = 2

	// Component dimensions
	MinPanelHeight = 5
	MinPanelWidth  = 20

	// Control panel
	ControlPanelMaxWidth = 48
	ControlPanelMinWidth = 30
)

// Color Palette. The light surface itself is painted with the computed light
// color; these colors only style chrome drawn on top of it.
var (
	// Brand Colors
	ColorPrimary = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}

	// State Colors
	ColorError = lipgloss.AdaptiveColor{
		Light: "#DC2626",
		Dark:  "#EF4444",
	}
	ColorWarning = lipgloss.AdaptiveColor{
		Light: "#D97706",
		Dark:  "#F59E0B",
	}
	ColorInfo = lipgloss.AdaptiveColor{
		Light: "#2563EB",
		Dark:  "#3B82F6",
	}

	// Neutral Colors
	ColorSurface = lipgloss.AdaptiveColor{
		Light: "#F9FAFB",
		Dark:  "#1A1A1A",
	}
	ColorBorder = lipgloss.AdaptiveColor{
		Light: "#E5E7EB",
		Dark:  "#404040",
	}

	// Text Colors
	ColorText = lipgloss.AdaptiveColor{
		Light: "#111827",
		Dark:  "#F9FAFB",
	}
	ColorTextSecondary = lipgloss.AdaptiveColor{
		Light: "#6B7280",
		Dark:  "#9CA3AF",
	}

	// Floating elements over the light. They stay dark in both modes, like a
	// translucent black layer over the lit screen.
	ColorFloatBackground = lipgloss.Color("#141414")
	ColorFloatText       = lipgloss.Color("#FFFFFF")
	ColorFloatMuted      = lipgloss.Color("#A3A3A3")
	ColorButton          = lipgloss.Color("#FFFFFF")
	ColorButtonText      = lipgloss.Color("#000000")
)

// Base Styles - Foundation for all components
var (
	SurfaceStyle = lipgloss.NewStyle().
			Background(ColorSurface).
			Foreground(ColorText).
			Padding(SpaceXS, SpaceSM)

	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)
)

// Component Styles - Reusable component definitions
var (
	// Overlay panels (help, log)
	PanelStyle = SurfaceStyle.
			Inherit(BorderStyle).
			Padding(0, SpaceSM).
			Margin(0)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextSecondary).
			Italic(true)

	// Control panel floating over the light
	ControlPanelStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder(), true, true, false, true).
				BorderForeground(ColorFloatMuted).
				BorderBackground(ColorFloatBackground).
				Background(ColorFloatBackground).
				Foreground(ColorFloatText).
				Padding(0, SpaceSM)

	ControlLabelStyle = lipgloss.NewStyle().
				Background(ColorFloatBackground).
				Foreground(ColorFloatText)

	ControlValueStyle = ControlLabelStyle.
				Bold(true)

	ButtonStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Background(ColorButton).
			Foreground(ColorButtonText)

	ButtonActiveStyle = ButtonStyle.
				Background(ColorPrimary).
				Bold(true)

	ButtonPendingStyle = ButtonStyle.
				Background(ColorFloatMuted)

	// Pills: indicators and the affordance
	PillStyle = lipgloss.NewStyle().
			Padding(0, SpaceXS).
			Background(ColorFloatBackground).
			Foreground(ColorFloatText)

	PillWarningStyle = PillStyle.
				Foreground(ColorWarning)
)
