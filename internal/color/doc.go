// Package color bridges light colors to terminal styling.
//
// The light itself is an RGB value computed by the light package; this
// package turns it into lipgloss colors, picks a readable foreground for
// text drawn on top of it and builds the gradients used by the slider
// tracks. Blending and luminance math use go-colorful so that gradients stay
// perceptually even.
//
// # Theme
//
// Initialize records whether the terminal background is dark. It matters only
// for chrome drawn outside the light surface, such as the help and log
// overlays.
//
// # Usage Example
//
//	bg := color.Lipgloss(rgb)
//	fg := color.Foreground(rgb)
//	style := lipgloss.NewStyle().Background(bg).Foreground(fg)
package color
