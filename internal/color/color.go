package color

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"screenlight/internal/light"
)

// Readable foregrounds for text drawn on the light.
var (
	InkDark  = light.RGB{R: 0x1c, G: 0x1c, B: 0x1c}
	InkLight = light.RGB{R: 0xf5, G: 0xf5, B: 0xf5}
)

// luminanceThreshold splits backgrounds that need dark ink from those that
// need light ink. It sits near the point where both inks have equal contrast.
const luminanceThreshold = 0.179

// Initialize sets the terminal background mode used by adaptive colors.
func Initialize(isDarkMode bool) {
	lipgloss.SetHasDarkBackground(isDarkMode)
}

// ToColorful converts a light color for blending.
func ToColorful(c light.RGB) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}

// FromColorful converts back, clamping out-of-gamut blends.
func FromColorful(c colorful.Color) light.RGB {
	r, g, b := c.Clamped().RGB255()
	return light.RGB{R: r, G: g, B: b}
}

// Lipgloss returns c as a true-color lipgloss color.
func Lipgloss(c light.RGB) lipgloss.Color {
	return lipgloss.Color(c.Hex())
}

// Luminance returns the WCAG relative luminance of c in [0, 1].
func Luminance(c light.RGB) float64 {
	r, g, b := ToColorful(c).LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// IsDark reports whether light ink reads better than dark ink on c.
func IsDark(c light.RGB) bool {
	return Luminance(c) < luminanceThreshold
}

// Foreground returns the ink to use for text drawn on background c.
func Foreground(c light.RGB) lipgloss.Color {
	if IsDark(c) {
		return Lipgloss(InkLight)
	}
	return Lipgloss(InkDark)
}

// Muted returns the ink for secondary text on c: the foreground pulled
// halfway towards the background.
func Muted(c light.RGB) lipgloss.Color {
	ink := InkDark
	if IsDark(c) {
		ink = InkLight
	}
	return Lipgloss(FromColorful(ToColorful(ink).BlendLab(ToColorful(c), 0.5)))
}

// TemperatureSamples returns n temperatures evenly spaced from the warmest
// to the coolest end of the range. n < 2 yields just the warmest.
func TemperatureSamples(n int) []int {
	if n < 2 {
		return []int{light.MinTemperature}
	}
	out := make([]int, n)
	span := light.MaxTemperature - light.MinTemperature
	for i := range out {
		out[i] = light.MinTemperature + span*i/(n-1)
	}
	return out
}

// TemperatureScale samples the full-brightness light color at each of
// TemperatureSamples(n).
func TemperatureScale(n int) []light.RGB {
	samples := TemperatureSamples(n)
	out := make([]light.RGB, len(samples))
	for i, k := range samples {
		out[i] = light.KelvinToRGB(k)
	}
	return out
}
