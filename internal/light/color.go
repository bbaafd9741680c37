package light

import (
	"fmt"
	"math"
)

// RGB is a displayable colour, one byte per channel.
type RGB struct {
	R uint8 `json:"r" yaml:"r"`
	G uint8 `json:"g" yaml:"g"`
	B uint8 `json:"b" yaml:"b"`
}

// Black is what any setting at 0% brightness renders as.
var Black = RGB{}

// Hex encodes the colour as #rrggbb.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// CSS encodes the colour as rgb(r, g, b).
func (c RGB) CSS() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Branch thresholds of the fit, in hundreds of Kelvin.
const (
	warmThreshold     = 66
	noBlueThreshold   = 19
	blueLogOffset     = 10
	coolPowOffset     = 60
	maxChannel        = 255
	percentMultiplier = 100
)

// ComputeColor maps a setting to the colour shown on screen. It is pure and
// total: any setting, even an unclamped one, yields in-range channels.
func ComputeColor(setting LightSetting) RGB {
	setting = setting.Clamp()
	return Scale(KelvinToRGB(setting.TemperatureKelvin), setting.BrightnessPercent)
}

// KelvinToRGB returns the full-brightness colour of the blackbody fit at the
// given temperature. It accepts temperatures outside the LightSetting domain,
// which is how the cool branch (above 6600K) is reached.
func KelvinToRGB(kelvin int) RGB {
	t := float64(kelvin) / 100

	var red, green, blue float64
	if t <= warmThreshold {
		red = maxChannel
		green = 99.4708025861*math.Log(t) - 161.1195681661
		if t <= noBlueThreshold {
			blue = 0
		} else {
			blue = 138.5177312231*math.Log(t-blueLogOffset) - 305.0447927307
		}
	} else {
		red = 329.698727446 * math.Pow(t-coolPowOffset, -0.1332047592)
		green = 288.1221695283 * math.Pow(t-coolPowOffset, -0.0755148492)
		blue = maxChannel
	}

	return RGB{R: clampChannel(red), G: clampChannel(green), B: clampChannel(blue)}
}

// Scale multiplies every channel of base by brightnessPercent/100 and rounds
// to the nearest integer. The brightness is clamped first so the multiplier
// stays in [0,1] and the result never needs re-clamping.
func Scale(base RGB, brightnessPercent int) RGB {
	m := float64(ClampBrightness(brightnessPercent)) / percentMultiplier
	return RGB{
		R: uint8(math.Round(float64(base.R) * m)),
		G: uint8(math.Round(float64(base.G) * m)),
		B: uint8(math.Round(float64(base.B) * m)),
	}
}

func clampChannel(x float64) uint8 {
	if math.IsNaN(x) {
		return 0
	}
	return uint8(math.Round(math.Min(math.Max(x, 0), maxChannel)))
}
