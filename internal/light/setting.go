package light

import "fmt"

// Domain bounds of a LightSetting.
const (
	MinTemperature = 1000
	MaxTemperature = 6500
	MinBrightness  = 0
	MaxBrightness  = 100
)

// Launch defaults used when no configuration overrides them.
const (
	DefaultTemperature = 1800
	DefaultBrightness  = 100
)

// LightSetting is the user-controlled state of the light. Both fields are
// always inside their closed ranges; use the constructors and With* methods
// rather than assigning fields directly.
type LightSetting struct {
	TemperatureKelvin int `json:"temperatureKelvin" yaml:"temperatureKelvin"`
	BrightnessPercent int `json:"brightnessPercent" yaml:"brightnessPercent"`
}

// NewSetting returns a setting with both values clamped to their domains.
func NewSetting(temperatureKelvin, brightnessPercent int) LightSetting {
	return LightSetting{
		TemperatureKelvin: ClampTemperature(temperatureKelvin),
		BrightnessPercent: ClampBrightness(brightnessPercent),
	}
}

// DefaultSetting returns the launch setting.
func DefaultSetting() LightSetting {
	return NewSetting(DefaultTemperature, DefaultBrightness)
}

// Clamp returns s with both fields forced into range.
func (s LightSetting) Clamp() LightSetting {
	return NewSetting(s.TemperatureKelvin, s.BrightnessPercent)
}

// WithTemperature returns a copy of s with the temperature replaced (clamped).
func (s LightSetting) WithTemperature(kelvin int) LightSetting {
	s.TemperatureKelvin = ClampTemperature(kelvin)
	return s
}

// WithBrightness returns a copy of s with the brightness replaced (clamped).
func (s LightSetting) WithBrightness(percent int) LightSetting {
	s.BrightnessPercent = ClampBrightness(percent)
	return s
}

// AdjustTemperature moves the temperature by delta Kelvin.
func (s LightSetting) AdjustTemperature(delta int) LightSetting {
	return s.WithTemperature(s.TemperatureKelvin + delta)
}

// AdjustBrightness moves the brightness by delta percent.
func (s LightSetting) AdjustBrightness(delta int) LightSetting {
	return s.WithBrightness(s.BrightnessPercent + delta)
}

// String makes LightSetting satisfy the fmt.Stringer interface.
func (s LightSetting) String() string {
	return fmt.Sprintf("%dK @ %d%%", s.TemperatureKelvin, s.BrightnessPercent)
}

// ClampTemperature forces kelvin into [MinTemperature, MaxTemperature].
func ClampTemperature(kelvin int) int {
	return clampInt(kelvin, MinTemperature, MaxTemperature)
}

// ClampBrightness forces percent into [MinBrightness, MaxBrightness].
func ClampBrightness(percent int) int {
	return clampInt(percent, MinBrightness, MaxBrightness)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
