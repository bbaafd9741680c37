package config

import (
	"screenlight/internal/light"
)

// Config is the top-level configuration structure for screenlight.
//
// Pointer fields distinguish "not set in this layer" from a zero value, so a
// project file can turn a user-level true back into false.
type Config struct {
	Light    LightConfig    `yaml:"light"`
	Controls ControlsConfig `yaml:"controls"`
	WakeLock WakeLockConfig `yaml:"wakeLock"`
	Display  DisplayConfig  `yaml:"display"`
	Log      LogConfig      `yaml:"log"`
}

// LightConfig holds the setting the light starts with.
type LightConfig struct {
	Temperature *int `yaml:"temperature,omitempty"` // Kelvin, clamped to [1000, 6500]
	Brightness  *int `yaml:"brightness,omitempty"`  // Percent, clamped to [0, 100]
}

// ControlsConfig holds the keyboard step sizes.
type ControlsConfig struct {
	TemperatureStep    int `yaml:"temperatureStep,omitempty"`    // Kelvin per ←/→ press
	BrightnessStep     int `yaml:"brightnessStep,omitempty"`     // Percent per ↑/↓ press
	BrightnessPageStep int `yaml:"brightnessPageStep,omitempty"` // Percent per pgup/pgdown press
}

// WakeLockConfig selects how the screen is kept awake.
type WakeLockConfig struct {
	Backend        string `yaml:"backend,omitempty"`        // One of capability.Backends()
	AcquireOnStart *bool  `yaml:"acquireOnStart,omitempty"` // Request the lock right after launch
}

// DisplayConfig tunes the terminal surface.
type DisplayConfig struct {
	RowUnits         float64 `yaml:"rowUnits,omitempty"`         // Gesture units per terminal row
	StartFullscreen  *bool   `yaml:"startFullscreen,omitempty"`  // Enter the alternate screen on launch
	AutoHideOnLaunch *bool   `yaml:"autoHideOnLaunch,omitempty"` // Hide the launch panel after the idle timeout
	Mouse            *bool   `yaml:"mouse,omitempty"`            // Capture mouse motion, clicks and drags
}

// LogConfig sets the minimum level shown in the log overlay.
type LogConfig struct {
	Level string `yaml:"level,omitempty"` // debug, info, warn or error
}

// Setting returns the configured launch setting, clamped.
func (c Config) Setting() light.LightSetting {
	brightness := light.DefaultBrightness
	if c.Light.Brightness != nil {
		brightness = *c.Light.Brightness
	}
	temperature := light.DefaultTemperature
	if c.Light.Temperature != nil {
		temperature = *c.Light.Temperature
	}
	return light.NewSetting(temperature, brightness)
}

// Bool dereferences an optional flag, treating unset as false.
func Bool(p *bool) bool {
	return p != nil && *p
}

// BoolPtr returns a pointer to b.
func BoolPtr(b bool) *bool {
	return &b
}

// IntPtr returns a pointer to i.
func IntPtr(i int) *int {
	return &i
}
