package config

import (
	"screenlight/internal/capability"
	"screenlight/internal/light"
)

// Default values for every configurable knob.
const (
	DefaultTemperatureStep    = 100
	DefaultBrightnessStep     = 1
	DefaultBrightnessPageStep = 10
	DefaultRowUnits           = 16.0
	DefaultLogLevel           = "info"
)

// GetDefaultConfig returns the built-in configuration every file layers on.
func GetDefaultConfig() Config {
	return Config{
		Light: LightConfig{
			Temperature: IntPtr(light.DefaultTemperature),
			Brightness:  IntPtr(light.DefaultBrightness),
		},
		Controls: ControlsConfig{
			TemperatureStep:    DefaultTemperatureStep,
			BrightnessStep:     DefaultBrightnessStep,
			BrightnessPageStep: DefaultBrightnessPageStep,
		},
		WakeLock: WakeLockConfig{
			Backend:        capability.BackendAuto,
			AcquireOnStart: BoolPtr(false),
		},
		Display: DisplayConfig{
			RowUnits:         DefaultRowUnits,
			StartFullscreen:  BoolPtr(true),
			AutoHideOnLaunch: BoolPtr(false),
			Mouse:            BoolPtr(true),
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}
