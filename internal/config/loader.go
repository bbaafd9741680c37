package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"gopkg.in/yaml.v3"

	"screenlight/internal/capability"
	"screenlight/internal/light"
	"screenlight/pkg/logging"
)

// For mocking in tests
var osUserHomeDir = os.UserHomeDir
var osGetwd = os.Getwd

const (
	userConfigDir    = ".config/screenlight"
	projectConfigDir = ".screenlight"
	configFileName   = "config.yaml"
)

// LoadConfig loads the screenlight configuration by layering default, user,
// and project settings. The result is validated and its light setting
// clamped.
func LoadConfig() (Config, error) {
	config := GetDefaultConfig()

	userConfigPath, err := getUserConfigPath()
	if err != nil {
		// User config is optional
		logging.Warn("Config", "Could not determine user config path: %v", err)
	} else {
		config, err = layerFile(config, userConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading user config from %s: %w", userConfigPath, err)
		}
	}

	projectConfigPath, err := getProjectConfigPath()
	if err != nil {
		logging.Warn("Config", "Could not determine project config path: %v", err)
	} else {
		config, err = layerFile(config, projectConfigPath)
		if err != nil {
			return Config{}, fmt.Errorf("error loading project config from %s: %w", projectConfigPath, err)
		}
	}

	return Normalize(config)
}

func layerFile(base Config, path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return base, nil
	}
	overlay, err := loadConfigFromFile(path)
	if err != nil {
		return Config{}, err
	}
	logging.Debug("Config", "Loaded %s", path)
	return mergeConfigs(base, overlay), nil
}

var getUserConfigPath = func() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

var getProjectConfigPath = func() (string, error) {
	wd, err := osGetwd()
	if err != nil {
		return "", err
	}
	return filepath.Join(wd, projectConfigDir, configFileName), nil
}

// loadConfigFromFile loads a Config from a YAML file.
func loadConfigFromFile(filePath string) (Config, error) {
	var config Config
	data, err := os.ReadFile(filePath)
	if err != nil {
		return Config{}, err
	}
	err = yaml.Unmarshal(data, &config)
	if err != nil {
		return Config{}, err
	}
	return config, nil
}

// mergeConfigs merges 'overlay' config into 'base' config. Only fields set in
// the overlay override the base.
func mergeConfigs(base, overlay Config) Config {
	merged := base

	if overlay.Light.Temperature != nil {
		merged.Light.Temperature = overlay.Light.Temperature
	}
	if overlay.Light.Brightness != nil {
		merged.Light.Brightness = overlay.Light.Brightness
	}

	if overlay.Controls.TemperatureStep != 0 {
		merged.Controls.TemperatureStep = overlay.Controls.TemperatureStep
	}
	if overlay.Controls.BrightnessStep != 0 {
		merged.Controls.BrightnessStep = overlay.Controls.BrightnessStep
	}
	if overlay.Controls.BrightnessPageStep != 0 {
		merged.Controls.BrightnessPageStep = overlay.Controls.BrightnessPageStep
	}

	if overlay.WakeLock.Backend != "" {
		merged.WakeLock.Backend = overlay.WakeLock.Backend
	}
	if overlay.WakeLock.AcquireOnStart != nil {
		merged.WakeLock.AcquireOnStart = overlay.WakeLock.AcquireOnStart
	}

	if overlay.Display.RowUnits != 0 {
		merged.Display.RowUnits = overlay.Display.RowUnits
	}
	if overlay.Display.StartFullscreen != nil {
		merged.Display.StartFullscreen = overlay.Display.StartFullscreen
	}
	if overlay.Display.AutoHideOnLaunch != nil {
		merged.Display.AutoHideOnLaunch = overlay.Display.AutoHideOnLaunch
	}
	if overlay.Display.Mouse != nil {
		merged.Display.Mouse = overlay.Display.Mouse
	}

	if overlay.Log.Level != "" {
		merged.Log.Level = overlay.Log.Level
	}

	return merged
}

// Normalize validates c and clamps its light setting into range.
func Normalize(c Config) (Config, error) {
	if err := Validate(c); err != nil {
		return Config{}, err
	}
	setting := c.Setting()
	c.Light.Temperature = IntPtr(setting.TemperatureKelvin)
	c.Light.Brightness = IntPtr(setting.BrightnessPercent)
	return c, nil
}

// Validate reports the first invalid field of c.
func Validate(c Config) error {
	if !slices.Contains(capability.Backends(), c.WakeLock.Backend) {
		return fmt.Errorf("wakeLock.backend: unknown backend %q", c.WakeLock.Backend)
	}
	if c.Controls.TemperatureStep <= 0 || c.Controls.TemperatureStep > light.MaxTemperature-light.MinTemperature {
		return fmt.Errorf("controls.temperatureStep: %d out of range", c.Controls.TemperatureStep)
	}
	if c.Controls.BrightnessStep <= 0 || c.Controls.BrightnessStep > light.MaxBrightness {
		return fmt.Errorf("controls.brightnessStep: %d out of range", c.Controls.BrightnessStep)
	}
	if c.Controls.BrightnessPageStep <= 0 || c.Controls.BrightnessPageStep > light.MaxBrightness {
		return fmt.Errorf("controls.brightnessPageStep: %d out of range", c.Controls.BrightnessPageStep)
	}
	if c.Display.RowUnits <= 0 {
		return fmt.Errorf("display.rowUnits: must be positive, got %v", c.Display.RowUnits)
	}
	if _, err := logging.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("log.level: %w", err)
	}
	return nil
}

// GetUserConfigDir returns the user configuration directory path
func GetUserConfigDir() (string, error) {
	homeDir, err := osUserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, userConfigDir), nil
}

// UserConfigPath returns the path of the user configuration file.
func UserConfigPath() (string, error) {
	return getUserConfigPath()
}

// ProjectConfigPath returns the path of the project configuration file.
func ProjectConfigPath() (string, error) {
	return getProjectConfigPath()
}
