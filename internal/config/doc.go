// Package config provides configuration management for screenlight.
//
// This package implements a layered configuration system that allows users to
// customize the light through YAML files. Configuration is loaded from
// multiple sources and merged in a specific order, with later sources
// overriding earlier ones.
//
// # Configuration Layers
//
// Configuration is loaded and merged in the following order:
//
//  1. Default Configuration (embedded in binary)
//     - Warm candle light at full brightness, panel open at launch
//
//  2. User Configuration (~/.config/screenlight/config.yaml)
//     - Personal preferences that apply everywhere
//
//  3. Project Configuration (./.screenlight/config.yaml)
//     - Settings for the current directory, e.g. a studio workstation
//
// Command line flags are applied by the cmd package on top of the result.
//
// # Configuration Structure
//
//	light:
//	  temperature: 2700   # Kelvin, 1000-6500
//	  brightness: 80      # percent, 0-100
//
//	controls:
//	  temperatureStep: 100
//	  brightnessStep: 1
//	  brightnessPageStep: 10
//
//	wakeLock:
//	  backend: auto       # auto, systemd-inhibit, caffeinate or none
//	  acquireOnStart: false
//
//	display:
//	  rowUnits: 16        # gesture units per terminal row
//	  startFullscreen: true
//	  autoHideOnLaunch: false
//	  mouse: true
//
//	log:
//	  level: info
//
// Out-of-range light values are clamped rather than rejected; an unknown
// backend, a non-positive step or an unknown log level is an error.
package config
