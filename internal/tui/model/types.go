package model

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"

	"screenlight/internal/session"
	"screenlight/internal/timer"
	"screenlight/pkg/logging"
)

// AppMode represents the current mode of the application
type AppMode int

const (
	ModeLight AppMode = iota
	ModeHelpOverlay
	ModeLogOverlay
	ModeQuitting
)

// String provides a human-readable representation of the AppMode.
func (m AppMode) String() string {
	switch m {
	case ModeLight:
		return "Light"
	case ModeHelpOverlay:
		return "HelpOverlay"
	case ModeLogOverlay:
		return "LogOverlay"
	case ModeQuitting:
		return "Quitting"
	default:
		return "Unknown"
	}
}

// Slider identifies one of the two panel sliders.
type Slider int

const (
	SliderNone Slider = iota
	SliderTemperature
	SliderBrightness
)

// String makes Slider satisfy the fmt.Stringer interface.
func (s Slider) String() string {
	switch s {
	case SliderTemperature:
		return "temperature"
	case SliderBrightness:
		return "brightness"
	default:
		return "none"
	}
}

// Constants for UI
const (
	MaxActivityLogLines = 1000
	DefaultCallTimeout  = 5 * time.Second
	DefaultRowUnits     = 16.0
)

// KeyMap defines all the key bindings for the application
type KeyMap struct {
	TemperatureDown    key.Binding
	TemperatureUp      key.Binding
	BrightnessUp       key.Binding
	BrightnessDown     key.Binding
	BrightnessPageUp   key.Binding
	BrightnessPageDown key.Binding
	ShowMenu           key.Binding
	CloseMenu          key.Binding
	WakeLock           key.Binding
	Fullscreen         key.Binding
	CopyColor          key.Binding
	ToggleLog          key.Binding
	Help               key.Binding
	Quit               key.Binding
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.ShowMenu, k.WakeLock, k.Fullscreen, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.TemperatureDown, k.TemperatureUp, k.BrightnessUp, k.BrightnessDown, k.BrightnessPageUp, k.BrightnessPageDown},
		{k.ShowMenu, k.CloseMenu, k.WakeLock, k.Fullscreen},
		{k.CopyColor, k.ToggleLog, k.Help, k.Quit},
	}
}

// Controls holds the keyboard step sizes.
type Controls struct {
	TemperatureStep    int
	BrightnessStep     int
	BrightnessPageStep int
}

// Model is the state of the TUI: the light session plus everything that only
// exists because the light is drawn in a terminal.
type Model struct {
	// Terminal dimensions
	Width  int
	Height int

	CurrentAppMode  AppMode
	LastAppMode     AppMode
	DebugMode       bool
	QuittingMessage string

	// The light
	Session        *session.Session
	Clock          timer.Clock
	CallTimeout    time.Duration
	AcquireOnStart bool

	// Input mapping
	Controls     Controls
	RowUnits     float64
	MouseEnabled bool
	Drag         Slider
	TouchActive  bool

	// CopyToClipboard writes the color hex; replaced in tests.
	CopyToClipboard func(string) error

	// UI State & Output
	Keys             KeyMap
	Help             help.Model
	ActivityLog      []string
	ActivityLogDirty bool
	LogViewport      viewport.Model

	// Logging
	LogChannel <-chan logging.LogEntry

	calls *callTracker
}

// Output is a shortcut for the session's current frame state.
func (m *Model) Output() session.Output {
	return m.Session.Output()
}
