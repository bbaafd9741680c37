package model

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/session"
	"screenlight/internal/timer"
	"screenlight/pkg/logging"
)

// DefaultKeyMap returns a KeyMap with the default bindings used by the TUI.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		TemperatureDown: key.NewBinding(
			key.WithKeys("left"),
			key.WithHelp("←", "warmer"),
		),
		TemperatureUp: key.NewBinding(
			key.WithKeys("right"),
			key.WithHelp("→", "cooler"),
		),
		BrightnessUp: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("↑", "brighter"),
		),
		BrightnessDown: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("↓", "dimmer"),
		),
		BrightnessPageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "much brighter"),
		),
		BrightnessPageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "much dimmer"),
		),
		ShowMenu: key.NewBinding(
			key.WithKeys(" ", "m"),
			key.WithHelp("space/m", "show controls"),
		),
		CloseMenu: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "hide controls"),
		),
		WakeLock: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "keep screen on"),
		),
		Fullscreen: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "fullscreen"),
		),
		CopyColor: key.NewBinding(
			key.WithKeys("y"),
			key.WithHelp("y", "copy color"),
		),
		ToggleLog: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "toggle log overlay"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q/ctrl+c", "quit"),
		),
	}
}

// Options configures InitialModel.
type Options struct {
	Session        *session.Session
	Clock          timer.Clock
	Controls       Controls
	RowUnits       float64
	MouseEnabled   bool
	AcquireOnStart bool
	DebugMode      bool
	LogChannel     <-chan logging.LogEntry
}

// InitialModel constructs the initial model with sensible defaults.
func InitialModel(opts Options) *Model {
	if opts.Clock == nil {
		opts.Clock = timer.SystemClock{}
	}
	if opts.RowUnits <= 0 {
		opts.RowUnits = DefaultRowUnits
	}
	if opts.Session == nil {
		opts.Session = session.New(session.Options{Clock: opts.Clock})
	}

	h := help.New()
	h.ShowAll = true

	return &Model{
		CurrentAppMode:  ModeLight,
		LastAppMode:     ModeLight,
		DebugMode:       opts.DebugMode,
		Session:         opts.Session,
		Clock:           opts.Clock,
		CallTimeout:     DefaultCallTimeout,
		AcquireOnStart:  opts.AcquireOnStart,
		Controls:        opts.Controls,
		RowUnits:        opts.RowUnits,
		MouseEnabled:    opts.MouseEnabled,
		CopyToClipboard: clipboard.WriteAll,
		Keys:            DefaultKeyMap(),
		Help:            h,
		ActivityLog:     []string{},
		LogViewport:     viewport.New(0, 0),
		LogChannel:      opts.LogChannel,
		calls:           newCallTracker(),
	}
}

// Init starts the session and the log listener. With AcquireOnStart the
// wake lock is requested as if its button had been pressed.
func (m *Model) Init() tea.Cmd {
	effects := m.Session.Start()
	if m.AcquireOnStart {
		effects = append(effects, m.Session.Dispatch(session.ButtonPressed{Button: session.ButtonWakeLock})...)
	}
	return tea.Batch(
		m.EffectCmds(effects),
		ListenForLogEntriesCmd(m.LogChannel),
	)
}
