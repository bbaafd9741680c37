package controller

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/capability"
	"screenlight/internal/config"
	"screenlight/internal/session"
	"screenlight/internal/timer"
	"screenlight/internal/tui/model"
	"screenlight/pkg/logging"
)

// ProgramOptions configures NewProgram.
type ProgramOptions struct {
	Config     config.Config
	WakeLock   capability.WakeLock
	LogChannel <-chan logging.LogEntry
	DebugMode  bool
	// Clock defaults to the system clock.
	Clock timer.Clock
	// TeaOptions are appended to the options derived from Config.
	TeaOptions []tea.ProgramOption
}

// NewProgram wires a session to a Bubble Tea program. The returned model is
// the one the program drives; pass it to Shutdown once Run returns.
func NewProgram(opts ProgramOptions) (*tea.Program, *model.Model) {
	cfg := opts.Config
	clock := opts.Clock
	if clock == nil {
		clock = timer.SystemClock{}
	}
	startFullscreen := config.Bool(cfg.Display.StartFullscreen)
	altScreen := NewAltScreen()

	sess := session.New(session.Options{
		Setting:          cfg.Setting(),
		WakeLock:         opts.WakeLock,
		Fullscreen:       altScreen,
		Clock:            clock,
		AutoHideOnLaunch: config.Bool(cfg.Display.AutoHideOnLaunch),
		FullscreenActive: startFullscreen,
	})

	m := model.InitialModel(model.Options{
		Session: sess,
		Clock:   clock,
		Controls: model.Controls{
			TemperatureStep:    cfg.Controls.TemperatureStep,
			BrightnessStep:     cfg.Controls.BrightnessStep,
			BrightnessPageStep: cfg.Controls.BrightnessPageStep,
		},
		RowUnits:       cfg.Display.RowUnits,
		MouseEnabled:   config.Bool(cfg.Display.Mouse),
		AcquireOnStart: config.Bool(cfg.WakeLock.AcquireOnStart),
		DebugMode:      opts.DebugMode,
		LogChannel:     opts.LogChannel,
	})

	var teaOpts []tea.ProgramOption
	if startFullscreen {
		teaOpts = append(teaOpts, tea.WithAltScreen())
	}
	if m.MouseEnabled {
		teaOpts = append(teaOpts, tea.WithMouseAllMotion())
	}
	teaOpts = append(teaOpts, opts.TeaOptions...)

	p := tea.NewProgram(NewApp(m), teaOpts...)
	altScreen.Bind(p.Send)
	return p, m
}

// Shutdown gives up what the session still holds once the event loop has
// stopped. Calls still in flight are cancelled first; a wake lock they
// acquired anyway comes back as a stale result and is released like the
// held one. Release calls run synchronously.
func Shutdown(m *model.Model, timeout time.Duration) {
	if m == nil || m.Session == nil {
		return
	}
	if timeout <= 0 {
		timeout = model.DefaultCallTimeout
	}
	orphans := m.StopCalls(timeout)
	runShutdownCalls(m, m.Session.Shutdown(), timeout)
	for _, ev := range orphans {
		LogDebug(m, controllerSubsystem, "Settling undelivered %T", ev)
		runShutdownCalls(m, m.Session.Dispatch(ev), timeout)
	}
}

func runShutdownCalls(m *model.Model, effects []session.Effect, timeout time.Duration) {
	for _, eff := range effects {
		call, ok := eff.(session.Call)
		if !ok {
			continue
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		ev := call.Run(ctx)
		cancel()
		if released, ok := ev.(session.WakeLockReleased); ok && released.Err != nil {
			LogError(controllerSubsystem, released.Err, "Shutdown call %s failed", call.Name)
			continue
		}
		LogDebug(m, controllerSubsystem, "Shutdown call %s done", call.Name)
	}
}
