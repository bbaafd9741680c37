// Package session is the explicit state object of the virtual light and the
// dispatcher that updates it.
//
// Every input (pointer, touch, slider, button), every timer expiry and every
// capability result arrives as an Event passed to Dispatch on a single event
// loop. Dispatch mutates the state in place and returns the Effects the loop
// must perform: wake-ups for newly armed timers and asynchronous capability
// calls whose result comes back as another Event. Output derives everything
// the presentation layer shows.
package session

import (
	"context"
	"errors"
	"time"

	"screenlight/internal/capability"
	"screenlight/internal/gesture"
	"screenlight/internal/indicator"
	"screenlight/internal/light"
	"screenlight/internal/timer"
	"screenlight/internal/visibility"
	"screenlight/pkg/logging"
)

const subsystem = "Session"

// Timer keys of the indicators.
const (
	BrightnessIndicatorKey  timer.Key = "brightness-indicator"
	TemperatureIndicatorKey timer.Key = "temperature-indicator"
	NoticeKey               timer.Key = "notice"
)

// Options configures a new Session.
type Options struct {
	Setting    light.LightSetting
	WakeLock   capability.WakeLock
	Fullscreen capability.Fullscreen
	Clock      timer.Clock
	// AutoHideOnLaunch arms the menu-idle timer for the launch panel.
	AutoHideOnLaunch bool
	// FullscreenActive is the fullscreen state the surface starts in.
	FullscreenActive bool
}

// Output is everything the presentation layer needs to draw a frame.
type Output struct {
	Setting                     light.LightSetting `json:"setting"`
	Color                       light.RGB          `json:"color"`
	Background                  string             `json:"background"`
	PanelOpen                   bool               `json:"panelOpen"`
	ToggleAffordanceVisible     bool               `json:"toggleAffordanceVisible"`
	BrightnessIndicatorVisible  bool               `json:"brightnessIndicatorVisible"`
	TemperatureIndicatorVisible bool               `json:"temperatureIndicatorVisible"`
	NoticeVisible               bool               `json:"noticeVisible"`
	Notice                      string             `json:"notice,omitempty"`
	WakeLockActive              bool               `json:"wakeLockActive"`
	WakeLockPending             bool               `json:"wakeLockPending"`
	FullscreenActive            bool               `json:"fullscreenActive"`
}

type wakeState struct {
	seq     uint64
	pending bool
	handle  capability.Handle
}

type fullscreenState struct {
	seq    uint64
	active bool
}

// Session owns the complete light state.
type Session struct {
	timers     *timer.Set
	setting    light.LightSetting
	color      light.RGB
	visibility *visibility.Controller
	gestures   *gesture.Recognizer

	brightness  *indicator.Indicator
	temperature *indicator.Indicator
	notice      *indicator.Indicator

	wakeLock   capability.WakeLock
	fullscreen capability.Fullscreen
	wake       wakeState
	fs         fullscreenState

	autoHideOnLaunch bool
}

// New builds a session in its launch state. Call Start before dispatching.
func New(opts Options) *Session {
	if opts.WakeLock == nil {
		opts.WakeLock = capability.Unsupported{}
	}
	if opts.Fullscreen == nil {
		opts.Fullscreen = capability.Unsupported{}
	}
	timers := timer.NewSet(opts.Clock)
	setting := opts.Setting.Clamp()
	return &Session{
		timers:           timers,
		setting:          setting,
		color:            light.ComputeColor(setting),
		visibility:       visibility.New(timers),
		gestures:         gesture.New(),
		brightness:       indicator.New(timers, BrightnessIndicatorKey, indicator.BrightnessTimeout),
		temperature:      indicator.New(timers, TemperatureIndicatorKey, indicator.TemperatureTimeout),
		notice:           indicator.New(timers, NoticeKey, indicator.NoticeTimeout),
		wakeLock:         opts.WakeLock,
		fullscreen:       opts.Fullscreen,
		fs:               fullscreenState{active: opts.FullscreenActive},
		autoHideOnLaunch: opts.AutoHideOnLaunch,
	}
}

// Start performs the launch-time effects: the brightness readout flashes
// once, and the launch panel starts its idle timer if configured to.
func (s *Session) Start() []Effect {
	s.brightness.Show()
	if s.autoHideOnLaunch {
		s.visibility.OpenPanel()
	}
	logging.Debug(subsystem, "Started at %s", s.setting)
	return s.drain(nil)
}

// Setting returns the current light setting.
func (s *Session) Setting() light.LightSetting { return s.setting }

// Timers exposes the timer set, mostly for inspection in tests.
func (s *Session) Timers() *timer.Set { return s.timers }

// Output derives the current frame state.
func (s *Session) Output() Output {
	vis := s.visibility.State()
	out := Output{
		Setting:                     s.setting,
		Color:                       s.color,
		Background:                  s.color.Hex(),
		PanelOpen:                   vis.PanelOpen,
		ToggleAffordanceVisible:     vis.ToggleAffordanceVisible,
		BrightnessIndicatorVisible:  s.brightness.Visible(),
		TemperatureIndicatorVisible: s.temperature.Visible(),
		NoticeVisible:               s.notice.Visible(),
		WakeLockActive:              s.wake.handle != nil,
		WakeLockPending:             s.wake.pending,
		FullscreenActive:            s.fs.active,
	}
	if out.NoticeVisible {
		out.Notice = s.notice.Text()
	}
	return out
}

// Dispatch applies one event and returns the effects it produced.
func (s *Session) Dispatch(ev Event) []Effect {
	var effects []Effect

	switch ev := ev.(type) {
	case PointerMoved:
		s.visibility.PointerActivity()
	case TouchStarted:
		s.gestures.Start(ev.Y, ev.At)
	case TouchEnded:
		s.applyIntent(s.gestures.End(ev.Y, ev.At))
	case SliderChanged:
		s.applySetting(light.NewSetting(ev.Temperature, ev.Brightness))
	case ButtonPressed:
		effects = s.press(ev.Button)
	case TimerFired:
		s.fire(ev.Timer)
	case WakeLockAcquired:
		effects = s.wakeLockAcquired(ev)
	case WakeLockReleased:
		if ev.Err != nil {
			logging.Warn(subsystem, "Releasing wake lock failed: %v", ev.Err)
		}
	case WakeLockLost:
		s.wakeLockLost(ev)
	case FullscreenResult:
		s.fullscreenResult(ev)
	case FullscreenChanged:
		if ev.Active != s.fs.active {
			logging.Info(subsystem, "Fullscreen changed externally (active=%v)", ev.Active)
			s.fs.active = ev.Active
			s.fs.seq++
		}
	case Notify:
		s.notice.ShowText(ev.Text)
	default:
		logging.Debug(subsystem, "Ignoring unknown event %T", ev)
	}

	return s.drain(effects)
}

// Advance fires, in deadline order, every timer due at now. Runtimes that
// deliver TimerFired events themselves never need it; tests drive simulated
// time with it.
func (s *Session) Advance(now time.Time) []Effect {
	for _, t := range s.timers.Due(now) {
		s.fire(t)
	}
	return s.drain(nil)
}

// Shutdown gives up every held capability: a held wake lock is released and
// a pending request withdrawn. The caller runs the returned calls before
// exiting.
func (s *Session) Shutdown() []Effect {
	s.wake.seq++
	s.wake.pending = false
	h := s.wake.handle
	if h == nil {
		return nil
	}
	s.wake.handle = nil
	logging.Info(subsystem, "Releasing wake lock on shutdown")
	return []Effect{s.releaseCall(h)}
}

func (s *Session) drain(effects []Effect) []Effect {
	for _, t := range s.timers.Drain() {
		effects = append(effects, ArmTimer{Timer: t})
	}
	return effects
}

func (s *Session) applyIntent(intent gesture.Intent) {
	switch intent {
	case gesture.IntentSwipeUp:
		s.visibility.OpenPanel()
	case gesture.IntentSwipeDown:
		s.visibility.ClosePanel()
	case gesture.IntentDoubleTap:
		s.visibility.TogglePanel()
	default:
		return
	}
	logging.Debug(subsystem, "Gesture %s", intent)
}

func (s *Session) applySetting(next light.LightSetting) {
	prev := s.setting
	if next == prev {
		return
	}
	s.setting = next
	s.color = light.ComputeColor(next)
	if next.BrightnessPercent != prev.BrightnessPercent {
		s.brightness.Show()
	}
	if next.TemperatureKelvin != prev.TemperatureKelvin {
		s.temperature.Show()
	}
}

func (s *Session) fire(t timer.Timer) {
	switch {
	case s.visibility.Fire(t):
	case s.brightness.Fire(t):
	case s.temperature.Fire(t):
	case s.notice.Fire(t):
	default:
		logging.Debug(subsystem, "Dropped stale timer %s#%d", t.Key, t.Gen)
	}
}

func (s *Session) press(b Button) []Effect {
	switch b {
	case ButtonShowMenu:
		s.visibility.OpenPanel()
	case ButtonCloseMenu:
		s.visibility.ClosePanel()
	case ButtonWakeLock:
		return s.toggleWakeLock()
	case ButtonFullscreen:
		return s.toggleFullscreen()
	}
	return nil
}

func (s *Session) toggleWakeLock() []Effect {
	s.wake.seq++

	if h := s.wake.handle; h != nil {
		s.wake.handle = nil
		logging.Info(subsystem, "Releasing wake lock")
		return []Effect{s.releaseCall(h)}
	}

	if s.wake.pending {
		// The in-flight request is now stale; if it succeeds its handle is
		// released on arrival.
		s.wake.pending = false
		logging.Info(subsystem, "Wake lock request withdrawn")
		return nil
	}

	s.wake.pending = true
	seq := s.wake.seq
	wl := s.wakeLock
	logging.Info(subsystem, "Requesting wake lock")
	return []Effect{Call{
		Name: "wake-lock-acquire",
		Run: func(ctx context.Context) Event {
			h, err := wl.Acquire(ctx)
			return WakeLockAcquired{Seq: seq, Handle: h, Err: err}
		},
	}}
}

func (s *Session) releaseCall(h capability.Handle) Effect {
	wl := s.wakeLock
	return Call{
		Name: "wake-lock-release",
		Run: func(ctx context.Context) Event {
			return WakeLockReleased{Err: wl.Release(ctx, h)}
		},
	}
}

func (s *Session) wakeLockAcquired(ev WakeLockAcquired) []Effect {
	if ev.Seq != s.wake.seq || !s.wake.pending {
		if ev.Err == nil && ev.Handle != nil {
			logging.Debug(subsystem, "Releasing superseded wake lock")
			return []Effect{s.releaseCall(ev.Handle)}
		}
		return nil
	}

	s.wake.pending = false
	if ev.Err != nil || ev.Handle == nil {
		err := ev.Err
		if err == nil {
			err = capability.ErrRequestDenied
		}
		logging.Error(subsystem, err, "Wake lock not active")
		s.notice.ShowText(wakeLockFailureText(err))
		return nil
	}

	s.wake.handle = ev.Handle
	logging.Info(subsystem, "Wake lock active")
	return []Effect{WatchWakeLock{Handle: ev.Handle}}
}

func (s *Session) wakeLockLost(ev WakeLockLost) {
	if ev.Handle == nil || ev.Handle != s.wake.handle {
		return
	}
	s.wake.handle = nil
	s.wake.seq++
	logging.Warn(subsystem, "Wake lock was revoked by the platform")
	s.notice.ShowText("Wake lock lost")
}

func wakeLockFailureText(err error) string {
	switch {
	case errors.Is(err, capability.ErrPlatformUnsupported):
		return "Wake lock unavailable on this platform"
	case errors.Is(err, capability.ErrRequestDenied):
		return "Wake lock request denied"
	default:
		return "Wake lock not active"
	}
}

func (s *Session) toggleFullscreen() []Effect {
	target := !s.fs.active
	s.fs.active = target
	s.fs.seq++
	seq := s.fs.seq
	fs := s.fullscreen

	name := "fullscreen-exit"
	if target {
		name = "fullscreen-enter"
	}
	return []Effect{Call{
		Name: name,
		Run: func(ctx context.Context) Event {
			var err error
			if target {
				err = fs.Enter(ctx)
			} else {
				err = fs.Exit(ctx)
			}
			return FullscreenResult{Seq: seq, Active: target, Err: err}
		},
	}}
}

func (s *Session) fullscreenResult(ev FullscreenResult) {
	if ev.Seq != s.fs.seq || ev.Err == nil {
		return
	}
	s.fs.active = !ev.Active
	logging.Error(subsystem, ev.Err, "Fullscreen request failed")
	if errors.Is(ev.Err, capability.ErrPlatformUnsupported) {
		s.notice.ShowText("Fullscreen unavailable")
		return
	}
	s.notice.ShowText("Fullscreen request failed")
}
