package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"screenlight/internal/capability"
	"screenlight/internal/capability/mocks"
	"screenlight/internal/light"
	"screenlight/internal/timer"
	"screenlight/internal/visibility"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

type harness struct {
	t     *testing.T
	clock *timer.ManualClock
	s     *Session
	// watched collects handles from WatchWakeLock effects.
	watched []capability.Handle
	// calls counts executed Call effects by name.
	calls map[string]int
	// held keeps Call effects that should not run yet.
	held []Call
	hold bool
}

func newHarness(t *testing.T, opts Options) *harness {
	t.Helper()
	clock := timer.NewManualClock(epoch)
	opts.Clock = clock
	h := &harness{t: t, clock: clock, s: New(opts), calls: make(map[string]int)}
	h.run(h.s.Start())
	return h
}

// run performs effects synchronously: calls execute immediately and their
// results are dispatched in turn.
func (h *harness) run(effects []Effect) {
	for _, eff := range effects {
		switch eff := eff.(type) {
		case Call:
			if h.hold {
				h.held = append(h.held, eff)
				continue
			}
			h.calls[eff.Name]++
			h.run(h.s.Dispatch(eff.Run(context.Background())))
		case WatchWakeLock:
			h.watched = append(h.watched, eff.Handle)
		case ArmTimer:
		}
	}
}

func (h *harness) dispatch(ev Event) {
	h.run(h.s.Dispatch(ev))
}

func (h *harness) advance(d time.Duration) {
	h.run(h.s.Advance(h.clock.Advance(d)))
}

func (h *harness) out() Output {
	return h.s.Output()
}

func (h *harness) swipe(fromY, toY float64) {
	at := h.clock.Now()
	h.dispatch(TouchStarted{Y: fromY, At: at})
	h.dispatch(TouchEnded{Y: toY, At: at.Add(100 * time.Millisecond)})
}

func (h *harness) doubleTap() {
	at := h.clock.Now()
	h.dispatch(TouchStarted{Y: 100, At: at})
	h.dispatch(TouchEnded{Y: 100, At: at.Add(50 * time.Millisecond)})
	h.dispatch(TouchStarted{Y: 100, At: at.Add(100 * time.Millisecond)})
	h.dispatch(TouchEnded{Y: 100, At: at.Add(150 * time.Millisecond)})
}

func TestStart_LaunchState(t *testing.T) {
	h := newHarness(t, Options{Setting: light.DefaultSetting()})

	out := h.out()
	assert.True(t, out.PanelOpen)
	assert.False(t, out.ToggleAffordanceVisible)
	assert.True(t, out.BrightnessIndicatorVisible)
	assert.False(t, out.TemperatureIndicatorVisible)
	assert.Equal(t, light.ComputeColor(light.DefaultSetting()), out.Color)
	assert.Equal(t, out.Color.Hex(), out.Background)

	_, armed := h.s.Timers().Pending(visibility.MenuIdleKey)
	assert.False(t, armed, "launch panel has no idle timer by default")

	h.advance(indicator15)
	assert.False(t, h.out().BrightnessIndicatorVisible)

	h.advance(10 * time.Second)
	assert.True(t, h.out().PanelOpen, "launch panel stays until dismissed")
}

const indicator15 = 1500 * time.Millisecond

func TestStart_EmitsArmTimerEffects(t *testing.T) {
	s := New(Options{Clock: timer.NewManualClock(epoch), AutoHideOnLaunch: true})
	effects := s.Start()

	var keys []timer.Key
	for _, eff := range effects {
		at, ok := eff.(ArmTimer)
		require.True(t, ok)
		keys = append(keys, at.Timer.Key)
	}
	assert.ElementsMatch(t, []timer.Key{BrightnessIndicatorKey, visibility.MenuIdleKey}, keys)
}

func TestStart_AutoHideOnLaunch(t *testing.T) {
	h := newHarness(t, Options{AutoHideOnLaunch: true})

	h.advance(2999 * time.Millisecond)
	assert.True(t, h.out().PanelOpen)

	h.advance(time.Millisecond)
	out := h.out()
	assert.False(t, out.PanelOpen)
	assert.True(t, out.ToggleAffordanceVisible)
}

func TestNew_ClampsInitialSetting(t *testing.T) {
	s := New(Options{Setting: light.LightSetting{TemperatureKelvin: 50000, BrightnessPercent: -3}})
	assert.Equal(t, light.LightSetting{TemperatureKelvin: light.MaxTemperature, BrightnessPercent: light.MinBrightness}, s.Setting())
	assert.Equal(t, light.Black, s.Output().Color)
}

func TestSliderChanged(t *testing.T) {
	tests := []struct {
		name            string
		temperature     int
		brightness      int
		wantSetting     light.LightSetting
		wantBrightness  bool
		wantTemperature bool
	}{
		{
			name:           "brightness only",
			temperature:    light.DefaultTemperature,
			brightness:     40,
			wantSetting:    light.LightSetting{TemperatureKelvin: light.DefaultTemperature, BrightnessPercent: 40},
			wantBrightness: true,
		},
		{
			name:            "temperature only",
			temperature:     4000,
			brightness:      light.DefaultBrightness,
			wantSetting:     light.LightSetting{TemperatureKelvin: 4000, BrightnessPercent: light.DefaultBrightness},
			wantTemperature: true,
		},
		{
			name:            "both clamped",
			temperature:     100,
			brightness:      -5,
			wantSetting:     light.LightSetting{TemperatureKelvin: light.MinTemperature, BrightnessPercent: light.MinBrightness},
			wantBrightness:  true,
			wantTemperature: true,
		},
		{
			name:        "unchanged",
			temperature: light.DefaultTemperature,
			brightness:  light.DefaultBrightness,
			wantSetting: light.DefaultSetting(),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, Options{Setting: light.DefaultSetting()})
			// Let the launch readout expire first.
			h.advance(2 * time.Second)

			h.dispatch(SliderChanged{Temperature: tt.temperature, Brightness: tt.brightness})

			out := h.out()
			assert.Equal(t, tt.wantSetting, out.Setting)
			assert.Equal(t, light.ComputeColor(tt.wantSetting), out.Color)
			assert.Equal(t, tt.wantBrightness, out.BrightnessIndicatorVisible)
			assert.Equal(t, tt.wantTemperature, out.TemperatureIndicatorVisible)
		})
	}
}

func TestSliderChanged_IndicatorRestarts(t *testing.T) {
	h := newHarness(t, Options{Setting: light.DefaultSetting()})
	h.advance(2 * time.Second)

	h.dispatch(SliderChanged{Temperature: 3000, Brightness: 50})
	h.advance(time.Second)
	h.dispatch(SliderChanged{Temperature: 3000, Brightness: 51})
	h.advance(time.Second)
	assert.True(t, h.out().BrightnessIndicatorVisible, "second change restarts the readout")
	assert.False(t, h.out().TemperatureIndicatorVisible)

	h.advance(500 * time.Millisecond)
	assert.False(t, h.out().BrightnessIndicatorVisible)
}

func TestGestures(t *testing.T) {
	h := newHarness(t, Options{})

	h.swipe(400, 200)
	require.True(t, h.out().PanelOpen)
	_, armed := h.s.Timers().Pending(visibility.MenuIdleKey)
	assert.True(t, armed, "swipe up arms the idle timer")

	h.swipe(200, 400)
	out := h.out()
	assert.False(t, out.PanelOpen)
	assert.True(t, out.ToggleAffordanceVisible)

	h.advance(time.Second)
	h.swipe(400, 200)
	assert.True(t, h.out().PanelOpen)
	h.advance(3 * time.Second)
	assert.False(t, h.out().PanelOpen, "swipe-opened panel idles out")
}

func TestGestures_DoubleTapPinsPanel(t *testing.T) {
	h := newHarness(t, Options{})

	h.doubleTap()
	assert.False(t, h.out().PanelOpen)

	h.advance(time.Second)
	h.doubleTap()
	assert.True(t, h.out().PanelOpen)

	h.advance(10 * time.Second)
	assert.True(t, h.out().PanelOpen)
}

func TestGestures_SlowDragIsNotSwipe(t *testing.T) {
	h := newHarness(t, Options{})
	h.dispatch(ButtonPressed{Button: ButtonCloseMenu})

	at := h.clock.Now()
	h.dispatch(TouchStarted{Y: 400, At: at})
	h.dispatch(TouchEnded{Y: 100, At: at.Add(time.Second)})
	assert.False(t, h.out().PanelOpen)
}

func TestPointerActivity(t *testing.T) {
	h := newHarness(t, Options{})
	h.dispatch(ButtonPressed{Button: ButtonCloseMenu})
	h.advance(5 * time.Second)
	// Closing reveals the affordance but only pointer idleness hides it.
	assert.True(t, h.out().ToggleAffordanceVisible)

	h.dispatch(PointerMoved{})
	h.advance(1999 * time.Millisecond)
	assert.True(t, h.out().ToggleAffordanceVisible)
	h.advance(time.Millisecond)
	assert.False(t, h.out().ToggleAffordanceVisible)

	h.dispatch(PointerMoved{})
	assert.True(t, h.out().ToggleAffordanceVisible)
	assert.False(t, h.out().PanelOpen, "pointer activity never opens the panel")
}

func TestButtons_ShowAndCloseMenu(t *testing.T) {
	h := newHarness(t, Options{})

	h.dispatch(ButtonPressed{Button: ButtonCloseMenu})
	assert.False(t, h.out().PanelOpen)

	h.dispatch(ButtonPressed{Button: ButtonShowMenu})
	assert.True(t, h.out().PanelOpen)
	assert.False(t, h.out().ToggleAffordanceVisible)

	h.advance(3 * time.Second)
	assert.False(t, h.out().PanelOpen)
}

func TestTimerFired_StaleInstanceIgnored(t *testing.T) {
	h := newHarness(t, Options{})
	h.dispatch(ButtonPressed{Button: ButtonShowMenu})
	stale, ok := h.s.Timers().Pending(visibility.MenuIdleKey)
	require.True(t, ok)

	h.advance(time.Second)
	h.dispatch(ButtonPressed{Button: ButtonShowMenu})

	h.dispatch(TimerFired{Timer: stale})
	assert.True(t, h.out().PanelOpen)

	live, ok := h.s.Timers().Pending(visibility.MenuIdleKey)
	require.True(t, ok)
	h.clock.Set(live.Deadline)
	h.dispatch(TimerFired{Timer: live})
	assert.False(t, h.out().PanelOpen)
}

func TestWakeLock_AcquireAndRelease(t *testing.T) {
	handle := mocks.NewHandle("lock")
	wl := new(mocks.WakeLock)
	wl.On("Acquire", mock.Anything).Return(handle, nil).Once()
	wl.On("Release", mock.Anything, handle).Return(nil).Once()

	h := newHarness(t, Options{WakeLock: wl})

	h.dispatch(ButtonPressed{Button: ButtonWakeLock})
	out := h.out()
	assert.True(t, out.WakeLockActive)
	assert.False(t, out.WakeLockPending)
	require.Len(t, h.watched, 1)
	assert.Same(t, handle, h.watched[0])

	h.dispatch(ButtonPressed{Button: ButtonWakeLock})
	assert.False(t, h.out().WakeLockActive)
	assert.Equal(t, 1, h.calls["wake-lock-release"])

	wl.AssertExpectations(t)
}

func TestWakeLock_Failures(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"unsupported", capability.ErrPlatformUnsupported, "Wake lock unavailable on this platform"},
		{"denied", capability.ErrRequestDenied, "Wake lock request denied"},
		{"wrapped denied", errors.Join(errors.New("exit status 1"), capability.ErrRequestDenied), "Wake lock request denied"},
		{"other", errors.New("boom"), "Wake lock not active"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wl := new(mocks.WakeLock)
			wl.On("Acquire", mock.Anything).Return(nil, tt.err).Once()

			h := newHarness(t, Options{WakeLock: wl})
			h.dispatch(ButtonPressed{Button: ButtonWakeLock})

			out := h.out()
			assert.False(t, out.WakeLockActive)
			assert.False(t, out.WakeLockPending)
			assert.True(t, out.NoticeVisible)
			assert.Equal(t, tt.want, out.Notice)

			h.advance(3 * time.Second)
			assert.False(t, h.out().NoticeVisible)
			wl.AssertExpectations(t)
		})
	}
}

func TestWakeLock_DefaultsToUnsupported(t *testing.T) {
	h := newHarness(t, Options{})
	h.dispatch(ButtonPressed{Button: ButtonWakeLock})
	assert.False(t, h.out().WakeLockActive)
	assert.Equal(t, "Wake lock unavailable on this platform", h.out().Notice)
}

func TestWakeLock_WithdrawnRequestReleasesLateHandle(t *testing.T) {
	handle := mocks.NewHandle("late")
	wl := new(mocks.WakeLock)
	wl.On("Acquire", mock.Anything).Return(handle, nil).Once()
	wl.On("Release", mock.Anything, handle).Return(nil).Once()

	h := newHarness(t, Options{WakeLock: wl})
	h.hold = true
	h.dispatch(ButtonPressed{Button: ButtonWakeLock})
	require.Len(t, h.held, 1)
	assert.True(t, h.out().WakeLockPending)

	h.dispatch(ButtonPressed{Button: ButtonWakeLock})
	assert.False(t, h.out().WakeLockPending)
	assert.Len(t, h.held, 1, "withdrawing issues no new call")

	h.hold = false
	h.run([]Effect{h.held[0]})
	assert.False(t, h.out().WakeLockActive)
	assert.Equal(t, 1, h.calls["wake-lock-release"])
	assert.Empty(t, h.watched)
	wl.AssertExpectations(t)
}

func TestWakeLock_Lost(t *testing.T) {
	handle := mocks.NewHandle("lock")
	other := mocks.NewHandle("other")
	wl := new(mocks.WakeLock)
	wl.On("Acquire", mock.Anything).Return(handle, nil).Once()

	h := newHarness(t, Options{WakeLock: wl})
	h.dispatch(ButtonPressed{Button: ButtonWakeLock})
	require.True(t, h.out().WakeLockActive)

	h.dispatch(WakeLockLost{Handle: other})
	assert.True(t, h.out().WakeLockActive, "unrelated handle is ignored")

	handle.Revoke()
	h.dispatch(WakeLockLost{Handle: handle})
	out := h.out()
	assert.False(t, out.WakeLockActive)
	assert.Equal(t, "Wake lock lost", out.Notice)
	wl.AssertExpectations(t)
}

func TestFullscreen_Toggle(t *testing.T) {
	fs := new(mocks.Fullscreen)
	fs.On("Enter", mock.Anything).Return(nil).Once()
	fs.On("Exit", mock.Anything).Return(nil).Once()

	h := newHarness(t, Options{Fullscreen: fs})

	h.dispatch(ButtonPressed{Button: ButtonFullscreen})
	assert.True(t, h.out().FullscreenActive)
	assert.Equal(t, 1, h.calls["fullscreen-enter"])

	h.dispatch(ButtonPressed{Button: ButtonFullscreen})
	assert.False(t, h.out().FullscreenActive)
	assert.Equal(t, 1, h.calls["fullscreen-exit"])
	fs.AssertExpectations(t)
}

func TestFullscreen_FailureReverts(t *testing.T) {
	fs := new(mocks.Fullscreen)
	fs.On("Enter", mock.Anything).Return(capability.ErrPlatformUnsupported).Once()

	h := newHarness(t, Options{Fullscreen: fs})
	h.dispatch(ButtonPressed{Button: ButtonFullscreen})

	out := h.out()
	assert.False(t, out.FullscreenActive)
	assert.Equal(t, "Fullscreen unavailable", out.Notice)
	fs.AssertExpectations(t)
}

func TestFullscreen_StaleFailureIgnored(t *testing.T) {
	fs := new(mocks.Fullscreen)
	fs.On("Enter", mock.Anything).Return(errors.New("slow failure")).Once()
	fs.On("Exit", mock.Anything).Return(nil).Once()

	h := newHarness(t, Options{Fullscreen: fs})
	h.hold = true
	h.dispatch(ButtonPressed{Button: ButtonFullscreen})
	h.dispatch(ButtonPressed{Button: ButtonFullscreen})
	require.Len(t, h.held, 2)
	assert.False(t, h.out().FullscreenActive)

	h.hold = false
	h.run([]Effect{h.held[0]})
	assert.False(t, h.out().FullscreenActive)
	assert.False(t, h.out().NoticeVisible)

	h.run([]Effect{h.held[1]})
	assert.False(t, h.out().FullscreenActive)
	fs.AssertExpectations(t)
}

func TestFullscreenChanged(t *testing.T) {
	h := newHarness(t, Options{FullscreenActive: true})
	assert.True(t, h.out().FullscreenActive)

	h.dispatch(FullscreenChanged{Active: false})
	assert.False(t, h.out().FullscreenActive)
}

func TestNotify(t *testing.T) {
	h := newHarness(t, Options{})
	h.dispatch(Notify{Text: "Copied #ff8b27"})
	assert.Equal(t, "Copied #ff8b27", h.out().Notice)

	h.advance(3 * time.Second)
	out := h.out()
	assert.False(t, out.NoticeVisible)
	assert.Empty(t, out.Notice)
}

func TestShutdown(t *testing.T) {
	handle := mocks.NewHandle("lock")
	wl := new(mocks.WakeLock)
	wl.On("Acquire", mock.Anything).Return(handle, nil).Once()
	wl.On("Release", mock.Anything, handle).Return(nil).Once()

	h := newHarness(t, Options{WakeLock: wl})
	assert.Empty(t, h.s.Shutdown(), "nothing held, nothing to release")

	h.dispatch(ButtonPressed{Button: ButtonWakeLock})
	require.True(t, h.out().WakeLockActive)

	h.run(h.s.Shutdown())
	assert.False(t, h.out().WakeLockActive)
	assert.Equal(t, 1, h.calls["wake-lock-release"])
	wl.AssertExpectations(t)
}
