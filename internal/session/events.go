package session

import (
	"time"

	"screenlight/internal/capability"
	"screenlight/internal/timer"
)

// Event is anything the session reacts to: user input, timer expiry or the
// result of an asynchronous capability call.
type Event interface {
	isEvent()
}

// Button identifies a panel button or its keyboard shortcut.
type Button int

const (
	ButtonShowMenu Button = iota
	ButtonCloseMenu
	ButtonWakeLock
	ButtonFullscreen
)

// String makes Button satisfy the fmt.Stringer interface.
func (b Button) String() string {
	switch b {
	case ButtonShowMenu:
		return "show-menu"
	case ButtonCloseMenu:
		return "close-menu"
	case ButtonWakeLock:
		return "toggle-wake-lock"
	case ButtonFullscreen:
		return "toggle-fullscreen"
	default:
		return "unknown"
	}
}

// PointerMoved is the generic pointer activity signal.
type PointerMoved struct{}

// TouchStarted begins a gesture at vertical position Y.
type TouchStarted struct {
	Y  float64
	At time.Time
}

// TouchEnded completes a gesture at vertical position Y.
type TouchEnded struct {
	Y  float64
	At time.Time
}

// SliderChanged carries the full slider state; values are clamped on entry.
type SliderChanged struct {
	Temperature int
	Brightness  int
}

// ButtonPressed is a press on one of the panel buttons.
type ButtonPressed struct {
	Button Button
}

// TimerFired delivers an expired timer instance.
type TimerFired struct {
	Timer timer.Timer
}

// WakeLockAcquired is the result of an acquire request.
type WakeLockAcquired struct {
	Seq    uint64
	Handle capability.Handle
	Err    error
}

// WakeLockReleased is the result of a release request.
type WakeLockReleased struct {
	Err error
}

// WakeLockLost reports that the platform dropped a held lock.
type WakeLockLost struct {
	Handle capability.Handle
}

// FullscreenResult is the result of an enter or exit request.
type FullscreenResult struct {
	Seq    uint64
	Active bool
	Err    error
}

// FullscreenChanged reports a fullscreen change made outside the session.
type FullscreenChanged struct {
	Active bool
}

// Notify shows a short message on the notice indicator.
type Notify struct {
	Text string
}

func (PointerMoved) isEvent()      {}
func (TouchStarted) isEvent()      {}
func (TouchEnded) isEvent()        {}
func (SliderChanged) isEvent()     {}
func (ButtonPressed) isEvent()     {}
func (TimerFired) isEvent()        {}
func (WakeLockAcquired) isEvent()  {}
func (WakeLockReleased) isEvent()  {}
func (WakeLockLost) isEvent()      {}
func (FullscreenResult) isEvent()  {}
func (FullscreenChanged) isEvent() {}
func (Notify) isEvent()            {}
