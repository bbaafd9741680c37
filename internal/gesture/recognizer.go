// Package gesture turns touch start/end pairs into intents.
package gesture

import (
	"math"
	"time"
)

// Fixed thresholds of the recogniser.
const (
	SwipeMaxDuration = 300 * time.Millisecond
	SwipeMinDistance = 50.0
	DoubleTapWindow  = 300 * time.Millisecond
)

// Kind distinguishes touch start from touch end.
type Kind int

const (
	Start Kind = iota
	End
)

// Event is one raw touch event. Y grows downwards, as on screen.
type Event struct {
	Kind Kind
	Y    float64
	At   time.Time
}

// Intent is the semantic result of a completed gesture.
type Intent int

const (
	IntentNone Intent = iota
	IntentTap
	IntentDoubleTap
	IntentSwipeUp
	IntentSwipeDown
)

// String makes Intent satisfy the fmt.Stringer interface.
func (i Intent) String() string {
	switch i {
	case IntentTap:
		return "tap"
	case IntentDoubleTap:
		return "double-tap"
	case IntentSwipeUp:
		return "swipe-up"
	case IntentSwipeDown:
		return "swipe-down"
	default:
		return "none"
	}
}

type pending struct {
	startY    float64
	startTime time.Time
}

// Recognizer keeps the in-flight gesture and the last tap time.
type Recognizer struct {
	pending *pending
	lastTap time.Time
}

// New returns a recogniser with no history.
func New() *Recognizer {
	return &Recognizer{}
}

// Handle feeds one event and returns the intent it completes, if any.
func (r *Recognizer) Handle(ev Event) Intent {
	switch ev.Kind {
	case Start:
		r.Start(ev.Y, ev.At)
		return IntentNone
	case End:
		return r.End(ev.Y, ev.At)
	default:
		return IntentNone
	}
}

// Start records the beginning of a touch, replacing any unfinished one.
func (r *Recognizer) Start(y float64, at time.Time) {
	r.pending = &pending{startY: y, startTime: at}
}

// End completes the pending touch. An end without a start is ignored.
func (r *Recognizer) End(y float64, at time.Time) Intent {
	if r.pending == nil {
		return IntentNone
	}
	p := *r.pending
	r.pending = nil

	duration := at.Sub(p.startTime)
	delta := y - p.startY
	if duration < SwipeMaxDuration && math.Abs(delta) > SwipeMinDistance {
		if delta < 0 {
			return IntentSwipeUp
		}
		return IntentSwipeDown
	}

	intent := IntentTap
	if !r.lastTap.IsZero() && at.Sub(r.lastTap) < DoubleTapWindow {
		intent = IntentDoubleTap
	}
	r.lastTap = at
	return intent
}

// InProgress reports whether a touch has started and not yet ended.
func (r *Recognizer) InProgress() bool {
	return r.pending != nil
}
