// Package indicator implements transient on-screen readouts: shown on
// demand, hidden again after a fixed delay.
package indicator

import (
	"time"

	"screenlight/internal/timer"
)

// Durations of the indicators the light uses.
const (
	BrightnessTimeout  = 1500 * time.Millisecond
	TemperatureTimeout = 1500 * time.Millisecond
	NoticeTimeout      = 3000 * time.Millisecond
)

// Indicator is one "show, then auto-hide" readout. Each instance owns its
// own timer key, so instances sharing a timer.Set never interfere.
type Indicator struct {
	key     timer.Key
	timeout time.Duration
	timers  *timer.Set
	visible bool
	text    string
}

// New returns a hidden indicator that auto-hides timeout after each Show.
func New(timers *timer.Set, key timer.Key, timeout time.Duration) *Indicator {
	return &Indicator{key: key, timeout: timeout, timers: timers}
}

// Key returns the timer key owned by the indicator.
func (i *Indicator) Key() timer.Key { return i.key }

// Visible reports whether the indicator is on screen.
func (i *Indicator) Visible() bool { return i.visible }

// Text returns the message set by the last ShowText.
func (i *Indicator) Text() string { return i.text }

// Show makes the indicator visible and restarts its auto-hide timer.
func (i *Indicator) Show() {
	i.visible = true
	i.timers.Arm(i.key, i.timeout)
}

// ShowText is Show with a message attached.
func (i *Indicator) ShowText(text string) {
	i.text = text
	i.Show()
}

// Hide removes the indicator immediately and cancels its timer.
func (i *Indicator) Hide() {
	i.visible = false
	i.timers.Cancel(i.key)
}

// Fire applies an expired timer; it reports false if t is not the live
// instance of this indicator's timer.
func (i *Indicator) Fire(t timer.Timer) bool {
	if t.Key != i.key || !i.timers.Claim(t) {
		return false
	}
	i.visible = false
	return true
}
