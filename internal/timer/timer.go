// Package timer manages named, cancelable, single-shot timers.
//
// A Set holds at most one live timer per Key. Arming a key replaces whatever
// was pending under it, and every instance carries a generation number so a
// firing can be checked against the live instance: a cancelled or superseded
// timer is never claimed, whichever way its firing is delivered (a bubbletea
// tick message or a simulated clock advance in tests).
package timer

import (
	"sort"
	"time"
)

// Key names the purpose of a timer, e.g. "menu-idle".
type Key string

// Timer is one armed instance of a keyed timer.
type Timer struct {
	Key      Key
	Gen      uint64
	Deadline time.Time
}

// Set is the registry of live timers. It is not safe for concurrent use; it
// belongs to the single event loop that owns the session state.
type Set struct {
	clock Clock
	seq   uint64
	live  map[Key]Timer
	armed []Timer
}

// NewSet returns an empty set reading time from clock.
func NewSet(clock Clock) *Set {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Set{clock: clock, live: make(map[Key]Timer)}
}

// Clock returns the clock the set was created with.
func (s *Set) Clock() Clock { return s.clock }

// Arm (re)starts the timer for key to fire d from now, cancelling any pending
// instance under the same key.
func (s *Set) Arm(key Key, d time.Duration) Timer {
	s.seq++
	t := Timer{Key: key, Gen: s.seq, Deadline: s.clock.Now().Add(d)}
	s.live[key] = t
	s.armed = append(s.armed, t)
	return t
}

// Drain returns the instances armed since the previous Drain that are still
// live, in arming order. The event loop schedules a wake-up for each.
func (s *Set) Drain() []Timer {
	var out []Timer
	for _, t := range s.armed {
		if cur, ok := s.live[t.Key]; ok && cur.Gen == t.Gen {
			out = append(out, t)
		}
	}
	s.armed = s.armed[:0]
	return out
}

// Cancel drops the pending instance for key. It reports whether one existed.
func (s *Set) Cancel(key Key) bool {
	_, ok := s.live[key]
	delete(s.live, key)
	return ok
}

// Pending returns the live instance for key.
func (s *Set) Pending(key Key) (Timer, bool) {
	t, ok := s.live[key]
	return t, ok
}

// Len returns the number of live timers.
func (s *Set) Len() int { return len(s.live) }

// Claim consumes t if it is still the live instance of its key. A claimed
// timer is no longer pending; stale instances are rejected.
func (s *Set) Claim(t Timer) bool {
	cur, ok := s.live[t.Key]
	if !ok || cur.Gen != t.Gen {
		return false
	}
	delete(s.live, t.Key)
	return true
}

// Due returns the live timers whose deadline is not after now, ordered by
// deadline and then by arming order. It does not claim them.
func (s *Set) Due(now time.Time) []Timer {
	var due []Timer
	for _, t := range s.live {
		if !t.Deadline.After(now) {
			due = append(due, t)
		}
	}
	sort.Slice(due, func(i, j int) bool {
		if due[i].Deadline.Equal(due[j].Deadline) {
			return due[i].Gen < due[j].Gen
		}
		return due[i].Deadline.Before(due[j].Deadline)
	})
	return due
}
