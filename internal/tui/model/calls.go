package model

import (
	"context"
	"sort"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/session"
	"screenlight/pkg/logging"
)

// CallResultMsg carries the outcome of a tracked capability call to Update.
type CallResultMsg struct {
	ID    uint64
	Event session.Event
}

// callTracker follows capability calls from the moment they start until
// Update consumes their result. Results the event loop never saw, because
// the program quit first, are handed to the shutdown path instead of being
// lost with whatever they hold.
type callTracker struct {
	ctx    context.Context
	cancel context.CancelFunc

	mu          sync.Mutex
	running     sync.WaitGroup
	stopped     bool
	nextID      uint64
	undelivered map[uint64]session.Event
}

func newCallTracker() *callTracker {
	ctx, cancel := context.WithCancel(context.Background())
	return &callTracker{
		ctx:         ctx,
		cancel:      cancel,
		undelivered: make(map[uint64]session.Event),
	}
}

func (t *callTracker) cmd(call session.Call, timeout time.Duration) tea.Cmd {
	run := CallCmd(t.ctx, call, timeout)
	return func() tea.Msg {
		t.mu.Lock()
		if t.stopped {
			t.mu.Unlock()
			logging.Debug("Model", "Skipping %s after shutdown", call.Name)
			return nil
		}
		t.nextID++
		id := t.nextID
		t.running.Add(1)
		t.mu.Unlock()
		defer t.running.Done()

		ev, _ := run().(session.Event)
		t.mu.Lock()
		t.undelivered[id] = ev
		t.mu.Unlock()
		return CallResultMsg{ID: id, Event: ev}
	}
}

func (t *callTracker) delivered(id uint64) {
	t.mu.Lock()
	delete(t.undelivered, id)
	t.mu.Unlock()
}

// stop refuses new calls, cancels running ones and waits up to wait for
// them to return. It returns the results Update never consumed, oldest
// first.
func (t *callTracker) stop(wait time.Duration) []session.Event {
	t.mu.Lock()
	t.stopped = true
	t.mu.Unlock()
	t.cancel()

	done := make(chan struct{})
	go func() {
		t.running.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(wait):
		logging.Warn("Model", "Capability calls still running after %s", wait)
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	ids := make([]uint64, 0, len(t.undelivered))
	for id := range t.undelivered {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	events := make([]session.Event, 0, len(ids))
	for _, id := range ids {
		if ev := t.undelivered[id]; ev != nil {
			events = append(events, ev)
		}
		delete(t.undelivered, id)
	}
	return events
}

func (m *Model) tracker() *callTracker {
	if m.calls == nil {
		m.calls = newCallTracker()
	}
	return m.calls
}

// CallDelivered marks the result of call id as consumed by Update.
func (m *Model) CallDelivered(id uint64) {
	m.tracker().delivered(id)
}

// StopCalls cancels every capability call still running and returns the
// results Update never consumed. Later call commands do nothing.
func (m *Model) StopCalls(wait time.Duration) []session.Event {
	return m.tracker().stop(wait)
}
