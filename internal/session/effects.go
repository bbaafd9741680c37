package session

import (
	"context"

	"screenlight/internal/capability"
	"screenlight/internal/timer"
)

// Effect is work the session asks its runtime to perform outside Dispatch.
type Effect interface {
	isEffect()
}

// ArmTimer asks for a TimerFired event at Timer.Deadline.
type ArmTimer struct {
	Timer timer.Timer
}

// Call is an asynchronous capability request. Run may block; its returned
// event must be dispatched back into the session.
type Call struct {
	Name string
	Run  func(ctx context.Context) Event
}

// WatchWakeLock asks for a WakeLockLost event once Handle is done.
type WatchWakeLock struct {
	Handle capability.Handle
}

func (ArmTimer) isEffect()      {}
func (Call) isEffect()          {}
func (WatchWakeLock) isEffect() {}
