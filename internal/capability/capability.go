package capability

import (
	"context"
	"errors"
)

var (
	// ErrPlatformUnsupported is returned when the platform has no way to
	// provide the capability.
	ErrPlatformUnsupported = errors.New("not supported on this platform")
	// ErrRequestDenied is returned when the platform refused the request.
	ErrRequestDenied = errors.New("request denied")
)

// Handle is a held wake lock. Done is closed once the lock is gone, whether
// released by us or revoked by the platform.
type Handle interface {
	Done() <-chan struct{}
}

// WakeLock keeps the display from sleeping while a Handle is held.
type WakeLock interface {
	Acquire(ctx context.Context) (Handle, error)
	Release(ctx context.Context, h Handle) error
}

// Fullscreen switches the surface in and out of fullscreen mode.
type Fullscreen interface {
	Enter(ctx context.Context) error
	Exit(ctx context.Context) error
}

// Unsupported is both a WakeLock and a Fullscreen that always fails with
// ErrPlatformUnsupported.
type Unsupported struct{}

// Acquire implements WakeLock.
func (Unsupported) Acquire(context.Context) (Handle, error) {
	return nil, ErrPlatformUnsupported
}

// Release implements WakeLock.
func (Unsupported) Release(context.Context, Handle) error { return nil }

// Enter implements Fullscreen.
func (Unsupported) Enter(context.Context) error { return ErrPlatformUnsupported }

// Exit implements Fullscreen.
func (Unsupported) Exit(context.Context) error { return ErrPlatformUnsupported }
