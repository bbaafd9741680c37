// Package capability defines the platform services the light depends on but
// does not implement itself: keeping the screen awake and switching to
// fullscreen.
//
// # Overview
//
// Both services are reached through small interfaces, WakeLock and
// Fullscreen. Calls may block, so the session never makes them on the event
// loop. It emits a Call effect instead, the caller runs it in its own
// goroutine, and the outcome comes back as a later event.
//
// # Wake locks
//
// Acquire returns a Handle. The handle's Done channel closes when the lock is
// gone, whether released by us or revoked by the platform, so the owner can
// watch for loss without polling:
//
//	h, err := wl.Acquire(ctx)
//	if err != nil {
//	    return err
//	}
//	go func() {
//	    <-h.Done()
//	    // lock lost
//	}()
//
// NewWakeLock picks a backend by name. Inhibitor holds the lock by keeping a
// helper process such as systemd-inhibit or caffeinate alive; killing the
// process releases it.
//
// # Platforms without support
//
// Unsupported implements both interfaces and fails with
// ErrPlatformUnsupported. Refusals by the platform surface as
// ErrRequestDenied.
package capability
