package capability

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"time"

	"screenlight/pkg/logging"
)

const inhibitorSubsystem = "WakeLock"

// Wake lock backends accepted by NewWakeLock.
const (
	BackendAuto           = "auto"
	BackendSystemdInhibit = "systemd-inhibit"
	BackendCaffeinate     = "caffeinate"
	BackendNone           = "none"
)

// defaultGrace is how long Acquire watches a freshly started inhibitor for an
// immediate exit, which is how a refused inhibition shows up.
const defaultGrace = 250 * time.Millisecond

var backendCommands = map[string][]string{
	BackendSystemdInhibit: {
		"systemd-inhibit",
		"--what=idle:sleep",
		"--who=screenlight",
		"--why=Keeping the screen on",
		"--mode=block",
		"sleep", "infinity",
	},
	BackendCaffeinate: {"caffeinate", "-d", "-i"},
}

// Backends lists the names NewWakeLock accepts.
func Backends() []string {
	return []string{BackendAuto, BackendSystemdInhibit, BackendCaffeinate, BackendNone}
}

// For mocking in tests
var goos = runtime.GOOS

// NewWakeLock returns the WakeLock for a configured backend name.
func NewWakeLock(backend string) (WakeLock, error) {
	if backend == "" || backend == BackendAuto {
		backend = autoBackend()
	}
	if backend == BackendNone {
		return Unsupported{}, nil
	}
	argv, ok := backendCommands[backend]
	if !ok {
		return nil, fmt.Errorf("unknown wake lock backend %q (use one of %s)",
			backend, strings.Join(Backends(), ", "))
	}
	return NewInhibitor(argv...), nil
}

func autoBackend() string {
	switch goos {
	case "linux":
		return BackendSystemdInhibit
	case "darwin":
		return BackendCaffeinate
	default:
		return BackendNone
	}
}

// Inhibitor holds a wake lock by keeping a long-running helper process alive
// (systemd-inhibit, caffeinate). Killing the process releases the lock.
type Inhibitor struct {
	argv     []string
	grace    time.Duration
	lookPath func(string) (string, error)
}

// NewInhibitor returns an Inhibitor running argv while the lock is held.
func NewInhibitor(argv ...string) *Inhibitor {
	return &Inhibitor{argv: argv, grace: defaultGrace, lookPath: exec.LookPath}
}

// WithGrace overrides the immediate-exit detection window.
func (w *Inhibitor) WithGrace(d time.Duration) *Inhibitor {
	w.grace = d
	return w
}

// String returns the helper command line.
func (w *Inhibitor) String() string {
	return strings.Join(w.argv, " ")
}

type processHandle struct {
	cmd     *exec.Cmd
	done    chan struct{}
	waitErr error
}

func (h *processHandle) Done() <-chan struct{} { return h.done }

// Acquire implements WakeLock.
func (w *Inhibitor) Acquire(ctx context.Context) (Handle, error) {
	if len(w.argv) == 0 {
		return nil, ErrPlatformUnsupported
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := w.lookPath(w.argv[0])
	if err != nil {
		return nil, fmt.Errorf("%s not found: %w", w.argv[0], ErrPlatformUnsupported)
	}

	cmd := exec.Command(path, w.argv[1:]...)
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("starting %s: %w: %w", w.argv[0], ErrRequestDenied, err)
	}

	h := &processHandle{cmd: cmd, done: make(chan struct{})}
	go func() {
		h.waitErr = cmd.Wait()
		close(h.done)
	}()
	logging.Debug(inhibitorSubsystem, "Started %s (pid %d)", w.argv[0], cmd.Process.Pid)

	grace := time.NewTimer(w.grace)
	defer grace.Stop()
	select {
	case <-h.done:
		return nil, fmt.Errorf("%s exited immediately: %w: %v", w.argv[0], ErrRequestDenied, h.waitErr)
	case <-ctx.Done():
		_ = cmd.Process.Kill()
		<-h.done
		return nil, ctx.Err()
	case <-grace.C:
		return h, nil
	}
}

// Release implements WakeLock.
func (w *Inhibitor) Release(ctx context.Context, h Handle) error {
	ph, ok := h.(*processHandle)
	if !ok || ph == nil {
		return fmt.Errorf("release: foreign wake lock handle %T", h)
	}
	select {
	case <-ph.done:
		return nil
	default:
	}
	if err := ph.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return fmt.Errorf("stopping %s: %w", w.argv[0], err)
	}
	select {
	case <-ph.done:
		logging.Debug(inhibitorSubsystem, "Stopped %s", w.argv[0])
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
