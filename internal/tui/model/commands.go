package model

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/capability"
	"screenlight/internal/session"
	"screenlight/internal/timer"
	"screenlight/pkg/logging"
)

// EffectCmds turns session effects into Bubble Tea commands. The results of
// those commands are session events that come back through Update.
func (m *Model) EffectCmds(effects []session.Effect) tea.Cmd {
	var cmds []tea.Cmd
	for _, eff := range effects {
		switch eff := eff.(type) {
		case session.ArmTimer:
			cmds = append(cmds, TimerCmd(m.Clock, eff.Timer))
		case session.Call:
			cmds = append(cmds, m.tracker().cmd(eff, m.CallTimeout))
		case session.WatchWakeLock:
			cmds = append(cmds, WatchWakeLockCmd(eff.Handle))
		default:
			logging.Warn("Model", "Unhandled effect %T", eff)
		}
	}
	return tea.Batch(cmds...)
}

// TimerCmd delivers TimerFired once t is due. Superseded instances still
// fire; the session discards them by generation.
func TimerCmd(clock timer.Clock, t timer.Timer) tea.Cmd {
	d := t.Deadline.Sub(clock.Now())
	if d < 0 {
		d = 0
	}
	return tea.Tick(d, func(time.Time) tea.Msg {
		return session.TimerFired{Timer: t}
	})
}

// CallCmd runs a capability call off the event loop with a timeout. The call
// is cancelled early when parent is.
func CallCmd(parent context.Context, call session.Call, timeout time.Duration) tea.Cmd {
	if timeout <= 0 {
		timeout = DefaultCallTimeout
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(parent, timeout)
		defer cancel()
		logging.Debug("Model", "Running %s", call.Name)
		return call.Run(ctx)
	}
}

// WatchWakeLockCmd reports WakeLockLost once the handle's Done channel
// closes. After a deliberate release the event is stale and ignored.
func WatchWakeLockCmd(h capability.Handle) tea.Cmd {
	if h == nil {
		return nil
	}
	return func() tea.Msg {
		<-h.Done()
		return session.WakeLockLost{Handle: h}
	}
}

// CopyColorCmd writes hex to the clipboard and reports the outcome as a
// notice.
func CopyColorCmd(write func(string) error, hex string) tea.Cmd {
	return func() tea.Msg {
		if write == nil {
			return session.Notify{Text: "Clipboard unavailable"}
		}
		if err := write(hex); err != nil {
			logging.Error("Model", err, "Copying %s to the clipboard failed", hex)
			return session.Notify{Text: "Clipboard unavailable"}
		}
		logging.Info("Model", "Copied %s to the clipboard", hex)
		return session.Notify{Text: fmt.Sprintf("Copied %s", hex)}
	}
}
