package controller

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/capability"
)

// AltScreen is the fullscreen capability of a terminal: the alternate screen
// buffer. Switching it is a message to the running program, so the program's
// Send is bound after the program exists.
type AltScreen struct {
	mu   sync.Mutex
	send func(tea.Msg)
}

var _ capability.Fullscreen = (*AltScreen)(nil)

// NewAltScreen returns an unbound AltScreen.
func NewAltScreen() *AltScreen {
	return &AltScreen{}
}

// Bind connects the capability to a running program.
func (a *AltScreen) Bind(send func(tea.Msg)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.send = send
}

// Enter switches to the alternate screen.
func (a *AltScreen) Enter(ctx context.Context) error {
	return a.request(ctx, tea.EnterAltScreen())
}

// Exit returns to the normal screen.
func (a *AltScreen) Exit(ctx context.Context) error {
	return a.request(ctx, tea.ExitAltScreen())
}

func (a *AltScreen) request(ctx context.Context, msg tea.Msg) error {
	a.mu.Lock()
	send := a.send
	a.mu.Unlock()

	if send == nil {
		return capability.ErrPlatformUnsupported
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	send(msg)
	return nil
}
