package controller

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"screenlight/internal/timer"
	"screenlight/internal/tui/model"
)

var epoch = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

// newTestModel returns a started 80x24 model on a manual clock.
func newTestModel(t *testing.T) (*model.Model, *timer.ManualClock) {
	t.Helper()
	clock := timer.NewManualClock(epoch)
	m := model.InitialModel(model.Options{
		Clock: clock,
		Controls: model.Controls{
			TemperatureStep:    100,
			BrightnessStep:     1,
			BrightnessPageStep: 10,
		},
	})
	m.Session.Start()
	m, _ = Update(tea.WindowSizeMsg{Width: 80, Height: 24}, m)
	require.Equal(t, 80, m.Width)
	return m, clock
}

func runeKey(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func send(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	return Update(msg, m)
}
