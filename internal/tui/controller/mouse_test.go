package controller

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"screenlight/internal/timer"
	"screenlight/internal/tui/model"
	"screenlight/internal/visibility"
)

func leftPress(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func leftRelease(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func closedPanelModel(t *testing.T) (*model.Model, *timer.ManualClock) {
	t.Helper()
	m, clock := newTestModel(t)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})
	require.False(t, m.Output().PanelOpen)
	return m, clock
}

func TestHandleMouseMsg_SwipeUpOpensPanel(t *testing.T) {
	m, clock := closedPanelModel(t)

	m, _ = send(m, leftPress(40, 20))
	assert.True(t, m.TouchActive)
	clock.Advance(100 * time.Millisecond)
	m, _ = send(m, leftRelease(40, 10))

	assert.False(t, m.TouchActive)
	assert.True(t, m.Output().PanelOpen)
}

func TestHandleMouseMsg_SwipeDownClosesPanel(t *testing.T) {
	m, clock := newTestModel(t)

	m, _ = send(m, leftPress(40, 2))
	clock.Advance(100 * time.Millisecond)
	m, _ = send(m, leftRelease(40, 12))

	assert.False(t, m.Output().PanelOpen)
}

func TestHandleMouseMsg_SlowDragIsNotASwipe(t *testing.T) {
	m, clock := closedPanelModel(t)

	m, _ = send(m, leftPress(40, 20))
	clock.Advance(time.Second)
	m, _ = send(m, leftRelease(40, 10))

	assert.False(t, m.Output().PanelOpen)
}

func TestHandleMouseMsg_DoubleClickTogglesPanel(t *testing.T) {
	m, clock := closedPanelModel(t)

	m, _ = send(m, leftPress(40, 5))
	clock.Advance(50 * time.Millisecond)
	m, _ = send(m, leftRelease(40, 5))
	assert.False(t, m.Output().PanelOpen)

	clock.Advance(100 * time.Millisecond)
	m, _ = send(m, leftPress(40, 5))
	clock.Advance(50 * time.Millisecond)
	m, _ = send(m, leftRelease(40, 5))

	assert.True(t, m.Output().PanelOpen)
	_, armed := m.Session.Timers().Pending(visibility.MenuIdleKey)
	assert.False(t, armed, "a toggled panel is pinned")
}

func TestHandleMouseMsg_SliderDrag(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(m, leftPress(60, 18))
	assert.Equal(t, model.SliderTemperature, m.Drag)
	assert.Equal(t, 6500, m.Session.Setting().TemperatureKelvin)
	assert.False(t, m.TouchActive)

	m, _ = send(m, motion(19, 18))
	assert.Equal(t, 1000, m.Session.Setting().TemperatureKelvin)

	m, _ = send(m, motion(40, 5))
	assert.Equal(t, 3800, m.Session.Setting().TemperatureKelvin, "the drag follows the column anywhere on screen")

	m, _ = send(m, leftRelease(40, 5))
	assert.Equal(t, model.SliderNone, m.Drag)

	m, _ = send(m, motion(60, 18))
	assert.Equal(t, 3800, m.Session.Setting().TemperatureKelvin)
}

func TestHandleMouseMsg_BrightnessLabelRowStartsDrag(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(m, leftPress(19, 20))
	assert.Equal(t, model.SliderBrightness, m.Drag)
	assert.Equal(t, 0, m.Session.Setting().BrightnessPercent)
	assert.True(t, m.Output().BrightnessIndicatorVisible)
}

func TestHandleMouseMsg_Buttons(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(m, leftPress(39, 23))
	assert.True(t, m.Output().FullscreenActive)

	m, _ = send(m, leftRelease(39, 23))
	m, _ = send(m, leftPress(22, 23))
	assert.True(t, m.Output().WakeLockPending)

	m, _ = send(m, leftRelease(22, 23))
	m, _ = send(m, leftPress(57, 23))
	assert.False(t, m.Output().PanelOpen)
	assert.False(t, m.TouchActive)
}

func TestHandleMouseMsg_AffordanceOpensPanel(t *testing.T) {
	m, _ := closedPanelModel(t)
	require.True(t, m.Output().ToggleAffordanceVisible)

	m, _ = send(m, leftPress(40, 22))
	assert.True(t, m.Output().PanelOpen)
	assert.False(t, m.TouchActive)
}

func TestHandleMouseMsg_PressOnPanelBackgroundIsIgnored(t *testing.T) {
	m, _ := newTestModel(t)

	m, cmd := send(m, leftPress(17, 19))
	assert.Nil(t, cmd)
	assert.False(t, m.TouchActive)
	assert.Equal(t, model.SliderNone, m.Drag)
	assert.True(t, m.Output().PanelOpen)
}

func TestHandleMouseMsg_MotionIsPointerActivity(t *testing.T) {
	m, clock := newTestModel(t)
	m, _ = send(m, tea.KeyMsg{Type: tea.KeyEsc})

	clock.Advance(visibility.PointerIdleTimeout)
	m, _ = send(m, tea.MouseMsg{X: 10, Y: 10, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone})

	pending, ok := m.Session.Timers().Pending(visibility.PointerIdleKey)
	require.True(t, ok)
	assert.Equal(t, clock.Now().Add(visibility.PointerIdleTimeout), pending.Deadline)
	assert.True(t, m.Output().ToggleAffordanceVisible)
}

func TestHandleMouseMsg_Wheel(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = send(m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
	assert.Equal(t, 99, m.Session.Setting().BrightnessPercent)

	m, _ = send(m, tea.MouseMsg{X: 40, Y: 5, Action: tea.MouseActionPress, Button: tea.MouseButtonWheelUp})
	assert.Equal(t, 100, m.Session.Setting().BrightnessPercent)
}

func TestHandleMouseMsg_IgnoredInHelpOverlay(t *testing.T) {
	m, _ := newTestModel(t)
	m.CurrentAppMode = model.ModeHelpOverlay

	m, cmd := send(m, leftPress(60, 18))
	assert.Nil(t, cmd)
	assert.Equal(t, model.SliderNone, m.Drag)
	assert.Equal(t, 1800, m.Session.Setting().TemperatureKelvin)
}

func TestRowToUnits(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, 160.0, rowToUnits(m, 10))

	m.RowUnits = 0
	assert.Equal(t, 10*model.DefaultRowUnits, rowToUnits(m, 10))

	m.RowUnits = 20
	assert.Equal(t, 200.0, rowToUnits(m, 10))
}
