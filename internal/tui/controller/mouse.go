package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/session"
	"screenlight/internal/tui/model"
	"screenlight/internal/tui/view"
)

// handleMouseMsg maps the terminal mouse onto the light's inputs. Motion is
// pointer activity. A left press on a slider starts dragging it, on a button
// presses it, and anywhere on the light starts a touch gesture that the
// matching release completes. The wheel steps the brightness.
func handleMouseMsg(m *model.Model, msg tea.MouseMsg) (*model.Model, tea.Cmd) {
	switch m.CurrentAppMode {
	case model.ModeLogOverlay:
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(msg)
		return m, cmd
	case model.ModeLight:
	default:
		return m, nil
	}

	lay := view.ComputeLayout(m.Width, m.Height, m.Output())

	switch msg.Action {
	case tea.MouseActionMotion:
		cmds := []tea.Cmd{dispatch(m, session.PointerMoved{})}
		if m.Drag != model.SliderNone {
			cmds = append(cmds, dragTo(m, lay, msg.X))
		}
		return m, tea.Batch(cmds...)

	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			return m, applySetting(m, m.Session.Setting().AdjustBrightness(brightnessStep(m)))
		case tea.MouseButtonWheelDown:
			return m, applySetting(m, m.Session.Setting().AdjustBrightness(-brightnessStep(m)))
		case tea.MouseButtonLeft:
			return m, press(m, lay, msg.X, msg.Y)
		}

	case tea.MouseActionRelease:
		if m.Drag != model.SliderNone {
			LogDebug(m, controllerSubsystem, "Drag on %s slider ended", m.Drag)
			m.Drag = model.SliderNone
			return m, nil
		}
		if m.TouchActive {
			m.TouchActive = false
			return m, dispatch(m, session.TouchEnded{Y: rowToUnits(m, msg.Y), At: m.Clock.Now()})
		}
	}
	return m, nil
}

func press(m *model.Model, lay view.Layout, x, y int) tea.Cmd {
	if s := lay.SliderAt(x, y); s != model.SliderNone {
		m.Drag = s
		return dragTo(m, lay, x)
	}
	if b, ok := lay.ButtonAt(x, y); ok {
		return dispatch(m, session.ButtonPressed{Button: b})
	}
	if lay.InPanel(x, y) {
		return nil
	}
	m.TouchActive = true
	return dispatch(m, session.TouchStarted{Y: rowToUnits(m, y), At: m.Clock.Now()})
}

// dragTo sets the dragged slider to the value under column x. A drag ends
// when its panel has closed underneath it.
func dragTo(m *model.Model, lay view.Layout, x int) tea.Cmd {
	track := lay.Track(m.Drag)
	if track.Empty() {
		m.Drag = model.SliderNone
		return nil
	}
	v := view.SliderValue(m.Drag, track, x)
	setting := m.Session.Setting()
	switch m.Drag {
	case model.SliderTemperature:
		if v == setting.TemperatureKelvin {
			return nil
		}
		setting = setting.WithTemperature(v)
	case model.SliderBrightness:
		if v == setting.BrightnessPercent {
			return nil
		}
		setting = setting.WithBrightness(v)
	}
	return applySetting(m, setting)
}

// rowToUnits converts a terminal row into gesture distance units.
func rowToUnits(m *model.Model, row int) float64 {
	units := m.RowUnits
	if units <= 0 {
		units = model.DefaultRowUnits
	}
	return float64(row) * units
}
