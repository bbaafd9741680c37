package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/light"
	"screenlight/internal/session"
	"screenlight/internal/tui/model"
	"screenlight/internal/tui/view"
)

const controllerDispatchSubsystem = "ControllerDispatch"

// Update is the entry point for all messages.
func Update(msg tea.Msg, m *model.Model) (*model.Model, tea.Cmd) {
	return mainControllerDispatch(m, msg)
}

// mainControllerDispatch is the central message routing function for the TUI.
// Input messages go to the key and mouse handlers, which translate them into
// session events. Session events coming back from timers and capability calls
// are dispatched directly, and the effects they produce become commands.
func mainControllerDispatch(m *model.Model, msg tea.Msg) (*model.Model, tea.Cmd) {
	switch msg.(type) {
	case tea.MouseMsg, model.NewLogEntryMsg, session.TimerFired:
		// Too frequent to log.
	default:
		LogDebug(m, controllerDispatchSubsystem, "Received msg: %T", msg)
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		m, cmd = handleKeyMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.MouseMsg:
		m, cmd = handleMouseMsg(m, msg)
		cmds = append(cmds, cmd)

	case tea.WindowSizeMsg:
		m, cmd = handleWindowSizeMsg(m, msg)
		cmds = append(cmds, cmd)

	case model.NewLogEntryMsg:
		model.AddRawLineToActivityLog(m, msg.Entry.String())
		cmds = append(cmds, model.ListenForLogEntriesCmd(m.LogChannel))

	case model.LogChannelClosedMsg:
		m.LogChannel = nil

	case model.CallResultMsg:
		m.CallDelivered(msg.ID)
		if msg.Event != nil {
			cmds = append(cmds, dispatch(m, msg.Event))
		}

	case session.Event:
		cmds = append(cmds, dispatch(m, msg))

	default:
		if m.CurrentAppMode == model.ModeLogOverlay {
			m.LogViewport, cmd = m.LogViewport.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	refreshLogViewport(m)
	return m, tea.Batch(cmds...)
}

// dispatch hands ev to the session and turns the resulting effects into
// commands.
func dispatch(m *model.Model, ev session.Event) tea.Cmd {
	return m.EffectCmds(m.Session.Dispatch(ev))
}

// applySetting dispatches next as a slider change.
func applySetting(m *model.Model, next light.LightSetting) tea.Cmd {
	return dispatch(m, session.SliderChanged{
		Temperature: next.TemperatureKelvin,
		Brightness:  next.BrightnessPercent,
	})
}

// refreshLogViewport re-renders the log overlay content after new lines
// arrived or the overlay was resized. It follows the tail unless the user
// scrolled up.
func refreshLogViewport(m *model.Model) {
	if !m.ActivityLogDirty {
		return
	}
	follow := m.LogViewport.AtBottom()
	m.LogViewport.SetContent(view.FormatLogLines(m.ActivityLog, m.LogViewport.Width))
	if follow {
		m.LogViewport.GotoBottom()
	}
	m.ActivityLogDirty = false
}
