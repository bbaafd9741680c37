package controller

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/config"
	"screenlight/internal/session"
	"screenlight/internal/tui/model"
)

// QuittingMessage is shown for the last frame before the program exits.
const QuittingMessage = "Turning the light off...\n"

// handleKeyMsg processes key presses. Quit works everywhere; the overlays
// capture everything else except the keys that close them.
func handleKeyMsg(m *model.Model, keyMsg tea.KeyMsg) (*model.Model, tea.Cmd) {
	if key.Matches(keyMsg, m.Keys.Quit) {
		return quit(m)
	}

	switch m.CurrentAppMode {
	case model.ModeHelpOverlay:
		if key.Matches(keyMsg, m.Keys.Help, m.Keys.CloseMenu) {
			setMode(m, model.ModeLight)
		}
		return m, nil

	case model.ModeLogOverlay:
		if key.Matches(keyMsg, m.Keys.ToggleLog, m.Keys.CloseMenu) {
			setMode(m, model.ModeLight)
			return m, nil
		}
		var cmd tea.Cmd
		m.LogViewport, cmd = m.LogViewport.Update(keyMsg)
		return m, cmd
	}

	setting := m.Session.Setting()
	switch {
	case key.Matches(keyMsg, m.Keys.Help):
		setMode(m, model.ModeHelpOverlay)
		return m, nil
	case key.Matches(keyMsg, m.Keys.ToggleLog):
		setMode(m, model.ModeLogOverlay)
		m.LogViewport.GotoBottom()
		return m, nil

	case key.Matches(keyMsg, m.Keys.TemperatureDown):
		return m, applySetting(m, setting.AdjustTemperature(-temperatureStep(m)))
	case key.Matches(keyMsg, m.Keys.TemperatureUp):
		return m, applySetting(m, setting.AdjustTemperature(temperatureStep(m)))
	case key.Matches(keyMsg, m.Keys.BrightnessUp):
		return m, applySetting(m, setting.AdjustBrightness(brightnessStep(m)))
	case key.Matches(keyMsg, m.Keys.BrightnessDown):
		return m, applySetting(m, setting.AdjustBrightness(-brightnessStep(m)))
	case key.Matches(keyMsg, m.Keys.BrightnessPageUp):
		return m, applySetting(m, setting.AdjustBrightness(brightnessPageStep(m)))
	case key.Matches(keyMsg, m.Keys.BrightnessPageDown):
		return m, applySetting(m, setting.AdjustBrightness(-brightnessPageStep(m)))

	case key.Matches(keyMsg, m.Keys.ShowMenu):
		return m, dispatch(m, session.ButtonPressed{Button: session.ButtonShowMenu})
	case key.Matches(keyMsg, m.Keys.CloseMenu):
		return m, dispatch(m, session.ButtonPressed{Button: session.ButtonCloseMenu})
	case key.Matches(keyMsg, m.Keys.WakeLock):
		return m, dispatch(m, session.ButtonPressed{Button: session.ButtonWakeLock})
	case key.Matches(keyMsg, m.Keys.Fullscreen):
		return m, dispatch(m, session.ButtonPressed{Button: session.ButtonFullscreen})
	case key.Matches(keyMsg, m.Keys.CopyColor):
		return m, model.CopyColorCmd(m.CopyToClipboard, m.Output().Background)
	}
	return m, nil
}

func quit(m *model.Model) (*model.Model, tea.Cmd) {
	LogInfo(controllerSubsystem, "Quit requested")
	setMode(m, model.ModeQuitting)
	m.QuittingMessage = QuittingMessage
	return m, tea.Quit
}

func setMode(m *model.Model, mode model.AppMode) {
	if m.CurrentAppMode == mode {
		return
	}
	LogDebug(m, controllerSubsystem, "Mode %s -> %s", m.CurrentAppMode, mode)
	m.LastAppMode = m.CurrentAppMode
	m.CurrentAppMode = mode
}

func temperatureStep(m *model.Model) int {
	return stepOr(m.Controls.TemperatureStep, config.DefaultTemperatureStep)
}

func brightnessStep(m *model.Model) int {
	return stepOr(m.Controls.BrightnessStep, config.DefaultBrightnessStep)
}

func brightnessPageStep(m *model.Model) int {
	return stepOr(m.Controls.BrightnessPageStep, config.DefaultBrightnessPageStep)
}

func stepOr(step, fallback int) int {
	if step > 0 {
		return step
	}
	return fallback
}
