package controller

import (
	tea "github.com/charmbracelet/bubbletea"

	"screenlight/internal/tui/model"
	"screenlight/internal/tui/view"
)

// App is the tea.Model driving one light. All state lives in the shared
// *model.Model; App only routes Bubble Tea callbacks to Update and Render.
type App struct {
	model *model.Model
}

// NewApp wraps m for a tea.Program.
func NewApp(m *model.Model) App {
	return App{model: m}
}

// Model returns the state the app renders.
func (a App) Model() *model.Model { return a.model }

func (a App) Init() tea.Cmd { return a.model.Init() }

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := Update(msg, a.model)
	a.model = next
	return a, cmd
}

func (a App) View() string { return view.Render(a.model) }
