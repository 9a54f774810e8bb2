package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ventctl/internal/router"
	"github.com/abhisek/ventctl/internal/screen"
	"github.com/abhisek/ventctl/internal/ui/layout"
	"github.com/abhisek/ventctl/internal/ventilation"
)

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router *router.Router
	sys    *ventilation.System
	width  int
	height int
}

// NewAppModel creates an AppModel that starts by asking for the
// temperature range.
func NewAppModel(sys *ventilation.System) AppModel {
	f := flow{sys: sys}
	return AppModel{
		router: router.New(f.rangeStep()),
		sys:    sys,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

// Active returns the screen currently shown.
func (m AppModel) Active() screen.Screen {
	return m.router.Active()
}

// Depth returns how many steps deep the session is.
func (m AppModel) Depth() int {
	return m.router.Depth()
}

func (m AppModel) status() string {
	if sp, ok := m.router.Active().(screen.StatusProvider); ok {
		return sp.Status()
	}
	if !m.sys.Configured() {
		return "range not set"
	}
	return fmt.Sprintf("range %s", m.sys.TemperatureRange())
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame for the current window size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.TooSmall(m.width, m.height)
	}

	active := m.router.Active()
	hints := []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		hints = hp.KeyHints()
	}

	f := layout.Frame{
		Title:  active.Title(),
		Status: m.status(),
		Hints:  hints,
		Width:  m.width,
		Height: m.height,
	}
	return f.Render(m.router.View)
}

// Run starts the interactive session and blocks until the user quits.
func Run(sys *ventilation.System, opts ...tea.ProgramOption) error {
	p := tea.NewProgram(NewAppModel(sys), opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("interactive session: %w", err)
	}
	return nil
}
