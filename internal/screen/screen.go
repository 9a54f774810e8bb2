package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ventctl/internal/ui/layout"
)

// Screen is one step of the interactive flow.
type Screen interface {
	// Init returns an initial command when the screen becomes active.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen and command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen body. The frame draws the header and footer.
	View(width, height int) string

	// Title is shown in the header.
	Title() string
}

// KeyHintProvider is implemented by screens that replace the default
// footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider is implemented by screens that put a status string on
// the right of the header.
type StatusProvider interface {
	Status() string
}
