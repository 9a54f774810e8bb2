package components

import (
	"unicode"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ventctl/internal/ui/theme"
)

// Integer accepts the characters of a signed integer.
func Integer(r rune) bool {
	return unicode.IsDigit(r) || r == '-'
}

// IntegerPair accepts two signed integers separated by spaces.
func IntegerPair(r rune) bool {
	return Integer(r) || r == ' '
}

// TextInput wraps bubbles/textinput with ventctl styling and an optional
// character filter.
type TextInput struct {
	Model     textinput.Model
	Accept    func(rune) bool
	MaxWidth  int
	submitted bool
	valid     bool
}

// NewTextInput creates a focused text input. A nil accept allows every
// character.
func NewTextInput(placeholder string, accept func(rune) bool, maxWidth int) TextInput {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = "› "
	ti.Focus()

	if maxWidth > 0 {
		ti.CharLimit = maxWidth
	}

	return TextInput{
		Model:    ti,
		Accept:   accept,
		MaxWidth: maxWidth,
	}
}

// Init returns the initial command.
func (t TextInput) Init() tea.Cmd {
	return t.Model.Focus()
}

// Update handles messages. Key presses carrying rejected characters are
// dropped.
func (t TextInput) Update(msg tea.Msg) (TextInput, tea.Cmd) {
	if t.Accept != nil {
		if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.Text != "" {
			for _, r := range kmsg.Text {
				if !t.Accept(r) {
					return t, nil
				}
			}
		}
	}

	if _, ok := msg.(tea.KeyPressMsg); ok {
		t.submitted = false
	}

	var cmd tea.Cmd
	t.Model, cmd = t.Model.Update(msg)
	return t, cmd
}

// View renders the text input.
func (t TextInput) View() string {
	view := t.Model.View()
	if t.submitted {
		if t.valid {
			view += " " + lipgloss.NewStyle().Foreground(theme.Success).Render("✓")
		} else {
			view += " " + lipgloss.NewStyle().Foreground(theme.Error).Render("✗")
		}
	}
	return view
}

// Value returns the current input value.
func (t TextInput) Value() string {
	return t.Model.Value()
}

// Submit marks the input as submitted with a validation result. An invalid
// submission clears the value for the next attempt.
func (t *TextInput) Submit(valid bool) {
	t.submitted = true
	t.valid = valid
	if !valid {
		t.Model.SetValue("")
	}
}
