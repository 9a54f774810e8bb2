package prompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ventctl/internal/screen"
	"github.com/abhisek/ventctl/internal/ui/components"
	"github.com/abhisek/ventctl/internal/ui/layout"
	"github.com/abhisek/ventctl/internal/ui/theme"
)

// SubmitFunc handles an entered value. A non-nil error is shown under the
// input and the same prompt is asked again; otherwise the returned command
// runs, usually to move on to the next step.
type SubmitFunc func(value string) (tea.Cmd, error)

// Options describes one prompt.
type Options struct {
	Title       string
	Label       string
	Placeholder string
	Help        string
	Accept      func(rune) bool
	CharLimit   int
	Submit      SubmitFunc
}

// PromptScreen asks for a single line of input and re-asks until Submit
// accepts it.
type PromptScreen struct {
	opts  Options
	input components.TextInput
	err   error
}

var _ screen.Screen = (*PromptScreen)(nil)
var _ screen.KeyHintProvider = (*PromptScreen)(nil)

// New creates a PromptScreen.
func New(opts Options) *PromptScreen {
	return &PromptScreen{
		opts:  opts,
		input: components.NewTextInput(opts.Placeholder, opts.Accept, opts.CharLimit),
	}
}

func (p *PromptScreen) Init() tea.Cmd {
	return p.input.Init()
}

func (p *PromptScreen) Title() string {
	return p.opts.Title
}

func (p *PromptScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Submit"},
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

// Err returns the error from the last rejected submission.
func (p *PromptScreen) Err() error {
	return p.err
}

// Value returns the text currently entered.
func (p *PromptScreen) Value() string {
	return p.input.Value()
}

func (p *PromptScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok && kmsg.String() == "enter" {
		return p, p.submit()
	}

	var cmd tea.Cmd
	p.input, cmd = p.input.Update(msg)
	if _, ok := msg.(tea.KeyPressMsg); ok {
		p.err = nil
	}
	return p, cmd
}

func (p *PromptScreen) submit() tea.Cmd {
	value := strings.TrimSpace(p.input.Value())
	if value == "" || p.opts.Submit == nil {
		return nil
	}

	cmd, err := p.opts.Submit(value)
	p.err = err
	p.input.Submit(err == nil)
	if err != nil {
		return nil
	}
	return cmd
}

func (p *PromptScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Body.Render(p.opts.Label))
	b.WriteString("\n\n")
	b.WriteString(p.input.View())

	if p.err != nil {
		b.WriteString("\n\n")
		b.WriteString(theme.ErrorText.Render("Invalid input, try again: " + p.err.Error()))
	}

	if p.opts.Help != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Hint.Render(p.opts.Help))
	}

	panel := components.Panel(p.opts.Title, b.String(), components.ContentWidth(width))
	return components.Center(panel, width, height)
}
