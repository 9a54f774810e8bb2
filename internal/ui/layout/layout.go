package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ventctl/internal/ui/theme"
)

// Minimum terminal size for the interactive session.
const (
	MinWidth  = 60
	MinHeight = 20
)

// KeyHint is a key binding shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// IsTooSmall reports whether a terminal is below the minimum size.
func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

// TooSmall renders the message shown instead of the frame when the
// terminal is below the minimum size.
func TooSmall(width, height int) string {
	msg := fmt.Sprintf("Terminal too small.\n\nResize to at least %d x %d\n(currently %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Align(lipgloss.Center).Render(msg))
}

// Frame is the chrome around every screen: a title bar on top and the key
// hints at the bottom.
type Frame struct {
	Title  string
	Status string
	Hints  []KeyHint
	Width  int
	Height int
}

// Header renders the title bar: product and screen title on the left,
// status on the right.
func (f Frame) Header() string {
	left := theme.Title.Render("ventctl")
	if f.Title != "" {
		left += theme.Subtitle.Render(" / ") + theme.Body.Bold(true).Render(f.Title)
	}
	status := lipgloss.NewStyle().Foreground(theme.Accent).Render(f.Status)

	gap := max(f.Width-2-lipgloss.Width(left)-lipgloss.Width(status), 1)
	return lipgloss.NewStyle().
		Width(f.Width).
		Padding(0, 1).
		Background(theme.BgCard).
		Render(left + strings.Repeat(" ", gap) + status)
}

// Footer renders a rule and the key hints below it.
func (f Frame) Footer() string {
	parts := make([]string, 0, len(f.Hints))
	for _, h := range f.Hints {
		parts = append(parts, theme.Body.Bold(true).Render(h.Key)+" "+theme.Subtitle.Render(h.Description))
	}
	rule := lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(f.Width, 0)))
	hints := lipgloss.NewStyle().Padding(0, 1).Render(strings.Join(parts, theme.Subtitle.Render("  ·  ")))
	return rule + "\n" + hints
}

// Render draws the header, the body produced by view for the space left
// over, and the footer.
func (f Frame) Render(view func(width, height int) string) string {
	header := f.Header()
	footer := f.Footer()
	bodyHeight := max(f.Height-lipgloss.Height(header)-lipgloss.Height(footer), 0)

	body := lipgloss.NewStyle().
		Width(f.Width).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(view(f.Width, bodyHeight))

	return header + "\n" + body + "\n" + footer
}
