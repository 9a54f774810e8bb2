package components

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ventctl/internal/ui/theme"
)

// Border (2) + horizontal padding (4).
const panelFrame = 6

// ContentWidth returns the inner width shared by every panel on a screen
// so stacked boxes line up.
func ContentWidth(frameWidth int) int {
	return max(20, min(frameWidth-panelFrame, 64))
}

// Center places content in the middle of a width x height area.
func Center(content string, width, height int) string {
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

// Panel wraps content in a rounded card whose inner width is cw, with an
// optional title on the first line.
func Panel(title, content string, cw int) string {
	body := content
	if title != "" {
		body = theme.Title.Render(title) + "\n\n" + content
	}
	return theme.Card.Width(cw + panelFrame).Render(body)
}
