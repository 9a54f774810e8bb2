package components

import (
	"fmt"
	"image/color"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/ventctl/internal/ui/theme"
)

// Bar displays a horizontal bar filled to Fraction in [0, 1], followed by
// an optional caption such as "0.75" or "48%".
type Bar struct {
	Label    string
	Fraction float64
	Caption  string
	Width    int
	Fill     color.Color
}

// NewBar creates a bar with the default fill.
func NewBar(label string, fraction float64, caption string, width int) Bar {
	return Bar{
		Label:    label,
		Fraction: fraction,
		Caption:  caption,
		Width:    width,
		Fill:     theme.Secondary,
	}
}

// SpeedBar renders a fan speed in percent colored by intensity.
func SpeedBar(speed float64, width int) Bar {
	b := NewBar("", speed/100, fmt.Sprintf("%5.1f%%", speed), width)
	b.Fill = theme.SpeedColor(speed)
	return b
}

// View renders the bar.
func (b Bar) View() string {
	var result string

	if b.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(b.Label) + "  "
	}

	labelWidth := lipgloss.Width(result)
	captionWidth := 0
	if b.Caption != "" {
		captionWidth = lipgloss.Width(b.Caption) + 2
	}

	barWidth := b.Width - labelWidth - captionWidth
	if barWidth < 4 {
		barWidth = 4
	}

	filled := int(float64(barWidth) * b.Fraction)
	filled = max(0, min(filled, barWidth))
	empty := barWidth - filled

	fill := b.Fill
	if fill == nil {
		fill = theme.Secondary
	}
	filledStr := lipgloss.NewStyle().
		Background(fill).
		Render(strings.Repeat(" ", filled))

	emptyStr := lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += filledStr + emptyStr

	if b.Caption != "" {
		result += lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render("  " + b.Caption)
	}

	return result
}
