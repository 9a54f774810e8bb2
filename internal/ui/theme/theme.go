package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, cool tones with warm accents for the hot end of the scale
var (
	Primary   = lipgloss.Color("#0EA5E9") // Sky
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Warning   = lipgloss.Color("#EAB308") // Amber
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate
)

// Typography
var (
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary)

	Subtitle = lipgloss.NewStyle().
			Foreground(TextDim)

	Body = lipgloss.NewStyle().
		Foreground(Text)

	Hint = lipgloss.NewStyle().
		Foreground(TextDim).
		Italic(true)

	ErrorText = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(1, 2)
)

// Readouts
var (
	Speed = lipgloss.NewStyle().
		Foreground(Text).
		Bold(true)

	Override = lipgloss.NewStyle().
			Foreground(Accent).
			Bold(true)

	TermActive = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	TermIdle = lipgloss.NewStyle().
			Foreground(TextDim)
)

// SpeedColor maps a fan speed in percent to a color from calm to urgent.
func SpeedColor(speed float64) color.Color {
	switch {
	case speed >= 80:
		return Error
	case speed >= 60:
		return Accent
	case speed >= 40:
		return Warning
	case speed >= 20:
		return Secondary
	default:
		return Success
	}
}
