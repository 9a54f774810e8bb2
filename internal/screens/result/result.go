package result

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/ventctl/internal/router"
	"github.com/abhisek/ventctl/internal/screen"
	"github.com/abhisek/ventctl/internal/ui/components"
	"github.com/abhisek/ventctl/internal/ui/layout"
	"github.com/abhisek/ventctl/internal/ui/theme"
	"github.com/abhisek/ventctl/internal/ventilation"
)

// ResultScreen shows a fan speed recommendation and how the rules got there.
type ResultScreen struct {
	rec       ventilation.Recommendation
	threshold float64
	restart   func() screen.Screen
}

var _ screen.Screen = (*ResultScreen)(nil)
var _ screen.KeyHintProvider = (*ResultScreen)(nil)
var _ screen.StatusProvider = (*ResultScreen)(nil)

// New creates a ResultScreen. restart builds the first step of a new run.
func New(rec ventilation.Recommendation, policy ventilation.OverridePolicy, restart func() screen.Screen) *ResultScreen {
	return &ResultScreen{
		rec:       rec,
		threshold: policy.Threshold(rec.Range),
		restart:   restart,
	}
}

func (s *ResultScreen) Init() tea.Cmd {
	return nil
}

func (s *ResultScreen) Title() string {
	return "Recommendation"
}

func (s *ResultScreen) Status() string {
	return fmt.Sprintf("fan %.1f%%", s.rec.Speed)
}

func (s *ResultScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "r", Description: "Restart"},
		{Key: "Esc", Description: "Back"},
		{Key: "q", Description: "Quit"},
	}
}

func (s *ResultScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "r":
			if s.restart == nil {
				return s, nil
			}
			next := s.restart()
			return s, func() tea.Msg { return router.ResetScreenMsg{Screen: next} }
		case "q":
			return s, tea.Quit
		}
	}
	return s, nil
}

// TermStrengths returns, per fan speed term, the strongest firing strength
// among the rules concluding it.
func TermStrengths(rec ventilation.Recommendation) map[string]float64 {
	out := make(map[string]float64, len(ventilation.TermNames))
	for _, name := range ventilation.TermNames {
		out[name] = 0
	}
	for _, a := range rec.Inference.Activations {
		out[a.Rule.Output] = max(out[a.Rule.Output], a.Alpha)
	}
	return out
}

func (s *ResultScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	rec := s.rec

	var b strings.Builder

	b.WriteString(theme.Subtitle.Render(fmt.Sprintf(
		"temperature %g   humidity %g%%   range %s",
		rec.Temperature, rec.Humidity, rec.Range)))
	b.WriteString("\n\n")

	b.WriteString(theme.Speed.Render("Fan speed"))
	b.WriteString("\n")
	b.WriteString(components.SpeedBar(rec.Speed, cw).View())
	b.WriteString("\n")

	switch {
	case rec.Overridden:
		b.WriteString(theme.Override.Render(fmt.Sprintf(
			"Override: temperature at or above %g, rules gave %.1f%%",
			s.threshold, rec.Raw)))
		b.WriteString("\n")
	case !rec.Fired:
		b.WriteString(theme.Hint.Render("No rule covers this reading."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Render("Rule strength per fan term"))
	b.WriteString("\n")

	strengths := TermStrengths(rec)
	labelWidth := 0
	for _, name := range ventilation.TermNames {
		labelWidth = max(labelWidth, lipgloss.Width(name))
	}
	for _, name := range ventilation.TermNames {
		alpha := strengths[name]
		bar := components.NewBar(fmt.Sprintf("%-*s", labelWidth, name), alpha, fmt.Sprintf("%.2f", alpha), cw)
		if alpha > 0 {
			bar.Fill = theme.Primary
		}
		b.WriteString(bar.View())
		b.WriteString("\n")
	}

	if dom, ok := rec.Inference.Dominant(); ok {
		b.WriteString("\n")
		b.WriteString(theme.TermActive.Render(dom.Rule.String()))
		b.WriteString(theme.TermIdle.Render(fmt.Sprintf("  α=%.2f", dom.Alpha)))
	}

	panel := components.Panel("Recommendation", b.String(), cw)
	return components.Center(panel, width, height)
}
