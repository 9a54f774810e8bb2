package app

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ventctl/internal/screens/prompt"
	"github.com/abhisek/ventctl/internal/screens/result"
	"github.com/abhisek/ventctl/internal/ui/components"
	"github.com/abhisek/ventctl/internal/ventilation"
)

func newTestApp(t *testing.T) (AppModel, *ventilation.System) {
	t.Helper()
	sys, err := ventilation.New(ventilation.DefaultConfig(), nil)
	if err != nil {
		t.Fatalf("ventilation.New: %v", err)
	}
	return NewAppModel(sys), sys
}

// send delivers msg and then the navigation and quit messages its commands
// produce, the way the Bubble Tea runtime would.
func send(m AppModel, msg tea.Msg) (AppModel, bool) {
	for msg != nil {
		if _, ok := msg.(tea.QuitMsg); ok {
			return m, true
		}
		model, cmd := m.Update(msg)
		m = model.(AppModel)
		if cmd == nil || !runs(msg) {
			return m, false
		}
		msg = cmd()
	}
	return m, false
}

// runs reports whether the command returned for msg leads somewhere.
// Typed characters and screen Init only start the cursor blink timer.
func runs(msg tea.Msg) bool {
	k, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return false
	}
	return k.Text == "" || !components.IntegerPair([]rune(k.Text)[0])
}

func enter(m AppModel, text string) AppModel {
	for _, r := range text {
		m, _ = send(m, tea.KeyPressMsg{Code: r, Text: string(r)})
	}
	m, _ = send(m, tea.KeyPressMsg{Code: tea.KeyEnter})
	return m
}

func promptErr(t *testing.T, m AppModel) error {
	t.Helper()
	p, ok := m.Active().(*prompt.PromptScreen)
	if !ok {
		t.Fatalf("expected a prompt, got %T", m.Active())
	}
	return p.Err()
}

func TestFlow_FullRun(t *testing.T) {
	m, sys := newTestApp(t)

	if m.Active().Title() != "Temperature range" {
		t.Fatalf("expected range step first, got %q", m.Active().Title())
	}

	m = enter(m, "0 100")
	if m.Active().Title() != "Temperature" {
		t.Fatalf("expected temperature step, got %q", m.Active().Title())
	}
	if !sys.Configured() {
		t.Error("expected the range step to configure the system")
	}

	m = enter(m, "50")
	if m.Active().Title() != "Humidity" {
		t.Fatalf("expected humidity step, got %q", m.Active().Title())
	}

	m = enter(m, "50")
	res, ok := m.Active().(*result.ResultScreen)
	if !ok {
		t.Fatalf("expected result screen, got %T", m.Active())
	}
	if m.Depth() != 4 {
		t.Errorf("expected depth 4, got %d", m.Depth())
	}
	if !strings.Contains(res.View(100, 40), "48.1%") {
		t.Error("expected the (50, 50) recommendation in the result")
	}
}

func TestFlow_InvalidInputRePrompts(t *testing.T) {
	m, sys := newTestApp(t)

	m = enter(m, "40 10")
	if m.Active().Title() != "Temperature range" {
		t.Fatalf("expected to stay on the range step, got %q", m.Active().Title())
	}
	if promptErr(t, m) == nil {
		t.Error("expected an inverted range to be rejected")
	}
	if sys.Configured() {
		t.Error("expected the system to stay unconfigured")
	}

	m = enter(m, "10")
	if promptErr(t, m) == nil {
		t.Error("expected a single bound to be rejected")
	}

	m = enter(m, "-30 30")
	m = enter(m, "45")
	if m.Active().Title() != "Temperature" {
		t.Fatalf("expected to stay on the temperature step, got %q", m.Active().Title())
	}
	if promptErr(t, m) == nil {
		t.Error("expected 45 outside [-30, 30] to be rejected")
	}

	m = enter(m, "-5")
	m = enter(m, "101")
	if m.Active().Title() != "Humidity" {
		t.Fatalf("expected to stay on the humidity step, got %q", m.Active().Title())
	}
	if promptErr(t, m) == nil {
		t.Error("expected humidity 101 to be rejected")
	}

	m = enter(m, "100")
	if _, ok := m.Active().(*result.ResultScreen); !ok {
		t.Fatalf("expected result screen, got %T", m.Active())
	}
}

func TestFlow_Restart(t *testing.T) {
	m, _ := newTestApp(t)
	m = enter(m, "0 100")
	m = enter(m, "20")
	m = enter(m, "30")

	m, quit := send(m, tea.KeyPressMsg{Code: 'r', Text: "r"})

	if quit {
		t.Fatal("restart should not quit")
	}
	if m.Depth() != 1 {
		t.Errorf("expected depth 1 after restart, got %d", m.Depth())
	}
	if m.Active().Title() != "Temperature range" {
		t.Errorf("expected range step after restart, got %q", m.Active().Title())
	}
}

func TestFlow_Quit(t *testing.T) {
	m, _ := newTestApp(t)
	m = enter(m, "0 100")
	m = enter(m, "20")
	m = enter(m, "30")

	_, quit := send(m, tea.KeyPressMsg{Code: 'q', Text: "q"})
	if !quit {
		t.Error("expected q to quit from the result screen")
	}

	m, _ = newTestApp(t)
	_, quit = send(m, tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl})
	if !quit {
		t.Error("expected ctrl+c to quit from any step")
	}
}

func TestFlow_EscGoesBack(t *testing.T) {
	m, _ := newTestApp(t)
	m = enter(m, "0 100")

	m, _ = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Active().Title() != "Temperature range" {
		t.Errorf("expected esc to return to the range step, got %q", m.Active().Title())
	}

	m, _ = send(m, tea.KeyPressMsg{Code: tea.KeyEscape})
	if m.Depth() != 1 {
		t.Errorf("expected esc at the first step to stay put, got depth %d", m.Depth())
	}
}

func TestView(t *testing.T) {
	m, _ := newTestApp(t)

	if m.render() != "" {
		t.Error("expected empty view before the first window size")
	}

	m, _ = send(m, tea.WindowSizeMsg{Width: 30, Height: 10})
	if !strings.Contains(m.render(), "Terminal too small") {
		t.Error("expected the minimum size message")
	}

	m, _ = send(m, tea.WindowSizeMsg{Width: 100, Height: 40})
	view := m.render()
	for _, want := range []string{"ventctl", "Temperature range", "range not set"} {
		if !strings.Contains(view, want) {
			t.Errorf("expected view to contain %q", want)
		}
	}

	m = enter(m, "-10 40")
	if !strings.Contains(m.render(), "range [-10, 40]") {
		t.Error("expected the configured range in the header")
	}
}
