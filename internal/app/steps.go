package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/ventctl/internal/router"
	"github.com/abhisek/ventctl/internal/screen"
	"github.com/abhisek/ventctl/internal/screens/prompt"
	"github.com/abhisek/ventctl/internal/screens/result"
	"github.com/abhisek/ventctl/internal/ui/components"
	"github.com/abhisek/ventctl/internal/ventilation"
)

// flow builds the screens of one interactive run: range, temperature,
// humidity, then the recommendation.
type flow struct {
	sys *ventilation.System
}

func push(s screen.Screen) tea.Cmd {
	return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
}

func (f flow) rangeStep() screen.Screen {
	current := f.sys.TemperatureRange()
	return prompt.New(prompt.Options{
		Title:       "Temperature range",
		Label:       "Enter the minimum and maximum temperature, separated by a space.",
		Placeholder: fmt.Sprintf("%d %d", current.Min, current.Max),
		Help:        "Both bounds are whole degrees and the minimum must not exceed the maximum.",
		Accept:      components.IntegerPair,
		CharLimit:   24,
		Submit: func(v string) (tea.Cmd, error) {
			r, err := ventilation.ParseRange(v)
			if err != nil {
				return nil, err
			}
			if err := f.sys.SetTemperatureRange(r.Min, r.Max); err != nil {
				return nil, err
			}
			return push(f.temperatureStep()), nil
		},
	})
}

func (f flow) temperatureStep() screen.Screen {
	r := f.sys.TemperatureRange()
	return prompt.New(prompt.Options{
		Title:       "Temperature",
		Label:       fmt.Sprintf("Enter the current temperature %s.", r),
		Placeholder: fmt.Sprintf("%d", (r.Min+r.Max)/2),
		Accept:      components.Integer,
		CharLimit:   12,
		Submit: func(v string) (tea.Cmd, error) {
			t, err := ventilation.ParseReading(v)
			if err != nil {
				return nil, err
			}
			if err := ventilation.ValidateTemperature(r, float64(t)); err != nil {
				return nil, err
			}
			return push(f.humidityStep(float64(t))), nil
		},
	})
}

func (f flow) humidityStep(temp float64) screen.Screen {
	return prompt.New(prompt.Options{
		Title:       "Humidity",
		Label:       fmt.Sprintf("Enter the relative humidity %s.", ventilation.HumidityRange),
		Placeholder: "50",
		Accept:      components.Integer,
		CharLimit:   4,
		Submit: func(v string) (tea.Cmd, error) {
			h, err := ventilation.ParseReading(v)
			if err != nil {
				return nil, err
			}
			if err := ventilation.ValidateHumidity(float64(h)); err != nil {
				return nil, err
			}
			rec := f.sys.Recommend(temp, float64(h))
			return push(result.New(rec, f.sys.Override(), f.rangeStep)), nil
		},
	})
}
