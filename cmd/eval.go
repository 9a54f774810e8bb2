package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/ventctl/internal/ui/theme"
	"github.com/abhisek/ventctl/internal/ventilation"
)

func newEvalCmd() *cobra.Command {
	evalCmd := &cobra.Command{
		Use:   "eval",
		Short: "Recommend a fan speed for one reading",
		Example: "  ventctl eval --temp 50 --hum 50\n" +
			"  ventctl eval --min -30 --max 30 --temp 24 --hum 80 --explain",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			temp, _ := cmd.Flags().GetFloat64("temp")
			hum, _ := cmd.Flags().GetFloat64("hum")

			sys, _, err := newSystem(cmd)
			if err != nil {
				return err
			}
			if err := ventilation.ValidateTemperature(sys.TemperatureRange(), temp); err != nil {
				return err
			}
			if err := ventilation.ValidateHumidity(hum); err != nil {
				return err
			}

			rec := sys.Recommend(temp, hum)

			if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rec)
			}

			explain, _ := cmd.Flags().GetBool("explain")
			return printRecommendation(cmd.OutOrStdout(), rec, sys.Override(), explain)
		},
	}

	evalCmd.Flags().Float64("temp", 0, "Current temperature")
	evalCmd.Flags().Float64("hum", 0, "Current relative humidity in percent")
	evalCmd.Flags().Bool("no-override", false, "Do not force full speed near the top of the range")
	evalCmd.Flags().Bool("explain", false, "Print the firing strength of every rule")
	evalCmd.Flags().Bool("json", false, "Print the recommendation as JSON")
	addRangeFlags(evalCmd)
	_ = evalCmd.MarkFlagRequired("temp")
	_ = evalCmd.MarkFlagRequired("hum")

	return evalCmd
}

func printRecommendation(w io.Writer, rec ventilation.Recommendation, policy ventilation.OverridePolicy, explain bool) error {
	speed := lipgloss.NewStyle().Foreground(theme.SpeedColor(rec.Speed)).Bold(true)

	lipgloss.Fprintln(w, theme.Title.Render("Fan speed")+"  "+speed.Render(fmt.Sprintf("%.2f%%", rec.Speed)))
	lipgloss.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf(
		"temperature %g, humidity %g%%, range %s", rec.Temperature, rec.Humidity, rec.Range)))

	switch {
	case rec.Overridden:
		lipgloss.Fprintln(w, theme.Override.Render(fmt.Sprintf(
			"override: temperature at or above %g, rules gave %.2f%%",
			policy.Threshold(rec.Range), rec.Raw)))
	case !rec.Fired:
		lipgloss.Fprintln(w, theme.Hint.Render("no rule covers this reading"))
	}

	if !explain {
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("#", "rule", ventilation.TemperatureVar, ventilation.HumidityVar, "alpha", "z").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TermActive.Padding(0, 1)
			}
			if row < len(rec.Inference.Activations) && rec.Inference.Activations[row].Alpha > 0 {
				return theme.Body.Padding(0, 1)
			}
			return theme.TermIdle.Padding(0, 1)
		})
	for i, a := range rec.Inference.Activations {
		t.Row(
			fmt.Sprintf("%d", i+1),
			a.Rule.String(),
			fmt.Sprintf("%.3f", a.FirstDegree),
			fmt.Sprintf("%.3f", a.SecondDegree),
			fmt.Sprintf("%.3f", a.Alpha),
			fmt.Sprintf("%.2f", a.Z),
		)
	}
	lipgloss.Fprintln(w, t.Render())
	lipgloss.Fprintln(w, theme.Subtitle.Render(fmt.Sprintf(
		"sum(alpha*z) = %.4f, sum(alpha) = %.4f", rec.Inference.Numerator, rec.Inference.Denominator)))
	return nil
}
