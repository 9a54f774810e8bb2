package cmd

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/abhisek/ventctl/internal/plot"
	"github.com/abhisek/ventctl/internal/ventilation"
)

func newPlotCmd() *cobra.Command {
	plotCmd := &cobra.Command{
		Use:   "plot",
		Short: "Draw the membership functions to an image",
		Long: "Draw temperature, humidity and fan speed membership functions as stacked panels. " +
			"With --temp and --hum the reading and the recommended speed are marked. " +
			"The image format follows the file extension (png, svg, pdf, ...).",
		Example: "  ventctl plot --out curves.png\n" +
			"  ventctl plot --out reading.svg --temp 35 --hum 70",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, _ := cmd.Flags().GetString("out")
			if _, err := plot.FormatOf(out); err != nil {
				return err
			}

			sys, log, err := newSystem(cmd)
			if err != nil {
				return err
			}

			var markers []plot.Marker
			tempSet := cmd.Flags().Changed("temp")
			humSet := cmd.Flags().Changed("hum")
			switch {
			case tempSet && humSet:
				temp, _ := cmd.Flags().GetFloat64("temp")
				hum, _ := cmd.Flags().GetFloat64("hum")
				rec := sys.Recommend(temp, hum)
				markers = []plot.Marker{
					{Variable: ventilation.TemperatureVar, X: temp, Label: fmt.Sprintf("reading %g", temp)},
					{Variable: ventilation.HumidityVar, X: hum, Label: fmt.Sprintf("reading %g", hum)},
					{Variable: ventilation.FanSpeedVar, X: rec.Speed, Label: fmt.Sprintf("speed %.1f", rec.Speed)},
				}
			case tempSet || humSet:
				return fmt.Errorf("--temp and --hum must be given together")
			}

			plots, err := plot.Build(sys.Curves(), markers...)
			if err != nil {
				return err
			}
			if err := plot.Save(out, plots); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			log.Info("plot written", slog.String("path", out))
			return nil
		},
	}

	plotCmd.Flags().StringP("out", "o", "", "Output image path")
	plotCmd.Flags().Float64("temp", 0, "Temperature reading to mark")
	plotCmd.Flags().Float64("hum", 0, "Humidity reading to mark")
	plotCmd.Flags().Bool("no-override", false, "Do not force full speed near the top of the range")
	addRangeFlags(plotCmd)
	_ = plotCmd.MarkFlagRequired("out")

	return plotCmd
}
