package cmd

import (
	"encoding/json"
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/ventctl/internal/fuzzy"
	"github.com/abhisek/ventctl/internal/ui/theme"
)

func newCurvesCmd() *cobra.Command {
	curvesCmd := &cobra.Command{
		Use:   "curves",
		Short: "Print the membership functions of every variable",
		Long: "Print the membership functions of temperature, humidity and fan speed. " +
			"The table format lists trapezoid parameters; json also includes the sampled curves.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, _, err := newSystem(cmd)
			if err != nil {
				return err
			}
			curves := sys.Curves()

			format, _ := cmd.Flags().GetString("format")
			switch format {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(curves)
			case "table":
				lipgloss.Fprintln(cmd.OutOrStdout(), curveTable(curves))
				return nil
			default:
				return fmt.Errorf("unknown format %q (want table or json)", format)
			}
		},
	}

	curvesCmd.Flags().String("format", "table", "Output format: table or json")
	addRangeFlags(curvesCmd)

	return curvesCmd
}

func curveTable(curves []fuzzy.Curve) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
		Headers("variable", "term", "a", "b", "c", "d").
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return theme.TermActive.Padding(0, 1)
			}
			return theme.Body.Padding(0, 1)
		})
	for _, c := range curves {
		p := c.Membership.Params()
		t.Row(c.Variable, c.Term,
			fmt.Sprintf("%g", p[0]), fmt.Sprintf("%g", p[1]),
			fmt.Sprintf("%g", p[2]), fmt.Sprintf("%g", p[3]))
	}
	return t.Render()
}
