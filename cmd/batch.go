package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/ventctl/internal/batch"
)

func newBatchCmd() *cobra.Command {
	batchCmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Evaluate a JSON file of readings",
		Long: "Evaluate every reading of a JSON document and print a JSON report. " +
			"Use - to read the document from stdin, or --schema to print the input schema.",
		Args: func(cmd *cobra.Command, args []string) error {
			if schema, _ := cmd.Flags().GetBool("schema"); schema {
				return cobra.NoArgs(cmd, args)
			}
			return cobra.ExactArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if schema, _ := cmd.Flags().GetBool("schema"); schema {
				_, err := cmd.OutOrStdout().Write(batch.Schema())
				return err
			}

			raw, err := readInput(cmd, args[0])
			if err != nil {
				return err
			}
			in, err := batch.Parse(raw)
			if err != nil {
				return err
			}

			sys, log, err := newSystem(cmd)
			if err != nil {
				return err
			}
			rep, err := batch.Run(sys, in, log)
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if out, _ := cmd.Flags().GetString("out"); out != "" {
				f, err := os.Create(out)
				if err != nil {
					return fmt.Errorf("create report: %w", err)
				}
				defer func() {
					if cerr := f.Close(); err == nil {
						err = cerr
					}
				}()
				w = f
			}

			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(rep)
		},
	}

	batchCmd.Flags().StringP("out", "o", "", "Write the report to a file instead of stdout")
	batchCmd.Flags().Bool("schema", false, "Print the JSON schema of the input document and exit")
	batchCmd.Flags().Bool("no-override", false, "Do not force full speed near the top of the range")

	return batchCmd
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read batch input: %w", err)
	}
	return raw, nil
}
