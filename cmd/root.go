package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/ventctl/internal/app"
	"github.com/abhisek/ventctl/internal/logging"
	"github.com/abhisek/ventctl/internal/ventilation"
)

// Execute runs the ventctl command tree.
func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ventctl",
		Short: "Fuzzy fan speed controller for ventilation",
		Long: "ventctl recommends a ventilation fan speed from temperature and humidity " +
			"using a Tsukamoto fuzzy rule base.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sys, closeLog, err := newSessionSystem(cmd)
			if err != nil {
				return err
			}
			defer closeLog()
			return app.Run(sys)
		},
	}
	rootCmd.Flags().String("log-file", "", "Write interactive session logs to this file (discarded when unset)")

	rootCmd.PersistentFlags().String("config", "", "Path to a TOML config file (overrides "+ventilation.EnvConfig+" env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log every inference at debug level")

	rootCmd.AddCommand(newEvalCmd())
	rootCmd.AddCommand(newCurvesCmd())
	rootCmd.AddCommand(newPlotCmd())
	rootCmd.AddCommand(newBatchCmd())
	rootCmd.AddCommand(newVersionCmd())
	return rootCmd
}

// newLogger returns the process logger writing to the command's stderr.
func newLogger(cmd *cobra.Command) *slog.Logger {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cmd.ErrOrStderr(), verbose)
}

// resolveConfigPath returns the config path from --config (highest
// priority) or the VENTCTL_CONFIG env var. Empty means no file.
func resolveConfigPath(cmd *cobra.Command) string {
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		return p
	}
	return os.Getenv(ventilation.EnvConfig)
}

// loadConfig layers defaults, env vars, the config file and the command's
// own flags, in increasing priority.
func loadConfig(cmd *cobra.Command, log *slog.Logger) (ventilation.Config, error) {
	cfg, err := ventilation.ConfigFromEnv()
	if err != nil {
		return cfg, err
	}

	if path := resolveConfigPath(cmd); path != "" {
		cfg, err = ventilation.LoadConfig(path, cfg)
		if err != nil {
			return cfg, err
		}
		log.Info("config loaded", slog.String("path", path))
	}

	if f := cmd.Flags().Lookup("min"); f != nil && f.Changed {
		cfg.TemperatureRange.Min, _ = cmd.Flags().GetInt("min")
	}
	if f := cmd.Flags().Lookup("max"); f != nil && f.Changed {
		cfg.TemperatureRange.Max, _ = cmd.Flags().GetInt("max")
	}
	if noOverride, _ := cmd.Flags().GetBool("no-override"); noOverride {
		cfg.Override.Enabled = false
	}

	return cfg, cfg.Validate()
}

// newSessionLogger returns the logger of the interactive session. The
// terminal belongs to the TUI, so records go to --log-file or nowhere.
func newSessionLogger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	path, _ := cmd.Flags().GetString("log-file")
	if path == "" {
		return logging.Discard(), func() error { return nil }, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(f, verbose), f.Close, nil
}

// newSessionSystem builds the system driven by the interactive session.
// The returned func closes the session log.
func newSessionSystem(cmd *cobra.Command) (*ventilation.System, func() error, error) {
	log, closeLog, err := newSessionLogger(cmd)
	if err != nil {
		return nil, nil, err
	}
	sys, err := buildSystem(cmd, log)
	if err != nil {
		closeLog()
		return nil, nil, err
	}
	return sys, closeLog, nil
}

// newSystem builds the ventilation system for cmd, logging to stderr.
func newSystem(cmd *cobra.Command) (*ventilation.System, *slog.Logger, error) {
	log := newLogger(cmd)
	sys, err := buildSystem(cmd, log)
	return sys, log, err
}

// buildSystem layers the configuration for cmd and builds the system. A
// range given on the command line counts as configuring it.
func buildSystem(cmd *cobra.Command, log *slog.Logger) (*ventilation.System, error) {
	cfg, err := loadConfig(cmd, log)
	if err != nil {
		return nil, err
	}
	sys, err := ventilation.New(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("build system: %w", err)
	}
	if rangeChanged(cmd) {
		r := cfg.TemperatureRange
		if err := sys.SetTemperatureRange(r.Min, r.Max); err != nil {
			return nil, err
		}
	}
	return sys, nil
}

func rangeChanged(cmd *cobra.Command) bool {
	for _, name := range []string{"min", "max"} {
		if f := cmd.Flags().Lookup(name); f != nil && f.Changed {
			return true
		}
	}
	return false
}

// addRangeFlags registers --min and --max on cmd.
func addRangeFlags(cmd *cobra.Command) {
	cmd.Flags().Int("min", ventilation.DefaultTemperatureRange.Min, "Lowest temperature of the range")
	cmd.Flags().Int("max", ventilation.DefaultTemperatureRange.Max, "Highest temperature of the range")
}
