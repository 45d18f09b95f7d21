package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Korupama/euit-datatools/pkg/config"
	"github.com/Korupama/euit-datatools/pkg/logging"
)

// app carries the state shared by the subcommands of one invocation
type app struct {
	envFile   string
	logLevel  string
	logFormat string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "datatools",
		Short: "eUIT data and ops tooling",
		Long: `datatools bundles the batch utilities used to prepare eUIT data:

  expand-scores    synthesize study results for additional students
  regulations-sql  generate van_ban upserts from the regulation PDFs

Settings come from the environment (and an optional .env file); flags
override them.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", ".env", "env file to load before reading the environment")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.logFormat, "log-format", "", "log format (json, console)")

	rootCmd.AddCommand(newExpandCmd(a))
	rootCmd.AddCommand(newRegulationsCmd(a))

	return rootCmd
}

// init loads configuration and builds the logger
func (a *app) init(cmd *cobra.Command) error {
	flags := cmd.Flags()
	cfg, err := config.LoadConfig(a.envFile, flags.Changed("env-file"))
	if err != nil {
		return err
	}

	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("log-format") {
		cfg.LogFormat = a.logFormat
	}

	logger, err := logging.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// sync flushes buffered log entries
func (a *app) sync() {
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func requireNonEmpty(name, value string) error {
	if value == "" {
		return fmt.Errorf("--%s cannot be empty", name)
	}
	return nil
}
