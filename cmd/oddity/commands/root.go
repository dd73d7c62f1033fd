// Package commands implements the oddity command tree.
package commands

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/cwbudde/algo-oddity/internal/config"
	"github.com/cwbudde/algo-oddity/internal/logging"
	"github.com/cwbudde/algo-oddity/series"
)

const (
	flagConfig    = "config"
	flagLogLevel  = "log-level"
	flagLogFormat = "log-format"
	flagInput     = "input"
	flagColumn    = "column"
	flagNoColor   = "no-color"
	stdinName     = "-"
)

// app carries global flag values and the state built from them before a
// subcommand runs.
type app struct {
	configPath string
	logLevel   string
	logFormat  string
	input      string
	column     string
	noColor    bool

	cfg    *config.Config
	logger *slog.Logger
}

// NewRootCommand creates the oddity command with every subcommand attached.
func NewRootCommand() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "oddity",
		Short: "Time-series decomposition, GP regression and anomaly detection",
		Long: `oddity analyses a univariate time series read from a CSV file.

Commands:
  describe   Summary statistics
  decompose  Moving-average trend removal and seasonal extraction
  outliers   3-sigma outlier report
  gpr        Gaussian Process regression smoothing
  detect     Two-stage GP anomaly detection
  spectrum   FFT magnitude spectrum
  config     Print the effective configuration`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, flagConfig, "", "config file (default: ./oddity.yaml or $HOME/.config/oddity/oddity.yaml)")
	flags.StringVar(&a.logLevel, flagLogLevel, "", "log level: debug, info, warn, error")
	flags.StringVar(&a.logFormat, flagLogFormat, "", "log format: text or json")
	flags.StringVarP(&a.input, flagInput, "i", stdinName, "CSV input file, - for stdin")
	flags.StringVar(&a.column, flagColumn, "", "CSV value column (default from config: y)")
	flags.BoolVar(&a.noColor, flagNoColor, false, "disable colored output")

	rootCmd.AddCommand(
		newDescribeCommand(a),
		newDecomposeCommand(a),
		newOutliersCommand(a),
		newGPRCommand(a),
		newDetectCommand(a),
		newSpectrumCommand(a),
		newConfigCommand(a),
		newVersionCommand(),
	)

	return rootCmd
}

func (a *app) setup(cmd *cobra.Command) error {
	if a.noColor {
		color.NoColor = true //nolint:reassign // library global
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed(flagLogLevel) {
		cfg.Logging.Level = a.logLevel
	}
	if flags.Changed(flagLogFormat) {
		cfg.Logging.Format = a.logFormat
	}
	if flags.Changed(flagColumn) {
		cfg.Input.Column = a.column
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = logger
	return nil
}

// loadSeries reads the value column of the configured input.
func (a *app) loadSeries(cmd *cobra.Command) (*series.Series, error) {
	opts := a.cfg.Input.CSVOptions()

	var (
		s   *series.Series
		err error
	)
	if a.input == "" || a.input == stdinName {
		s, err = series.LoadCSVFromReader(cmd.InOrStdin(), opts)
	} else {
		s, err = series.LoadCSV(a.input, opts)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", a.inputName(), err)
	}

	a.logger.Debug("series loaded", "input", a.inputName(), "column", opts.ValueColumn, "points", s.Len())
	return s, nil
}

func (a *app) inputName() string {
	if a.input == "" || a.input == stdinName {
		return "stdin"
	}
	return a.input
}
