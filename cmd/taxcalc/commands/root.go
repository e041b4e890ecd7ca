package commands

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/config"
	"github.com/rpgo/tax-calculator/pkg/dateutil"
)

// app carries what the root command prepares for its subcommands.
type app struct {
	ratesFile string
	debug     bool

	parser *config.InputParser
	engine *calculation.Engine
	logger *zap.Logger
}

// Execute runs the taxcalc command line.
func Execute() error {
	return NewRootCmd().Execute()
}

// NewRootCmd builds the command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	a := &app{parser: config.NewInputParser()}

	root := &cobra.Command{
		Use:          "taxcalc",
		Short:        "Irish PAYE income tax, USC and PRSI calculator",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.ratesFile, "rates", "", "YAML rate table to use instead of the built-in 2025 rates")
	root.PersistentFlags().BoolVar(&a.debug, "debug", false, "enable debug logging")

	root.AddCommand(
		calculateCmd(a),
		marginalCmd(a),
		compareCmd(a),
		ratesCmd(a),
		serveCmd(a),
	)
	return root
}

func (a *app) setup() error {
	logger, err := newLogger(a.debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	a.logger = logger

	opts := []calculation.Option{calculation.WithLogger(logger.Sugar().Named("engine"))}
	if a.ratesFile == "" {
		a.engine = calculation.NewEngine2025(opts...)
		a.checkYear()
		return nil
	}

	rates, err := a.parser.LoadRateTable(a.ratesFile)
	if err != nil {
		return err
	}
	engine, err := calculation.NewEngine(*rates, opts...)
	if err != nil {
		return err
	}
	logger.Debug("using rate table", zap.String("file", a.ratesFile), zap.Int("year", rates.Year))
	a.engine = engine
	a.checkYear()
	return nil
}

// checkYear notes when the rate table does not cover the current tax year.
func (a *app) checkYear() {
	year := a.engine.TaxYear()
	if current := dateutil.TaxYearOf(time.Now()); current != year {
		a.logger.Info("rate table is not for the current tax year",
			zap.Int("table_year", year), zap.Int("current_year", current))
	}
}

func newLogger(debug bool) (*zap.Logger, error) {
	if debug {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return cfg.Build()
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
