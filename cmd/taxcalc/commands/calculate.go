package commands

import (
	"github.com/spf13/cobra"

	"github.com/rpgo/tax-calculator/internal/calculation"
)

func calculateCmd(a *app) *cobra.Command {
	var flags scenarioFlags

	cmd := &cobra.Command{
		Use:   "calculate",
		Short: "Calculate annual and monthly tax for one scenario",
		Example: `  taxcalc calculate --income 50000
  taxcalc calculate --income 60000 --status married --spouse-income 25000 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input(cmd)
			if err != nil {
				return err
			}
			scenario, err := a.parser.ToScenario(in)
			if err != nil {
				return err
			}

			result, err := calculation.Calculate(a.engine, scenario)
			if err != nil {
				return err
			}

			report := a.newReport()
			report.Calculation = result
			return a.emit(cmd, report, flags.format, flags.save)
		},
	}

	flags.register(cmd)
	return cmd
}
