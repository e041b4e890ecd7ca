package commands

import (
	"github.com/spf13/cobra"
)

func marginalCmd(a *app) *cobra.Command {
	var flags scenarioFlags

	cmd := &cobra.Command{
		Use:   "marginal",
		Short: "Show the marginal rate and what the next €1,000 of income keeps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := flags.input(cmd)
			if err != nil {
				return err
			}
			scenario, err := a.parser.ToScenario(in)
			if err != nil {
				return err
			}

			analysis, err := a.engine.AnalyzeMarginalRate(scenario)
			if err != nil {
				return err
			}

			report := a.newReport()
			report.Marginal = &analysis
			return a.emit(cmd, report, flags.format, flags.save)
		},
	}

	flags.register(cmd)
	return cmd
}
