package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func compareCmd(a *app) *cobra.Command {
	var (
		file    string
		format  string
		save    bool
		example bool
	)

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Compare up to five scenarios side by side",
		Example: `  taxcalc compare --file scenarios.yaml
  taxcalc compare --example > scenarios.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if example {
				data, err := yaml.Marshal(a.parser.CreateExampleScenarios())
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if file == "" {
				return fmt.Errorf("--file is required")
			}

			scenarioFile, err := a.parser.LoadScenarios(file)
			if err != nil {
				return err
			}
			scenarios, err := a.parser.ToLabeledScenarios(scenarioFile.Scenarios)
			if err != nil {
				return err
			}

			comparison, err := a.engine.CompareScenarios(scenarios)
			if err != nil {
				return err
			}

			report := a.newReport()
			report.Comparison = &comparison
			return a.emit(cmd, report, format, save)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML file with a scenarios list")
	cmd.Flags().StringVar(&format, "format", "console", "output format: "+formatHelp())
	cmd.Flags().BoolVar(&save, "save", false, "also write the report to a timestamped file")
	cmd.Flags().BoolVar(&example, "example", false, "print an example scenario file and exit")
	return cmd
}
