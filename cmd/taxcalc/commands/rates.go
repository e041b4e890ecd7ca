package commands

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func ratesCmd(a *app) *cobra.Command {
	var (
		format string
		export string
		file   string
	)

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Print the rate table in use, or export it as a starting point for another year",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rates := a.engine.Rates()
			if file != "" {
				loaded, err := a.parser.LoadRateTable(file)
				if err != nil {
					return err
				}
				rates = *loaded
			}

			if export != "" {
				if err := a.parser.SaveRateTable(&rates, export); err != nil {
					return err
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Rate table for %d written to %s\n", rates.Year, export)
				return nil
			}

			var (
				data []byte
				err  error
			)
			switch format {
			case "yaml", "yml":
				data, err = yaml.Marshal(rates)
			case "json":
				data, err = json.MarshalIndent(rates, "", "  ")
			default:
				return fmt.Errorf("unsupported rates format %q (use yaml or json)", format)
			}
			if err != nil {
				return err
			}
			if format == "json" {
				data = append(data, '\n')
			}
			return writeString(cmd.OutOrStdout(), string(data))
		},
	}

	cmd.Flags().StringVar(&format, "format", "yaml", "output format: yaml or json")
	cmd.Flags().StringVar(&export, "export", "", "write the rate table to this YAML file")
	cmd.Flags().StringVarP(&file, "file", "f", "", "validate and print this YAML rate table instead of the active one")
	return cmd
}
