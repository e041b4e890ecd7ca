package commands

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/rpgo/tax-calculator/internal/output"
)

// scenarioFlags are the flags shared by the single-scenario commands.
type scenarioFlags struct {
	income       string
	status       string
	children     bool
	spouseIncome string
	format       string
	save         bool
}

func (f *scenarioFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.income, "income", "", "gross annual income in euro")
	cmd.Flags().StringVar(&f.status, "status", "single", "marital status: single, married or single_parent")
	cmd.Flags().BoolVar(&f.children, "children", false, "taxpayer has dependent children")
	cmd.Flags().StringVar(&f.spouseIncome, "spouse-income", "", "spouse's gross annual income (married only)")
	cmd.Flags().StringVar(&f.format, "format", "console", "output format: "+formatHelp())
	cmd.Flags().BoolVar(&f.save, "save", false, "also write the report to a timestamped file")
	_ = cmd.MarkFlagRequired("income")
}

// input converts the flags into the same request shape the HTTP API accepts, so both
// surfaces share one set of validation rules.
func (f *scenarioFlags) input(cmd *cobra.Command) (domain.ScenarioInput, error) {
	income, err := decimal.NewFromString(f.income)
	if err != nil {
		return domain.ScenarioInput{}, fmt.Errorf("invalid --income %q: %w", f.income, err)
	}

	in := domain.ScenarioInput{
		AnnualIncome:  &income,
		MaritalStatus: f.status,
		HasChildren:   f.children,
	}
	if cmd.Flags().Changed("spouse-income") {
		spouse, err := decimal.NewFromString(f.spouseIncome)
		if err != nil {
			return domain.ScenarioInput{}, fmt.Errorf("invalid --spouse-income %q: %w", f.spouseIncome, err)
		}
		in.SpouseIncome = &spouse
	}
	return in, nil
}

func formatHelp() string {
	return "console, console-verbose, csv, detailed-csv, html, json"
}

// emit writes the report to stdout and, when requested, to a file as well.
func (a *app) emit(cmd *cobra.Command, report *domain.TaxReport, format string, save bool) error {
	if err := output.GenerateReport(report, format, cmd.OutOrStdout()); err != nil {
		return err
	}
	if !save {
		return nil
	}
	name, err := output.SaveReport(report, format)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.ErrOrStderr(), "Report saved to %s\n", name)
	return nil
}

func (a *app) newReport() *domain.TaxReport {
	return output.NewTaxReport(a.engine.Rates(), time.Now())
}
