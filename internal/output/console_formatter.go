package output

import (
	"bytes"
	"fmt"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "IRISH TAX SUMMARY %d\n", report.TaxYear)
	fmt.Fprintln(&buf, "================================")

	if calc := report.Calculation; calc != nil {
		a := calc.Annual
		fmt.Fprintf(&buf, "Gross Income: %s (%s)\n", FormatCurrency(a.AnnualIncome), describeScenario(a))
		fmt.Fprintf(&buf, "  NetTax=%s NetIncome=%s MonthlyNet=%s\n",
			FormatCurrency(a.NetTax), FormatCurrency(a.NetIncome), FormatCurrency(calc.Monthly.MonthlyNetIncome))
		fmt.Fprintf(&buf, "  Effective=%s Marginal=%s\n", FormatPercentage(a.EffectiveTaxRatePct), FormatPercentage(a.MarginalTaxRatePct))
	}

	if m := report.Marginal; m != nil {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Next %s at %s: Tax=%s Keep=%s EffectiveMarginal=%s\n",
			FormatCurrency(calculation.MarginalStep),
			FormatCurrency(m.AnnualIncome),
			FormatCurrency(m.TaxOnNext1000),
			FormatCurrency(m.NetFromNext1000),
			FormatPercentage(m.EffectiveMarginalRatePct),
		)
	}

	if cmp := report.Comparison; cmp != nil {
		fmt.Fprintln(&buf)
		for _, sc := range cmp.Scenarios {
			fmt.Fprintf(&buf, "%s: Income=%s NetIncome=%s Effective=%s\n",
				sc.Label,
				FormatCurrency(sc.Calculation.AnnualIncome),
				FormatCurrency(sc.Calculation.NetIncome),
				FormatPercentage(sc.Calculation.EffectiveTaxRatePct),
			)
		}
		rec := AnalyzeScenarios(cmp)
		if rec.ScenarioName != "" {
			fmt.Fprintln(&buf)
			fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.NetIncomeChange), FormatPercentage(rec.PercentageChange))
		}
	}
	return buf.Bytes(), nil
}
