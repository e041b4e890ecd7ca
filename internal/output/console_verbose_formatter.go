package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the full annual and monthly breakdown via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console-verbose" }

func (c ConsoleVerboseFormatter) Format(report *domain.TaxReport) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintf(&buf, "DETAILED IRISH PAYE TAX ANALYSIS (%d)\n", report.TaxYear)
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	assumptions := report.Assumptions
	if len(assumptions) == 0 {
		assumptions = DefaultAssumptions
	}
	for _, a := range assumptions {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	if report.Calculation != nil {
		fmt.Fprintln(&buf, "TAX BREAKDOWN")
		fmt.Fprintln(&buf, "=============")
		writeCalculation(&buf, report.Calculation)
	}

	if m := report.Marginal; m != nil {
		fmt.Fprintln(&buf, "MARGINAL RATE ANALYSIS")
		fmt.Fprintln(&buf, "======================")
		fmt.Fprintf(&buf, "  Annual Income:            %s\n", FormatCurrency(m.AnnualIncome))
		fmt.Fprintf(&buf, "  Marginal Tax Rate:        %s\n", FormatPercentage(m.MarginalTaxRatePct))
		fmt.Fprintf(&buf, "  Effective Marginal Rate:  %s\n", FormatPercentage(m.EffectiveMarginalRatePct))
		fmt.Fprintf(&buf, "  Tax on next %s:    %s\n", FormatCurrency(calculation.MarginalStep), FormatCurrency(m.TaxOnNext1000))
		fmt.Fprintf(&buf, "  Net from next %s:  %s\n", FormatCurrency(calculation.MarginalStep), FormatCurrency(m.NetFromNext1000))
		if m.EffectiveMarginalRatePct.GreaterThan(m.MarginalTaxRatePct) {
			fmt.Fprintln(&buf, "  Note: the next increase crosses into a higher band or bracket")
		}
		fmt.Fprintln(&buf)
	}

	if cmp := report.Comparison; cmp != nil {
		writeDetailedComparison(&buf, cmp)
	}

	return buf.Bytes(), nil
}

func writeCalculation(buf *bytes.Buffer, c *domain.CalculationResult) {
	a := c.Annual
	fmt.Fprintf(buf, "Household: %s\n", describeScenario(a))
	fmt.Fprintf(buf, "Standard Rate Band: %s\n", FormatCurrency(a.StandardRateBand))
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  %-16s %16s %16s\n", "", "ANNUAL", "MONTHLY")
	fmt.Fprintf(buf, "  %s\n", strings.Repeat("-", 50))
	for _, li := range breakdownLines(c) {
		fmt.Fprintf(buf, "  %-16s %16s %16s\n", li.Label, FormatCurrency(li.Annual), FormatCurrency(li.Monthly))
	}
	fmt.Fprintln(buf)
	fmt.Fprintf(buf, "  Effective Tax Rate:  %s\n", FormatPercentage(a.EffectiveTaxRatePct))
	fmt.Fprintf(buf, "  Marginal Tax Rate:   %s\n", FormatPercentage(a.MarginalTaxRatePct))
	fmt.Fprintln(buf)
}

func writeDetailedComparison(buf *bytes.Buffer, cmp *domain.ComparisonResult) {
	fmt.Fprintln(buf, "SCENARIO COMPARISON")
	fmt.Fprintln(buf, "===================")
	fmt.Fprintf(buf, "%-4s %-24s %16s %16s %16s %10s\n", "#", "Scenario", "Gross Income", "Net Tax", "Net Income", "Effective")
	for _, sc := range cmp.Scenarios {
		b := sc.Calculation
		fmt.Fprintf(buf, "%-4d %-24s %16s %16s %16s %10s\n",
			sc.ScenarioID, sc.Label,
			FormatCurrency(b.AnnualIncome), FormatCurrency(b.NetTax), FormatCurrency(b.NetIncome),
			FormatPercentage(b.EffectiveTaxRatePct))
	}
	fmt.Fprintln(buf)

	if s := cmp.Summary; s != nil {
		fmt.Fprintln(buf, "SUMMARY:")
		fmt.Fprintf(buf, "  Highest Income:          %s (%s)\n", s.HighestIncome.Label, FormatCurrency(s.HighestIncome.Value))
		fmt.Fprintf(buf, "  Highest Net Income:      %s (%s)\n", s.HighestNetIncome.Label, FormatCurrency(s.HighestNetIncome.Value))
		fmt.Fprintf(buf, "  Lowest Effective Rate:   %s (%s)\n", s.LowestEffectiveRate.Label, FormatPercentage(s.LowestEffectiveRate.Value))
		fmt.Fprintf(buf, "  Highest Effective Rate:  %s (%s)\n", s.HighestEffectiveRate.Label, FormatPercentage(s.HighestEffectiveRate.Value))
		fmt.Fprintln(buf)
	}

	for _, sc := range cmp.Scenarios {
		fmt.Fprintf(buf, "SCENARIO %d: %s\n", sc.ScenarioID, sc.Label)
		fmt.Fprintln(buf, strings.Repeat("=", 50))
		writeCalculation(buf, &domain.CalculationResult{
			Annual:  sc.Calculation,
			Monthly: calculation.ProjectMonthly(sc.Calculation),
		})
	}

	rec := AnalyzeScenarios(cmp)
	if rec.ScenarioName == "" {
		return
	}
	fmt.Fprintln(buf, "RECOMMENDATION:")
	fmt.Fprintf(buf, "  %s keeps the most income: %s\n", rec.ScenarioName, FormatCurrency(rec.NetIncome))
	if rec.NetIncomeChange.IsPositive() {
		fmt.Fprintf(buf, "  CHANGE vs %s: +%s (+%s)\n", cmp.Scenarios[0].Label, FormatCurrency(rec.NetIncomeChange), FormatPercentage(rec.PercentageChange))
	} else {
		fmt.Fprintf(buf, "  CHANGE vs %s: %s (%s)\n", cmp.Scenarios[0].Label, FormatCurrency(rec.NetIncomeChange), FormatPercentage(rec.PercentageChange))
	}
}
