package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/tax-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per calculation).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(report *domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"ScenarioID", "Scenario", "TaxYear", "MaritalStatus", "HasChildren", "AnnualIncome", "StandardRateBand", "IncomeTax", "USC", "PRSI", "GrossTax", "TaxCredits", "NetTax", "NetIncome", "EffectiveTaxRate", "MarginalTaxRate"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range reportRows(report) {
		b := sc.Calculation
		row := []string{
			intToString(sc.ScenarioID),
			sc.Label,
			intToString(b.TaxYear),
			b.MaritalStatus.String(),
			boolToString(b.HasChildren),
			b.AnnualIncome.StringFixed(2),
			b.StandardRateBand.StringFixed(2),
			b.IncomeTax.StringFixed(2),
			b.USC.StringFixed(2),
			b.PRSI.StringFixed(2),
			b.GrossTax.StringFixed(2),
			b.TaxCredits.StringFixed(2),
			b.NetTax.StringFixed(2),
			b.NetIncome.StringFixed(2),
			b.EffectiveTaxRatePct.StringFixed(2),
			b.MarginalTaxRatePct.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// reportRows lists every breakdown in a report: the single calculation first, then
// the compared scenarios in input order.
func reportRows(report *domain.TaxReport) []domain.ScenarioResult {
	var rows []domain.ScenarioResult
	if report.Calculation != nil {
		rows = append(rows, domain.ScenarioResult{Label: "Calculation", Calculation: report.Calculation.Annual})
	}
	if report.Comparison != nil {
		rows = append(rows, report.Comparison.Scenarios...)
	}
	return rows
}
