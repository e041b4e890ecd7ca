package output

import (
	"bytes"
	"encoding/csv"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/domain"
)

// CSVDetailedExporter provides one row per tax component with annual and monthly amounts.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(report *domain.TaxReport) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "Component", "Annual", "Monthly"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, sc := range reportRows(report) {
		result := &domain.CalculationResult{Annual: sc.Calculation, Monthly: calculation.ProjectMonthly(sc.Calculation)}
		for _, li := range breakdownLines(result) {
			row := []string{sc.Label, li.Label, li.Annual.StringFixed(2), li.Monthly.StringFixed(2)}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
