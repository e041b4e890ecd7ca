package output

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rpgo/tax-calculator/internal/domain"
)

// NewTaxReport starts an empty report for the given rate table. Callers fill in the
// sections they computed.
func NewTaxReport(rates domain.RateTable, generatedAt time.Time) *domain.TaxReport {
	return &domain.TaxReport{
		TaxYear:     rates.Year,
		GeneratedAt: generatedAt,
		Assumptions: GenerateAssumptions(rates),
	}
}

// GenerateReport renders report with the named formatter and writes it to w.
func GenerateReport(report *domain.TaxReport, format string, w io.Writer) error {
	f := GetFormatterByName(format)
	if f == nil {
		// enrich error with available formatters and aliases
		return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("%s formatter: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport renders report with the named formatter into a timestamped file and returns its name.
func SaveReport(report *domain.TaxReport, format string) (string, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
	}
	return WriteFormatted(f, report, FileExtension(format))
}
