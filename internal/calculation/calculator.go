package calculation

import "github.com/rpgo/tax-calculator/internal/domain"

//go:generate mockgen -source=calculator.go -destination=mock_calculator.go -package=calculation

// Calculator is the capability set consumed by the request and presentation layers.
// Alternate tax years are supported by building an Engine over a different rate table.
type Calculator interface {
	CalculateTax(scenario domain.TaxScenario) (domain.TaxBreakdown, error)
	CalculateMonthlyBreakdown(annual domain.TaxBreakdown) domain.MonthlyBreakdown
	AnalyzeMarginalRate(scenario domain.TaxScenario) (domain.MarginalRateAnalysis, error)
	CompareScenarios(scenarios []domain.LabeledScenario) (domain.ComparisonResult, error)
	GenerateComparisonSummary(results []domain.ScenarioResult) *domain.ComparisonSummary
	Rates() domain.RateTable
}

var _ Calculator = (*Engine)(nil)

// Calculate runs CalculateTax and the monthly projection together.
func Calculate(c Calculator, scenario domain.TaxScenario) (*domain.CalculationResult, error) {
	annual, err := c.CalculateTax(scenario)
	if err != nil {
		return nil, err
	}
	return &domain.CalculationResult{
		Annual:  annual,
		Monthly: c.CalculateMonthlyBreakdown(annual),
	}, nil
}
