package output

import (
	"sort"

	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName     string
	NetIncome        decimal.Decimal
	NetIncomeChange  decimal.Decimal
	PercentageChange decimal.Decimal
}

// AnalyzeScenarios determines the scenario that keeps the highest net income and measures it
// against the first scenario, which is treated as the baseline. Ties keep input order.
func AnalyzeScenarios(comparison *domain.ComparisonResult) Recommendation {
	if comparison == nil || len(comparison.Scenarios) == 0 {
		return Recommendation{}
	}
	ranked := append([]domain.ScenarioResult(nil), comparison.Scenarios...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Calculation.NetIncome.GreaterThan(ranked[j].Calculation.NetIncome)
	})
	best := ranked[0]
	baseline := comparison.Scenarios[0].Calculation.NetIncome
	delta := best.Calculation.NetIncome.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred).Round(2)
	}
	return Recommendation{
		ScenarioName:     best.Label,
		NetIncome:        best.Calculation.NetIncome,
		NetIncomeChange:  delta,
		PercentageChange: pct,
	}
}
