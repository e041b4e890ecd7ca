package calculation

import (
	"fmt"
	"strings"
	"sync"

	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxComparisonScenarios bounds the number of scenarios in one comparison.
const MaxComparisonScenarios = 5

// ScenarioLabel returns label, or "Scenario N" (1-based) when it is blank.
func ScenarioLabel(index int, label string) string {
	if strings.TrimSpace(label) != "" {
		return label
	}
	return fmt.Sprintf("Scenario %d", index+1)
}

// CompareScenarios evaluates up to MaxComparisonScenarios scenarios concurrently and
// summarises them. Results keep input order; an empty input returns an empty result.
func (e *Engine) CompareScenarios(scenarios []domain.LabeledScenario) (domain.ComparisonResult, error) {
	if len(scenarios) == 0 {
		return domain.ComparisonResult{Scenarios: []domain.ScenarioResult{}}, nil
	}
	if len(scenarios) > MaxComparisonScenarios {
		return domain.ComparisonResult{}, domain.NewInputError("scenarios", "at most %d scenarios can be compared, got %d", MaxComparisonScenarios, len(scenarios))
	}

	results := make([]domain.ScenarioResult, len(scenarios))
	errs := make([]error, len(scenarios))
	var wg sync.WaitGroup

	for i := range scenarios {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			ls := scenarios[idx]
			label := ScenarioLabel(idx, ls.Label)
			breakdown, err := e.CalculateTax(ls.Scenario)
			if err != nil {
				errs[idx] = fmt.Errorf("%s: %w", label, err)
				return
			}
			results[idx] = domain.ScenarioResult{
				ScenarioID:  idx + 1,
				Label:       label,
				Calculation: breakdown,
			}
		}(i)
	}

	wg.Wait()

	// Report the earliest failure so the outcome does not depend on scheduling
	for _, err := range errs {
		if err != nil {
			return domain.ComparisonResult{}, err
		}
	}

	e.Logger.Debugf("compared %d scenarios", len(results))

	return domain.ComparisonResult{
		Scenarios: results,
		Summary:   e.GenerateComparisonSummary(results),
	}, nil
}

// GenerateComparisonSummary reduces the results in input order. When several results share
// an extreme value the first one wins. Returns nil for no results.
func (e *Engine) GenerateComparisonSummary(results []domain.ScenarioResult) *domain.ComparisonSummary {
	return SummarizeComparison(results)
}

// SummarizeComparison is the table-independent form of GenerateComparisonSummary.
func SummarizeComparison(results []domain.ScenarioResult) *domain.ComparisonSummary {
	if len(results) == 0 {
		return nil
	}

	pick := func(value func(domain.TaxBreakdown) decimal.Decimal, better func(a, b decimal.Decimal) bool) domain.Extremal {
		best := domain.Extremal{Label: results[0].Label, Value: value(results[0].Calculation)}
		for _, r := range results[1:] {
			v := value(r.Calculation)
			if better(v, best.Value) {
				best = domain.Extremal{Label: r.Label, Value: v}
			}
		}
		return best
	}

	income := func(b domain.TaxBreakdown) decimal.Decimal { return b.AnnualIncome }
	netIncome := func(b domain.TaxBreakdown) decimal.Decimal { return b.NetIncome }
	effective := func(b domain.TaxBreakdown) decimal.Decimal { return b.EffectiveTaxRatePct }
	greater := func(a, b decimal.Decimal) bool { return a.GreaterThan(b) }
	less := func(a, b decimal.Decimal) bool { return a.LessThan(b) }

	return &domain.ComparisonSummary{
		HighestIncome:        pick(income, greater),
		HighestNetIncome:     pick(netIncome, greater),
		LowestEffectiveRate:  pick(effective, less),
		HighestEffectiveRate: pick(effective, greater),
	}
}
