package calculation

import (
	"fmt"

	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// MarginalStep is the income increase used to measure the effective marginal rate.
var MarginalStep = decimal.NewFromInt(1000)

// AnalyzeMarginalRate measures how much of the next 1000 euro would be lost to tax by
// evaluating the scenario at its income and at income+1000. The band-based marginal
// rate of the base calculation is reported alongside, unchanged.
func (e *Engine) AnalyzeMarginalRate(scenario domain.TaxScenario) (domain.MarginalRateAnalysis, error) {
	base, err := e.CalculateTax(scenario)
	if err != nil {
		return domain.MarginalRateAnalysis{}, err
	}
	bumped, err := e.CalculateTax(scenario.WithIncome(scenario.AnnualIncome.Add(MarginalStep)))
	if err != nil {
		return domain.MarginalRateAnalysis{}, fmt.Errorf("income plus %s: %w", MarginalStep.String(), err)
	}

	taxOnNext := bumped.NetTax.Sub(base.NetTax).Round(2)

	return domain.MarginalRateAnalysis{
		AnnualIncome:             scenario.AnnualIncome,
		MarginalTaxRatePct:       base.MarginalTaxRatePct,
		EffectiveMarginalRatePct: taxOnNext.Div(MarginalStep).Mul(hundred).Round(2),
		TaxOnNext1000:            taxOnNext,
		NetFromNext1000:          MarginalStep.Sub(taxOnNext).Round(2),
	}, nil
}
