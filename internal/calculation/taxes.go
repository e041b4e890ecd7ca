package calculation

import (
	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// standardRateBand returns the income taxed at the standard rate for the scenario.
func standardRateBand(rates domain.RateTable, scenario domain.TaxScenario) decimal.Decimal {
	bands := rates.BandThresholds
	switch scenario.MaritalStatus {
	case domain.SingleParent:
		return bands.SingleParent
	case domain.Married:
		if scenario.SpouseIncome == nil || !scenario.SpouseIncome.IsPositive() {
			return bands.MarriedOneIncome
		}
		// Two incomes: the band grows by the lower of the maximum increase or the spouse's income
		increase := decimal.Min(bands.MarriedTwoIncomesMaxIncrease, *scenario.SpouseIncome)
		return bands.MarriedTwoIncomesBase.Add(increase)
	default:
		return bands.Single
	}
}

// calculateIncomeTax applies the standard rate up to the band and the higher rate above it.
func calculateIncomeTax(rates domain.RateTable, income, band decimal.Decimal) decimal.Decimal {
	standardAmount := decimal.Min(income, band)
	higherAmount := decimal.Max(decimal.Zero, income.Sub(band))
	return standardAmount.Mul(rates.StandardRate).Add(higherAmount.Mul(rates.HigherRate))
}

// calculateUSC walks the USC brackets in order, taxing the slice of income inside each one.
func calculateUSC(rates domain.RateTable, income decimal.Decimal) decimal.Decimal {
	usc := decimal.Zero
	previousLimit := decimal.Zero

	for _, bracket := range rates.USCBrackets {
		if bracket.UpperLimit == nil {
			// Final bracket: everything above the last finite limit
			if income.GreaterThan(previousLimit) {
				usc = usc.Add(income.Sub(previousLimit).Mul(bracket.Rate))
			}
			break
		}

		upper := *bracket.UpperLimit
		taxable := decimal.Max(decimal.Zero, decimal.Min(income, upper).Sub(previousLimit))
		usc = usc.Add(taxable.Mul(bracket.Rate))
		previousLimit = upper

		if income.LessThanOrEqual(upper) {
			break
		}
	}

	return usc
}

// calculatePRSI applies the flat social insurance rate with no cap.
func calculatePRSI(rates domain.RateTable, income decimal.Decimal) decimal.Decimal {
	return income.Mul(rates.PRSIRate)
}

// calculateTaxCredits sums the personal credit for the status and the employee PAYE credit.
func calculateTaxCredits(rates domain.RateTable, scenario domain.TaxScenario) decimal.Decimal {
	credits := rates.Credits
	var total decimal.Decimal

	if scenario.MaritalStatus == domain.Married {
		total = total.Add(credits.MarriedPerson)
	} else {
		total = total.Add(credits.SinglePerson)
		if scenario.HasChildren {
			total = total.Add(credits.SingleParentChildCarer)
		}
	}

	return total.Add(credits.EmployeePAYE)
}

// incomeTaxMarginalRate is the income tax rate on the next euro. Income exactly at the
// band already pays the higher rate on the next euro.
func incomeTaxMarginalRate(rates domain.RateTable, income, band decimal.Decimal) decimal.Decimal {
	if income.GreaterThanOrEqual(band) {
		return rates.HigherRate
	}
	return rates.StandardRate
}

// uscMarginalRate returns the rate of the bracket containing income. A value on a
// boundary belongs to the lower bracket; zero income has no USC bracket.
func uscMarginalRate(rates domain.RateTable, income decimal.Decimal) decimal.Decimal {
	previousLimit := decimal.Zero

	for _, bracket := range rates.USCBrackets {
		if bracket.UpperLimit == nil {
			if income.GreaterThan(previousLimit) {
				return bracket.Rate
			}
			return decimal.Zero
		}
		if income.GreaterThan(previousLimit) && income.LessThanOrEqual(*bracket.UpperLimit) {
			return bracket.Rate
		}
		previousLimit = *bracket.UpperLimit
	}

	return decimal.Zero
}

// calculateMarginalTaxRate combines the income tax, USC and PRSI marginal rates as a percentage.
func calculateMarginalTaxRate(rates domain.RateTable, income, band decimal.Decimal) decimal.Decimal {
	combined := incomeTaxMarginalRate(rates, income, band).
		Add(uscMarginalRate(rates, income)).
		Add(rates.PRSIRate)
	return combined.Mul(hundred).Round(2)
}
