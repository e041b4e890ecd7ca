package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// RateTable contains every rate, band and credit used by the tax engine for one tax year.
// A table is treated as a read-only value once constructed and may be shared freely.
type RateTable struct {
	Year int `yaml:"year" json:"year"`

	// Income tax rates
	StandardRate decimal.Decimal `yaml:"standard_rate" json:"standard_rate"` // Default: 0.20
	HigherRate   decimal.Decimal `yaml:"higher_rate" json:"higher_rate"`     // Default: 0.40

	// Standard rate band thresholds by marital status
	BandThresholds BandThresholds `yaml:"band_thresholds" json:"band_thresholds"`

	// Universal Social Charge brackets, ordered; the final bracket has no upper limit
	USCBrackets []USCBracket `yaml:"usc_brackets" json:"usc_brackets"`

	// PRSI applies to all income with no cap or exemption
	PRSIRate decimal.Decimal `yaml:"prsi_rate" json:"prsi_rate"` // Default: 0.042 (Class A1)

	Credits TaxCredits `yaml:"credits" json:"credits"`
}

// BandThresholds holds the base euro threshold of the standard rate band for each status.
type BandThresholds struct {
	Single                       decimal.Decimal `yaml:"single" json:"single"`                                                   // Default: 44000
	SingleParent                 decimal.Decimal `yaml:"single_parent" json:"single_parent"`                                     // Default: 48000
	MarriedOneIncome             decimal.Decimal `yaml:"married_one_income" json:"married_one_income"`                           // Default: 53000
	MarriedTwoIncomesBase        decimal.Decimal `yaml:"married_two_incomes_base" json:"married_two_incomes_base"`               // Default: 53000
	MarriedTwoIncomesMaxIncrease decimal.Decimal `yaml:"married_two_incomes_max_increase" json:"married_two_incomes_max_increase"` // Default: 35000
}

// USCBracket is one tier of the Universal Social Charge. A nil UpperLimit marks the
// catch-all bracket above the highest finite limit.
type USCBracket struct {
	UpperLimit *decimal.Decimal `yaml:"upper_limit" json:"upper_limit"`
	Rate       decimal.Decimal  `yaml:"rate" json:"rate"`
}

// TaxCredits lists the euro amounts of the supported personal tax credits.
type TaxCredits struct {
	SinglePerson           decimal.Decimal `yaml:"single_person" json:"single_person"`                         // Default: 2000
	MarriedPerson          decimal.Decimal `yaml:"married_person" json:"married_person"`                       // Default: 4000
	EmployeePAYE           decimal.Decimal `yaml:"employee_paye" json:"employee_paye"`                         // Default: 2000
	SingleParentChildCarer decimal.Decimal `yaml:"single_parent_child_carer" json:"single_parent_child_carer"` // Default: 1900
}

// Validate checks the structural invariants of the table. Any failure wraps
// ErrAmbiguousConfiguration and is meant to stop the program at startup.
func (rt RateTable) Validate() error {
	if rt.Year <= 0 {
		return configError("year must be positive, got %d", rt.Year)
	}
	if rt.StandardRate.IsNegative() || rt.HigherRate.IsNegative() {
		return configError("income tax rates cannot be negative")
	}
	if rt.PRSIRate.IsNegative() {
		return configError("prsi rate cannot be negative")
	}

	bands := map[string]decimal.Decimal{
		"single":                           rt.BandThresholds.Single,
		"single_parent":                    rt.BandThresholds.SingleParent,
		"married_one_income":               rt.BandThresholds.MarriedOneIncome,
		"married_two_incomes_base":         rt.BandThresholds.MarriedTwoIncomesBase,
		"married_two_incomes_max_increase": rt.BandThresholds.MarriedTwoIncomesMaxIncrease,
	}
	for name, v := range bands {
		if v.IsNegative() {
			return configError("band threshold %s cannot be negative", name)
		}
	}

	credits := map[string]decimal.Decimal{
		"single_person":             rt.Credits.SinglePerson,
		"married_person":            rt.Credits.MarriedPerson,
		"employee_paye":             rt.Credits.EmployeePAYE,
		"single_parent_child_carer": rt.Credits.SingleParentChildCarer,
	}
	for name, v := range credits {
		if v.IsNegative() {
			return configError("tax credit %s cannot be negative", name)
		}
	}

	return validateUSCBrackets(rt.USCBrackets)
}

func validateUSCBrackets(brackets []USCBracket) error {
	if len(brackets) == 0 {
		return configError("at least one usc bracket is required")
	}
	last := len(brackets) - 1
	previous := decimal.Zero
	for i, b := range brackets {
		if b.Rate.IsNegative() {
			return configError("usc bracket %d: rate cannot be negative", i)
		}
		if b.UpperLimit == nil {
			if i != last {
				return configError("usc bracket %d: only the final bracket may omit upper_limit", i)
			}
			continue
		}
		if i == last {
			return configError("usc bracket %d: final bracket must omit upper_limit", i)
		}
		if !b.UpperLimit.GreaterThan(previous) {
			return configError("usc bracket %d: upper_limit %s must be greater than %s", i, b.UpperLimit.String(), previous.String())
		}
		previous = *b.UpperLimit
	}
	return nil
}

func configError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrAmbiguousConfiguration, fmt.Sprintf(format, args...))
}
