package calculation

import (
	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// RATE TABLE ASSUMPTIONS (2025, Irish PAYE employee):
//
// 1. Income tax: 20% standard rate, 40% higher rate
//    - Standard rate band: single 44,000, single parent 48,000, married one income 53,000
//    - Married two incomes: 53,000 increased by the lower of 35,000 or the spouse's income
//
// 2. USC: 0.5% to 12,012, 2% to 27,382, 3% to 70,044, 8% on the balance
//
// 3. PRSI: 4.2% Class A1 on all income, no ceiling and no exemption threshold
//
// 4. Credits: personal 2,000 (married 4,000), employee PAYE 2,000,
//    single person child carer 1,900

// NewRateTable2025 returns the 2025 rate table.
func NewRateTable2025() domain.RateTable {
	return domain.RateTable{
		Year:         2025,
		StandardRate: decimal.NewFromFloat(0.20),
		HigherRate:   decimal.NewFromFloat(0.40),
		BandThresholds: domain.BandThresholds{
			Single:                       decimal.NewFromInt(44000),
			SingleParent:                 decimal.NewFromInt(48000),
			MarriedOneIncome:             decimal.NewFromInt(53000),
			MarriedTwoIncomesBase:        decimal.NewFromInt(53000),
			MarriedTwoIncomesMaxIncrease: decimal.NewFromInt(35000),
		},
		USCBrackets: []domain.USCBracket{
			{UpperLimit: limit(12012), Rate: decimal.NewFromFloat(0.005)},
			{UpperLimit: limit(27382), Rate: decimal.NewFromFloat(0.02)},  // 12012 + 15370
			{UpperLimit: limit(70044), Rate: decimal.NewFromFloat(0.03)},  // 27382 + 42662
			{UpperLimit: nil, Rate: decimal.NewFromFloat(0.08)},
		},
		PRSIRate: decimal.NewFromFloat(0.042),
		Credits: domain.TaxCredits{
			SinglePerson:           decimal.NewFromInt(2000),
			MarriedPerson:          decimal.NewFromInt(4000),
			EmployeePAYE:           decimal.NewFromInt(2000),
			SingleParentChildCarer: decimal.NewFromInt(1900),
		},
	}
}

func limit(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// cloneRateTable returns a copy that shares no mutable memory with rt.
func cloneRateTable(rt domain.RateTable) domain.RateTable {
	brackets := make([]domain.USCBracket, len(rt.USCBrackets))
	for i, b := range rt.USCBrackets {
		brackets[i] = domain.USCBracket{Rate: b.Rate}
		if b.UpperLimit != nil {
			l := *b.UpperLimit
			brackets[i].UpperLimit = &l
		}
	}
	rt.USCBrackets = brackets
	return rt
}
