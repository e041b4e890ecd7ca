package calculation

import (
	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/rpgo/tax-calculator/pkg/decimal"
	shopspring "github.com/shopspring/decimal"
)

// CalculateMonthlyBreakdown divides each annual amount by twelve and rounds to cents.
// It is a display projection; no tax rule is re-applied monthly.
func (e *Engine) CalculateMonthlyBreakdown(annual domain.TaxBreakdown) domain.MonthlyBreakdown {
	return ProjectMonthly(annual)
}

// ProjectMonthly is the table-independent form of CalculateMonthlyBreakdown.
func ProjectMonthly(annual domain.TaxBreakdown) domain.MonthlyBreakdown {
	return domain.MonthlyBreakdown{
		MonthlyGrossIncome: monthly(annual.AnnualIncome),
		IncomeTax:          monthly(annual.IncomeTax),
		USC:                monthly(annual.USC),
		PRSI:               monthly(annual.PRSI),
		GrossTax:           monthly(annual.GrossTax),
		TaxCredits:         monthly(annual.TaxCredits),
		NetTax:             monthly(annual.NetTax),
		MonthlyNetIncome:   monthly(annual.NetIncome),
	}
}

func monthly(annual shopspring.Decimal) shopspring.Decimal {
	return decimal.NewMoneyFromDecimal(annual).Monthly().Round().Decimal
}
