package output

import (
	"strconv"

	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/rpgo/tax-calculator/pkg/decimal"
	shopspring "github.com/shopspring/decimal"
)

// FormatCurrency formats a decimal as euro currency with thousands grouping and 2 decimals.
// Kept here so it can be reused by multiple formatters and unit tested in isolation.
func FormatCurrency(amount shopspring.Decimal) string {
	return decimal.NewMoneyFromDecimal(amount).Format()
}

// FormatPercentage formats a decimal as a percentage with 2 decimals.
func FormatPercentage(amount shopspring.Decimal) string { return amount.StringFixed(2) + "%" }

func intToString(i int) string { return strconv.Itoa(i) }

func boolToString(b bool) string { return strconv.FormatBool(b) }

// lineItem is one row of an annual/monthly breakdown table.
type lineItem struct {
	Label   string
	Annual  shopspring.Decimal
	Monthly shopspring.Decimal
}

// breakdownLines flattens a calculation into rows in presentation order.
func breakdownLines(c *domain.CalculationResult) []lineItem {
	a, m := c.Annual, c.Monthly
	return []lineItem{
		{"Gross Income", a.AnnualIncome, m.MonthlyGrossIncome},
		{"Income Tax", a.IncomeTax, m.IncomeTax},
		{"USC", a.USC, m.USC},
		{"PRSI", a.PRSI, m.PRSI},
		{"Gross Tax", a.GrossTax, m.GrossTax},
		{"Tax Credits", a.TaxCredits, m.TaxCredits},
		{"Net Tax", a.NetTax, m.NetTax},
		{"Net Income", a.NetIncome, m.MonthlyNetIncome},
	}
}

// describeScenario summarises the household inputs echoed in a breakdown.
func describeScenario(b domain.TaxBreakdown) string {
	desc := b.MaritalStatus.String()
	if b.MaritalStatus == domain.Married && b.SpouseIncome != nil {
		desc += ", spouse income " + FormatCurrency(*b.SpouseIncome)
	}
	if b.HasChildren {
		desc += ", with children"
	}
	return desc
}
