package output

import (
	"fmt"
	"strings"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultAssumptions lists the built-in rate table as rendered in detailed outputs.
var DefaultAssumptions = GenerateAssumptions(calculation.NewRateTable2025())

// GenerateAssumptions creates the assumptions list from the rate table actually used
func GenerateAssumptions(rates domain.RateTable) []string {
	bands := rates.BandThresholds
	credits := rates.Credits
	return []string{
		fmt.Sprintf("Tax year: %d", rates.Year),
		fmt.Sprintf("Income tax: %s standard rate, %s above the standard rate band", rate(rates.StandardRate), rate(rates.HigherRate)),
		fmt.Sprintf("Standard rate band: %s single, %s single parent, %s married (one income), raised by up to %s for a second income",
			FormatCurrency(bands.Single), FormatCurrency(bands.SingleParent), FormatCurrency(bands.MarriedOneIncome), FormatCurrency(bands.MarriedTwoIncomesMaxIncrease)),
		"USC: " + uscBrackets(rates.USCBrackets),
		fmt.Sprintf("PRSI: %s of all income, no ceiling or exemption", rate(rates.PRSIRate)),
		fmt.Sprintf("Tax credits: personal %s (single) or %s (married), PAYE %s, single parent child carer %s",
			FormatCurrency(credits.SinglePerson), FormatCurrency(credits.MarriedPerson), FormatCurrency(credits.EmployeePAYE), FormatCurrency(credits.SingleParentChildCarer)),
		"Monthly figures are annual amounts divided by twelve",
	}
}

func uscBrackets(brackets []domain.USCBracket) string {
	parts := make([]string, 0, len(brackets))
	for _, b := range brackets {
		if b.UpperLimit == nil {
			parts = append(parts, rate(b.Rate)+" above")
			continue
		}
		parts = append(parts, fmt.Sprintf("%s up to %s", rate(b.Rate), FormatCurrency(*b.UpperLimit)))
	}
	return strings.Join(parts, ", ")
}

func rate(r decimal.Decimal) string { return r.Mul(decimalHundred).String() + "%" }

var decimalHundred = decimal.NewFromInt(100)
