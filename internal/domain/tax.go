package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// MaritalStatus selects the standard rate band and personal credit of a scenario.
// The zero value is not a valid status.
type MaritalStatus int

const (
	MaritalStatusUnknown MaritalStatus = iota
	Single
	Married
	SingleParent
)

var maritalStatusNames = map[MaritalStatus]string{
	Single:       "single",
	Married:      "married",
	SingleParent: "single_parent",
}

// MaritalStatusNames returns the accepted textual statuses in a stable order.
func MaritalStatusNames() []string {
	return []string{"single", "married", "single_parent"}
}

// ParseMaritalStatus converts the textual form used by requests and config files.
func ParseMaritalStatus(s string) (MaritalStatus, error) {
	n := strings.ToLower(strings.TrimSpace(s))
	for status, name := range maritalStatusNames {
		if name == n {
			return status, nil
		}
	}
	return MaritalStatusUnknown, NewInputError("marital_status", "must be one of: %s", strings.Join(MaritalStatusNames(), ", "))
}

// Valid reports whether ms is one of the known statuses.
func (ms MaritalStatus) Valid() bool {
	_, ok := maritalStatusNames[ms]
	return ok
}

func (ms MaritalStatus) String() string {
	if name, ok := maritalStatusNames[ms]; ok {
		return name
	}
	return fmt.Sprintf("MaritalStatus(%d)", int(ms))
}

// MarshalText renders the status in its request form.
func (ms MaritalStatus) MarshalText() ([]byte, error) {
	if !ms.Valid() {
		return nil, fmt.Errorf("cannot marshal %s", ms.String())
	}
	return []byte(ms.String()), nil
}

// UnmarshalText parses the request form of a status.
func (ms *MaritalStatus) UnmarshalText(text []byte) error {
	parsed, err := ParseMaritalStatus(string(text))
	if err != nil {
		return err
	}
	*ms = parsed
	return nil
}

// TaxScenario is the validated input of a single tax calculation.
type TaxScenario struct {
	AnnualIncome  decimal.Decimal  `json:"annual_income"`
	MaritalStatus MaritalStatus    `json:"marital_status"`
	HasChildren   bool             `json:"has_children"`
	SpouseIncome  *decimal.Decimal `json:"spouse_income"` // Only meaningful for Married
}

// WithIncome returns a copy of the scenario with a different annual income.
func (ts TaxScenario) WithIncome(income decimal.Decimal) TaxScenario {
	ts.AnnualIncome = income
	return ts
}

// ScenarioInput is the raw, unvalidated form of a scenario as it arrives from a request
// body or a scenarios file.
type ScenarioInput struct {
	Label         string           `yaml:"label,omitempty" json:"label,omitempty"`
	AnnualIncome  *decimal.Decimal `yaml:"annual_income" json:"annual_income"`
	MaritalStatus string           `yaml:"marital_status" json:"marital_status"`
	HasChildren   bool             `yaml:"has_children,omitempty" json:"has_children,omitempty"`
	SpouseIncome  *decimal.Decimal `yaml:"spouse_income" json:"spouse_income"` // nil is missing, zero is one income
}

// TaxBreakdown is the full annual result of a tax calculation. Monetary fields are rounded
// to cents; the rates are percentages rounded to two places. GrossTax is rounded from the
// unrounded sum of its components, so it can differ from IncomeTax+USC+PRSI by up to 1.5 cents.
type TaxBreakdown struct {
	TaxYear       int              `json:"tax_year"`
	AnnualIncome  decimal.Decimal  `json:"annual_income"`
	MaritalStatus MaritalStatus    `json:"marital_status"`
	HasChildren   bool             `json:"has_children"`
	SpouseIncome  *decimal.Decimal `json:"spouse_income"`

	StandardRateBand decimal.Decimal `json:"standard_rate_band"`

	IncomeTax  decimal.Decimal `json:"income_tax"`
	USC        decimal.Decimal `json:"usc"`
	PRSI       decimal.Decimal `json:"prsi"`
	GrossTax   decimal.Decimal `json:"gross_tax"`
	TaxCredits decimal.Decimal `json:"tax_credits"`
	NetTax     decimal.Decimal `json:"net_tax"`
	NetIncome  decimal.Decimal `json:"net_income"`

	EffectiveTaxRatePct decimal.Decimal `json:"effective_tax_rate"`
	MarginalTaxRatePct  decimal.Decimal `json:"marginal_tax_rate"`
}

// MonthlyBreakdown divides an annual breakdown by twelve for display.
type MonthlyBreakdown struct {
	MonthlyGrossIncome decimal.Decimal `json:"monthly_gross_income"`
	IncomeTax          decimal.Decimal `json:"income_tax"`
	USC                decimal.Decimal `json:"usc"`
	PRSI               decimal.Decimal `json:"prsi"`
	GrossTax           decimal.Decimal `json:"gross_tax"`
	TaxCredits         decimal.Decimal `json:"tax_credits"`
	NetTax             decimal.Decimal `json:"net_tax"`
	MonthlyNetIncome   decimal.Decimal `json:"monthly_net_income"`
}

// CalculationResult pairs an annual breakdown with its monthly projection.
type CalculationResult struct {
	Annual  TaxBreakdown     `json:"annual"`
	Monthly MonthlyBreakdown `json:"monthly"`
}

// MarginalRateAnalysis compares the band-based marginal rate with the rate measured over
// the next 1000 euro of income. The two diverge when the step crosses a boundary.
type MarginalRateAnalysis struct {
	AnnualIncome             decimal.Decimal `json:"annual_income"`
	MarginalTaxRatePct       decimal.Decimal `json:"marginal_tax_rate"`
	EffectiveMarginalRatePct decimal.Decimal `json:"effective_marginal_rate"`
	TaxOnNext1000            decimal.Decimal `json:"tax_on_next_1000"`
	NetFromNext1000          decimal.Decimal `json:"net_from_next_1000"`
}

// LabeledScenario is one entry of a comparison request. An empty label is replaced by
// "Scenario N".
type LabeledScenario struct {
	Label    string
	Scenario TaxScenario
}

// ScenarioResult is one evaluated comparison entry.
type ScenarioResult struct {
	ScenarioID  int          `json:"scenario_id"`
	Label       string       `json:"label"`
	Calculation TaxBreakdown `json:"calculation"`
}

// Extremal names the scenario holding an extreme value.
type Extremal struct {
	Label string          `json:"label"`
	Value decimal.Decimal `json:"value"`
}

// ComparisonSummary reduces a set of scenario results. Ties go to the earliest scenario.
type ComparisonSummary struct {
	HighestIncome        Extremal `json:"highest_income"`
	HighestNetIncome     Extremal `json:"highest_net_income"`
	LowestEffectiveRate  Extremal `json:"lowest_effective_rate"`
	HighestEffectiveRate Extremal `json:"highest_effective_rate"`
}

// ComparisonResult holds every evaluated scenario and, when there was at least one, the summary.
type ComparisonResult struct {
	Scenarios []ScenarioResult   `json:"scenarios"`
	Summary   *ComparisonSummary `json:"comparison_summary"`
}

// TaxReport is the input of the output formatters. Every section is optional.
type TaxReport struct {
	TaxYear     int                   `json:"tax_year"`
	GeneratedAt time.Time             `json:"generated_at"`
	Calculation *CalculationResult    `json:"calculation,omitempty"`
	Marginal    *MarginalRateAnalysis `json:"marginal,omitempty"`
	Comparison  *ComparisonResult     `json:"comparison,omitempty"`

	// Human readable statements of the rate table the figures were computed with
	Assumptions []string `json:"assumptions,omitempty"`
}
