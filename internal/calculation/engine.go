package calculation

import (
	"fmt"

	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/rpgo/tax-calculator/pkg/decimal"
	shopspring "github.com/shopspring/decimal"
)

var hundred = shopspring.NewFromInt(100)

// Engine computes tax breakdowns against a single rate table. It holds no mutable
// state after construction and is safe for concurrent use.
type Engine struct {
	rates  domain.RateTable
	Logger Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. A nil logger keeps the no-op default.
func WithLogger(l Logger) Option {
	return func(e *Engine) { e.SetLogger(l) }
}

// NewEngine validates the rate table and creates an engine for it. A malformed table
// returns an error wrapping domain.ErrAmbiguousConfiguration.
func NewEngine(rates domain.RateTable, opts ...Option) (*Engine, error) {
	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("rate table %d: %w", rates.Year, err)
	}
	engine := &Engine{
		rates:  cloneRateTable(rates),
		Logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine, nil
}

// NewEngine2025 creates an engine using the built-in 2025 rate table.
func NewEngine2025(opts ...Option) *Engine {
	engine := &Engine{
		rates:  NewRateTable2025(),
		Logger: NopLogger{},
	}
	for _, opt := range opts {
		opt(engine)
	}
	return engine
}

// SetLogger sets the logger for the engine. If nil is provided, a no-op logger is used.
func (e *Engine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Rates returns a copy of the active rate table.
func (e *Engine) Rates() domain.RateTable {
	return cloneRateTable(e.rates)
}

// TaxYear returns the year tag of the active rate table.
func (e *Engine) TaxYear() int {
	return e.rates.Year
}

// StandardRateBand returns the standard rate band that applies to scenario.
func (e *Engine) StandardRateBand(scenario domain.TaxScenario) shopspring.Decimal {
	return standardRateBand(e.rates, scenario)
}

// CalculateTax computes the full annual breakdown for one scenario. Intermediate values
// are kept unrounded; monetary fields are rounded to cents only in the returned value.
func (e *Engine) CalculateTax(scenario domain.TaxScenario) (domain.TaxBreakdown, error) {
	if err := validateScenario(scenario); err != nil {
		return domain.TaxBreakdown{}, err
	}

	income := scenario.AnnualIncome
	band := standardRateBand(e.rates, scenario)

	incomeTax := calculateIncomeTax(e.rates, income, band)
	usc := calculateUSC(e.rates, income)
	prsi := calculatePRSI(e.rates, income)
	credits := calculateTaxCredits(e.rates, scenario)

	grossTax := incomeTax.Add(usc).Add(prsi)
	netTax := shopspring.Max(shopspring.Zero, grossTax.Sub(credits))
	netIncome := income.Sub(netTax)

	// PercentOf guards the zero income case
	effectiveRate := decimal.NewMoneyFromDecimal(netTax).PercentOf(decimal.NewMoneyFromDecimal(income))

	breakdown := domain.TaxBreakdown{
		TaxYear:             e.rates.Year,
		AnnualIncome:        income,
		MaritalStatus:       scenario.MaritalStatus,
		HasChildren:         scenario.HasChildren,
		SpouseIncome:        copyDecimal(scenario.SpouseIncome),
		StandardRateBand:    band,
		IncomeTax:           roundCents(incomeTax),
		USC:                 roundCents(usc),
		PRSI:                roundCents(prsi),
		GrossTax:            roundCents(grossTax),
		TaxCredits:          roundCents(credits),
		NetTax:              roundCents(netTax),
		NetIncome:           roundCents(netIncome),
		EffectiveTaxRatePct: effectiveRate,
		MarginalTaxRatePct:  calculateMarginalTaxRate(e.rates, income, band),
	}

	e.Logger.Debugf("tax %d: income=%s status=%s band=%s gross=%s credits=%s net=%s",
		e.rates.Year, income.StringFixed(2), scenario.MaritalStatus, band.StringFixed(2),
		breakdown.GrossTax.StringFixed(2), breakdown.TaxCredits.StringFixed(2), breakdown.NetTax.StringFixed(2))

	return breakdown, nil
}

// validateScenario enforces the engine preconditions. Range limits and the single parent
// children rule belong to the request layer.
func validateScenario(scenario domain.TaxScenario) error {
	if scenario.AnnualIncome.IsNegative() {
		return domain.NewInputError("annual_income", "cannot be negative")
	}
	if !scenario.MaritalStatus.Valid() {
		return domain.NewInputError("marital_status", "unrecognized status %s", scenario.MaritalStatus)
	}
	if scenario.MaritalStatus == domain.Married {
		if scenario.SpouseIncome == nil {
			return domain.NewInputError("spouse_income", "is required when marital status is married")
		}
		if scenario.SpouseIncome.IsNegative() {
			return domain.NewInputError("spouse_income", "cannot be negative")
		}
	}
	return nil
}

func roundCents(d shopspring.Decimal) shopspring.Decimal {
	return decimal.NewMoneyFromDecimal(d).Round().Decimal
}

func copyDecimal(d *shopspring.Decimal) *shopspring.Decimal {
	if d == nil {
		return nil
	}
	v := *d
	return &v
}
