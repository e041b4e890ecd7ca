package config

import (
	"fmt"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Request limits shared by the CLI and the HTTP API
const (
	MaxLabelLength = 50
	MinScenarios   = 1
	MaxScenarios   = calculation.MaxComparisonScenarios
)

// MaxIncome is the largest annual or spouse income accepted from a request.
var MaxIncome = decimal.NewFromInt(10_000_000)

// ScenarioFile is the on-disk form of a set of scenarios to compare
type ScenarioFile struct {
	Scenarios []domain.ScenarioInput `yaml:"scenarios" json:"scenarios"`
}

// InputParser handles parsing and validation of rate tables and scenario inputs
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadRateTable loads a rate table from a YAML file and validates its structure
func (ip *InputParser) LoadRateTable(filename string) (*domain.RateTable, error) {
	var rates domain.RateTable
	if err := readYAML(filename, &rates); err != nil {
		return nil, err
	}

	if err := rates.Validate(); err != nil {
		return nil, fmt.Errorf("rate table validation failed: %w", err)
	}

	return &rates, nil
}

// LoadScenarios loads a scenario file and validates every entry with the request rules
func (ip *InputParser) LoadScenarios(filename string) (*ScenarioFile, error) {
	var file ScenarioFile
	if err := readYAML(filename, &file); err != nil {
		return nil, err
	}

	if err := ip.ValidateScenarioInputs(file.Scenarios); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &file, nil
}

func readYAML(filename string, out any) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	return nil
}

// ValidateScenarioInput applies the request rules to a single scenario. All failures are
// reported together as domain.ValidationErrors.
func (ip *InputParser) ValidateScenarioInput(in domain.ScenarioInput) error {
	return validateScenarioInput("", in).ErrOrNil()
}

// ValidateScenarioInputs applies the request rules to a comparison request. Field names of
// per-scenario failures are prefixed with "scenarios.N.".
func (ip *InputParser) ValidateScenarioInputs(inputs []domain.ScenarioInput) error {
	var errs domain.ValidationErrors

	if len(inputs) < MinScenarios || len(inputs) > MaxScenarios {
		errs = append(errs, domain.NewInputError("scenarios", "Between %d and %d scenarios are required.", MinScenarios, MaxScenarios))
		return errs
	}

	for i, in := range inputs {
		errs = append(errs, validateScenarioInput(fmt.Sprintf("scenarios.%d.", i), in)...)
	}

	return errs.ErrOrNil()
}

func validateScenarioInput(prefix string, in domain.ScenarioInput) domain.ValidationErrors {
	var errs domain.ValidationErrors
	add := func(field, msg string) {
		errs = append(errs, domain.NewInputError(prefix+field, "%s", msg))
	}

	switch {
	case in.AnnualIncome == nil:
		add("annual_income", "Annual income is required.")
	case in.AnnualIncome.IsNegative():
		add("annual_income", "Annual income cannot be negative.")
	case in.AnnualIncome.GreaterThan(MaxIncome):
		add("annual_income", "Annual income cannot exceed €10,000,000.")
	}

	status := strings.TrimSpace(in.MaritalStatus)
	parsed := domain.MaritalStatusUnknown
	if status == "" {
		add("marital_status", "Marital status is required.")
	} else if ms, err := domain.ParseMaritalStatus(status); err != nil {
		add("marital_status", "Marital status must be one of: "+strings.Join(domain.MaritalStatusNames(), ", ")+".")
	} else {
		parsed = ms
	}

	if in.SpouseIncome != nil {
		if in.SpouseIncome.IsNegative() {
			add("spouse_income", "Spouse income cannot be negative.")
		} else if in.SpouseIncome.GreaterThan(MaxIncome) {
			add("spouse_income", "Spouse income cannot exceed €10,000,000.")
		}
	}

	switch parsed {
	case domain.Married:
		if in.SpouseIncome == nil {
			add("spouse_income", "Spouse income is required when marital status is married.")
		}
	case domain.SingleParent:
		if !in.HasChildren {
			add("has_children", "Single parent status requires having children.")
		}
	}

	if utf8.RuneCountInString(in.Label) > MaxLabelLength {
		add("label", fmt.Sprintf("Label cannot exceed %d characters.", MaxLabelLength))
	}

	return errs
}

// ToScenario validates a raw input and converts it into an engine scenario
func (ip *InputParser) ToScenario(in domain.ScenarioInput) (domain.TaxScenario, error) {
	if err := ip.ValidateScenarioInput(in); err != nil {
		return domain.TaxScenario{}, err
	}
	return toScenario(in), nil
}

// ToLabeledScenarios validates a comparison request and converts every entry, keeping order
func (ip *InputParser) ToLabeledScenarios(inputs []domain.ScenarioInput) ([]domain.LabeledScenario, error) {
	if err := ip.ValidateScenarioInputs(inputs); err != nil {
		return nil, err
	}

	out := make([]domain.LabeledScenario, len(inputs))
	for i, in := range inputs {
		out[i] = domain.LabeledScenario{
			Label:    calculation.ScenarioLabel(i, in.Label),
			Scenario: toScenario(in),
		}
	}
	return out, nil
}

// toScenario assumes in has passed validation
func toScenario(in domain.ScenarioInput) domain.TaxScenario {
	status, _ := domain.ParseMaritalStatus(in.MaritalStatus)
	scenario := domain.TaxScenario{
		AnnualIncome:  *in.AnnualIncome,
		MaritalStatus: status,
		HasChildren:   in.HasChildren,
	}
	if in.SpouseIncome != nil {
		spouse := *in.SpouseIncome
		scenario.SpouseIncome = &spouse
	}
	return scenario
}

// CreateExampleRateTable returns the built-in 2025 table, suitable as a starting point
// for an alternate year
func (ip *InputParser) CreateExampleRateTable() *domain.RateTable {
	rates := calculation.NewRateTable2025()
	return &rates
}

// CreateExampleScenarios returns a small comparison covering each marital status
func (ip *InputParser) CreateExampleScenarios() *ScenarioFile {
	income := func(v int64) *decimal.Decimal {
		d := decimal.NewFromInt(v)
		return &d
	}
	return &ScenarioFile{
		Scenarios: []domain.ScenarioInput{
			{Label: "Single", AnnualIncome: income(50000), MaritalStatus: "single"},
			{Label: "Married, one income", AnnualIncome: income(60000), MaritalStatus: "married", SpouseIncome: income(0)},
			{Label: "Married, two incomes", AnnualIncome: income(60000), MaritalStatus: "married", SpouseIncome: income(25000)},
			{Label: "Single parent", AnnualIncome: income(40000), MaritalStatus: "single_parent", HasChildren: true},
		},
	}
}

// SaveRateTable writes a validated rate table to filename as YAML
func (ip *InputParser) SaveRateTable(rates *domain.RateTable, filename string) error {
	if err := rates.Validate(); err != nil {
		return fmt.Errorf("refusing to save invalid rate table: %w", err)
	}

	data, err := yaml.Marshal(rates)
	if err != nil {
		return fmt.Errorf("failed to encode rate table: %w", err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}
