package output

import (
	"testing"

	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func result(id int, label string, net int64) domain.ScenarioResult {
	return domain.ScenarioResult{ScenarioID: id, Label: label, Calculation: domain.TaxBreakdown{NetIncome: decimal.NewFromInt(net)}}
}

func TestAnalyzeScenarios_SelectsHighestNetIncome(t *testing.T) {
	comparison := &domain.ComparisonResult{
		Scenarios: []domain.ScenarioResult{
			result(1, "Scenario A", 40000),
			result(2, "Scenario B", 50000),
			result(3, "Scenario C", 45000),
		},
	}

	rec := AnalyzeScenarios(comparison)
	if rec.ScenarioName != "Scenario B" {
		t.Fatalf("expected Scenario B, got %q", rec.ScenarioName)
	}
	if !rec.NetIncomeChange.Equal(decimal.NewFromInt(10000)) {
		t.Fatalf("expected change of 10000 vs first scenario, got %s", rec.NetIncomeChange)
	}
	if !rec.PercentageChange.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25%% change, got %s", rec.PercentageChange)
	}
}

func TestAnalyzeScenarios_TieKeepsFirst(t *testing.T) {
	comparison := &domain.ComparisonResult{
		Scenarios: []domain.ScenarioResult{result(1, "A", 30000), result(2, "B", 30000)},
	}
	if rec := AnalyzeScenarios(comparison); rec.ScenarioName != "A" {
		t.Fatalf("expected tie to keep A, got %q", rec.ScenarioName)
	}
}

func TestAnalyzeScenarios_Empty(t *testing.T) {
	if rec := AnalyzeScenarios(nil); rec.ScenarioName != "" {
		t.Fatalf("expected empty recommendation, got %+v", rec)
	}
	if rec := AnalyzeScenarios(&domain.ComparisonResult{}); rec.ScenarioName != "" {
		t.Fatalf("expected empty recommendation, got %+v", rec)
	}
}

func TestAnalyzeScenarios_ZeroBaseline(t *testing.T) {
	comparison := &domain.ComparisonResult{
		Scenarios: []domain.ScenarioResult{result(1, "Zero", 0), result(2, "Some", 1000)},
	}
	rec := AnalyzeScenarios(comparison)
	if !rec.PercentageChange.IsZero() {
		t.Fatalf("expected zero percentage with zero baseline, got %s", rec.PercentageChange)
	}
}

func TestGenerateAssumptions(t *testing.T) {
	if len(DefaultAssumptions) == 0 {
		t.Fatalf("expected default assumptions")
	}
	want := []string{
		"Tax year: 2025",
		"Income tax: 20% standard rate, 40% above the standard rate band",
		"USC: 0.5% up to €12,012.00, 2% up to €27,382.00, 3% up to €70,044.00, 8% above",
		"PRSI: 4.2% of all income, no ceiling or exemption",
	}
	for _, line := range want {
		found := false
		for _, a := range DefaultAssumptions {
			if a == line {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing assumption %q in %v", line, DefaultAssumptions)
		}
	}
}
