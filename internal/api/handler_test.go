package api

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/domain"
)

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

type envelope struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Data      json.RawMessage     `json:"data"`
	Meta      json.RawMessage     `json:"meta"`
	Errors    map[string][]string `json:"errors"`
	Timestamp string              `json:"timestamp"`
}

func newTestHandler(calc calculation.Calculator) http.Handler {
	return NewHandler(calc, zap.NewNop(),
		WithClock(func() time.Time { return fixedNow }),
		WithIDGenerator(func() string { return "test-id" }),
	).Routes()
}

func do(t *testing.T, h http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return rec, env
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal) {
	t.Helper()
	assert.True(t, decimal.RequireFromString(expected).Equal(actual), "expected %s, got %s", expected, actual)
}

func TestCalculateEndpoint(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	rec, env := do(t, h, http.MethodPost, "/api/tax/calculate", `{"annual_income": 30000, "marital_status": "single"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.True(t, env.Success)
	assert.Equal(t, "Tax calculation completed successfully", env.Message)
	assert.Equal(t, "2025-06-01T12:00:00Z", env.Timestamp)

	var result domain.CalculationResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	assertDecimal(t, "3706", result.Annual.NetTax)
	assertDecimal(t, "12.35", result.Annual.EffectiveTaxRatePct)
	assert.Equal(t, domain.Single, result.Annual.MaritalStatus)
	assertDecimal(t, "2191.17", result.Monthly.MonthlyNetIncome)

	var meta CalculationMeta
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.Equal(t, CalculationMeta{CalculationID: "test-id", CalculationDate: "2025-06-01T12:00:00Z", TaxYear: 2025}, meta)
}

func TestAmountsAreJSONNumbers(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	rec, env := do(t, h, http.MethodPost, "/api/tax/calculate", `{"annual_income": 30000, "marital_status": "single"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"income_tax":6000`)

	var data struct {
		Annual map[string]any `json:"annual"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	for field, want := range map[string]float64{
		"annual_income":      30000,
		"income_tax":         6000,
		"usc":                446,
		"effective_tax_rate": 12.35,
		"marginal_tax_rate":  27.2,
	} {
		got, ok := data.Annual[field].(float64)
		require.True(t, ok, "%s should be a JSON number, got %T", field, data.Annual[field])
		assert.Equal(t, want, got, field)
	}

	rec, _ = do(t, h, http.MethodGet, "/api/tax/rates", "")
	assert.Contains(t, rec.Body.String(), `"prsi_rate":0.042`)
}

func TestCalculateEndpointValidation(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	tests := []struct {
		name   string
		body   string
		fields []string
	}{
		{"married without spouse income", `{"annual_income": 30000, "marital_status": "married"}`, []string{"spouse_income"}},
		{"single parent without children", `{"annual_income": 30000, "marital_status": "single_parent"}`, []string{"has_children"}},
		{"income above ceiling", `{"annual_income": 10000001, "marital_status": "single"}`, []string{"annual_income"}},
		{"empty body object", `{}`, []string{"annual_income", "marital_status"}},
		{"unknown status", `{"annual_income": 1, "marital_status": "widowed"}`, []string{"marital_status"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, env := do(t, h, http.MethodPost, "/api/tax/calculate", tt.body)
			assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
			assert.False(t, env.Success)
			assert.Len(t, env.Errors, len(tt.fields))
			for _, f := range tt.fields {
				assert.NotEmpty(t, env.Errors[f], "expected errors for %s: %v", f, env.Errors)
			}
		})
	}
}

func TestMalformedBodyIsBadRequest(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	for _, body := range []string{`{"annual_income": `, `{"annual_income": "lots"}`, `[]`} {
		rec, env := do(t, h, http.MethodPost, "/api/tax/calculate", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		assert.False(t, env.Success)
		assert.True(t, strings.HasPrefix(env.Message, "Invalid request body"), env.Message)
	}
}

func TestWrongMethod(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	rec, env := do(t, h, http.MethodGet, "/api/tax/calculate", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Equal(t, http.MethodPost, rec.Header().Get("Allow"))
	assert.False(t, env.Success)

	rec, _ = do(t, h, http.MethodPost, "/api/tax/rates", "{}")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestRatesEndpoint(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	rec, env := do(t, h, http.MethodGet, "/api/tax/rates", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var rates domain.RateTable
	require.NoError(t, json.Unmarshal(env.Data, &rates))
	assert.Equal(t, 2025, rates.Year)
	require.Len(t, rates.USCBrackets, 4)
	assert.Nil(t, rates.USCBrackets[3].UpperLimit)
	assertDecimal(t, "0.042", rates.PRSIRate)

	var meta RatesMeta
	require.NoError(t, json.Unmarshal(env.Meta, &meta))
	assert.Equal(t, RatesMeta{LastUpdated: "2025-01-01", Source: RatesSource, TaxYear: 2025}, meta)
}

func TestMarginalRateEndpoint(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	rec, env := do(t, h, http.MethodPost, "/api/tax/marginal-rate", `{"annual_income": 30000, "marital_status": "single"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Marginal tax rate calculated successfully", env.Message)

	var analysis domain.MarginalRateAnalysis
	require.NoError(t, json.Unmarshal(env.Data, &analysis))
	assertDecimal(t, "27.2", analysis.MarginalTaxRatePct)
	assertDecimal(t, "27.2", analysis.EffectiveMarginalRatePct)
	assertDecimal(t, "272", analysis.TaxOnNext1000)
	assertDecimal(t, "728", analysis.NetFromNext1000)
}

func TestCompareEndpoint(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	body := `{"scenarios": [
		{"label": "Low", "annual_income": 30000, "marital_status": "single"},
		{"label": "High", "annual_income": 60000, "marital_status": "single"},
		{"annual_income": 60000, "marital_status": "married", "spouse_income": 0}
	]}`
	rec, env := do(t, h, http.MethodPost, "/api/tax/compare", body)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var comparison domain.ComparisonResult
	require.NoError(t, json.Unmarshal(env.Data, &comparison))
	require.Len(t, comparison.Scenarios, 3)
	assert.Equal(t, "Scenario 3", comparison.Scenarios[2].Label)
	require.NotNil(t, comparison.Summary)
	assert.Equal(t, "High", comparison.Summary.HighestIncome.Label)
	assert.Equal(t, "Scenario 3", comparison.Summary.HighestNetIncome.Label)
	assert.Equal(t, "Low", comparison.Summary.LowestEffectiveRate.Label)
	assert.Equal(t, "High", comparison.Summary.HighestEffectiveRate.Label)
}

func TestCompareEndpointValidation(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	scenario := `{"annual_income": 30000, "marital_status": "single"}`
	six := "[" + strings.TrimSuffix(strings.Repeat(scenario+",", 6), ",") + "]"

	rec, env := do(t, h, http.MethodPost, "/api/tax/compare", `{"scenarios": `+six+`}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotEmpty(t, env.Errors["scenarios"])

	rec, env = do(t, h, http.MethodPost, "/api/tax/compare", `{"scenarios": []}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotEmpty(t, env.Errors["scenarios"])

	rec, env = do(t, h, http.MethodPost, "/api/tax/compare", `{"scenarios": [`+scenario+`, {"annual_income": -1, "marital_status": "single"}]}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.NotEmpty(t, env.Errors["scenarios.1.annual_income"])
}

func TestHealthEndpoint(t *testing.T) {
	h := newTestHandler(calculation.NewEngine2025())

	rec, env := do(t, h, http.MethodGet, "/health", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "System is healthy", env.Message)

	var data HealthData
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "running", data.Services["calculator"])
	assert.Equal(t, "2025", data.Services["rates"])
}

func TestEngineErrorsAreMapped(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := calculation.NewMockCalculator(ctrl)

	core, logs := observer.New(zap.ErrorLevel)
	h := NewHandler(calc, zap.New(core), WithClock(func() time.Time { return fixedNow })).Routes()

	calc.EXPECT().CalculateTax(gomock.Any()).Return(domain.TaxBreakdown{}, errors.New("rate table unavailable"))
	rec, env := do(t, h, http.MethodPost, "/api/tax/calculate", `{"annual_income": 30000, "marital_status": "single"}`)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "An unexpected error occurred", env.Message)
	assert.NotContains(t, rec.Body.String(), "rate table unavailable")
	require.Equal(t, 1, logs.FilterMessage("request failed").Len())

	calc.EXPECT().AnalyzeMarginalRate(gomock.Any()).Return(domain.MarginalRateAnalysis{}, domain.NewInputError("annual_income", "cannot be negative"))
	rec, env = do(t, h, http.MethodPost, "/api/tax/marginal-rate", `{"annual_income": 30000, "marital_status": "single"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Equal(t, []string{"cannot be negative"}, env.Errors["annual_income"])
}

func TestCompareForwardsLabeledScenarios(t *testing.T) {
	ctrl := gomock.NewController(t)
	calc := calculation.NewMockCalculator(ctrl)
	h := newTestHandler(calc)

	calc.EXPECT().Rates().Return(calculation.NewRateTable2025()).AnyTimes()
	calc.EXPECT().CompareScenarios(gomock.Any()).DoAndReturn(func(scenarios []domain.LabeledScenario) (domain.ComparisonResult, error) {
		require.Len(t, scenarios, 2)
		assert.Equal(t, "Mine", scenarios[0].Label)
		assert.Equal(t, "Scenario 2", scenarios[1].Label)
		assert.Equal(t, domain.Married, scenarios[1].Scenario.MaritalStatus)
		assertDecimal(t, "12000", *scenarios[1].Scenario.SpouseIncome)
		return domain.ComparisonResult{Scenarios: []domain.ScenarioResult{}}, nil
	})

	body := `{"scenarios": [
		{"label": "Mine", "annual_income": 30000, "marital_status": "single"},
		{"annual_income": 40000, "marital_status": "married", "spouse_income": 12000}
	]}`
	rec, _ := do(t, h, http.MethodPost, "/api/tax/compare", body)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestCORSPreflight(t *testing.T) {
	h := WithCORS(newTestHandler(calculation.NewEngine2025()), nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/tax/calculate", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), http.MethodPost)
}

func TestRequestLogging(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	h := WithRequestLogging(newTestHandler(calculation.NewEngine2025()), zap.New(core))

	req := httptest.NewRequest(http.MethodPost, "/api/tax/calculate", bytes.NewBufferString(`{"annual_income": 1, "marital_status": "married"}`))
	h.ServeHTTP(httptest.NewRecorder(), req)

	entries := logs.FilterMessage("request").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "/api/tax/calculate", fields["path"])
	assert.Equal(t, int64(http.StatusUnprocessableEntity), fields["status"])
}
