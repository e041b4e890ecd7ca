package commands

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/tax-calculator/internal/config"
	"github.com/rpgo/tax-calculator/internal/domain"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func decodeReport(t *testing.T, out string) domain.TaxReport {
	t.Helper()
	var report domain.TaxReport
	require.NoError(t, json.Unmarshal([]byte(out), &report), out)
	return report
}

func TestCalculateConsole(t *testing.T) {
	out, _, err := run(t, "calculate", "--income", "50000")
	require.NoError(t, err)
	assert.Contains(t, out, "IRISH TAX SUMMARY 2025")
	assert.Contains(t, out, "Gross Income: €50,000.00 (single)")
	assert.Contains(t, out, "NetIncome=€39,654.00")
}

func TestCalculateJSONMarried(t *testing.T) {
	out, _, err := run(t, "calculate", "--income", "60000", "--status", "married", "--spouse-income", "25000", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.NotNil(t, report.Calculation)
	assert.Equal(t, domain.Married, report.Calculation.Annual.MaritalStatus)
	assert.True(t, decimal.NewFromInt(50134).Equal(report.Calculation.Annual.NetIncome), report.Calculation.Annual.NetIncome.String())
	assert.Nil(t, report.Marginal)
	assert.Nil(t, report.Comparison)
	assert.NotEmpty(t, report.Assumptions)
}

func TestCalculateRejectsBadInput(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"married without spouse income", []string{"--income", "30000", "--status", "married"}, "Spouse income is required"},
		{"single parent without children", []string{"--income", "30000", "--status", "single_parent"}, "requires having children"},
		{"not a number", []string{"--income", "lots"}, "invalid --income"},
		{"bad spouse income", []string{"--income", "1", "--status", "married", "--spouse-income", "x"}, "invalid --spouse-income"},
		{"unknown status", []string{"--income", "1", "--status", "widowed"}, "Marital status must be one of"},
		{"missing income", nil, "income"},
		{"unknown format", []string{"--income", "1", "--format", "pdf"}, "Try one of"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := run(t, append([]string{"calculate"}, tt.args...)...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestMarginal(t *testing.T) {
	out, _, err := run(t, "marginal", "--income", "43500", "--format", "json")
	require.NoError(t, err)

	report := decodeReport(t, out)
	require.NotNil(t, report.Marginal)
	assert.True(t, decimal.NewFromInt(372).Equal(report.Marginal.TaxOnNext1000))
	assert.True(t, decimal.NewFromInt(628).Equal(report.Marginal.NetFromNext1000))
	assert.Nil(t, report.Calculation)
}

func TestCompare(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "scenarios.yaml")
	require.NoError(t, os.WriteFile(file, []byte(`scenarios:
  - label: A
    annual_income: 30000
    marital_status: single
  - label: B
    annual_income: 60000
    marital_status: married
    spouse_income: 25000
`), 0o644))

	out, _, err := run(t, "compare", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "Recommended: B")

	_, _, err = run(t, "compare")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--file is required")
}

func TestCompareExampleRoundTrip(t *testing.T) {
	out, _, err := run(t, "compare", "--example")
	require.NoError(t, err)

	file := filepath.Join(t.TempDir(), "example.yaml")
	require.NoError(t, os.WriteFile(file, []byte(out), 0o644))

	loaded, err := config.NewInputParser().LoadScenarios(file)
	require.NoError(t, err)
	assert.Len(t, loaded.Scenarios, 4)

	out, _, err = run(t, "compare", "-f", file, "--format", "csv")
	require.NoError(t, err)
	assert.Equal(t, 5, len(strings.Split(strings.TrimSpace(out), "\n")), "header plus one row per scenario")
}

func TestRatesExportAndReload(t *testing.T) {
	out, _, err := run(t, "rates", "--format", "json")
	require.NoError(t, err)
	var rates domain.RateTable
	require.NoError(t, json.Unmarshal([]byte(out), &rates))
	assert.Equal(t, 2025, rates.Year)

	path := filepath.Join(t.TempDir(), "rates.yaml")
	_, stderr, err := run(t, "rates", "--export", path)
	require.NoError(t, err)
	assert.Contains(t, stderr, "Rate table for 2025 written to")

	// Raise the single band and check the alternate table is used end to end
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	edited := strings.Replace(string(data), "year: 2025", "year: 2026", 1)
	require.NotEqual(t, string(data), edited)
	require.NoError(t, os.WriteFile(path, []byte(edited), 0o644))

	out, _, err = run(t, "--rates", path, "calculate", "--income", "30000")
	require.NoError(t, err)
	assert.Contains(t, out, "IRISH TAX SUMMARY 2026")
}

func TestRatesRejectsBrokenTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("year: 2026\nusc_brackets: []\n"), 0o644))

	_, _, err := run(t, "--rates", path, "rates")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrAmbiguousConfiguration)

	_, _, err = run(t, "rates", "--format", "toml")
	require.Error(t, err)
}

func TestResolvePort(t *testing.T) {
	t.Setenv("PORT", "")
	assert.Equal(t, "8080", resolvePort(""))

	t.Setenv("PORT", "9090")
	assert.Equal(t, "9090", resolvePort(""))
	assert.Equal(t, "7000", resolvePort("7000"))
}

func TestRatesFileFlag(t *testing.T) {
	out, _, err := run(t, "rates", "--file", "../../../test/testdata/rates_2026.yaml", "--format", "json")
	require.NoError(t, err)

	var rates domain.RateTable
	require.NoError(t, json.Unmarshal([]byte(out), &rates))
	assert.Equal(t, 2026, rates.Year)
	assert.True(t, decimal.NewFromInt(46000).Equal(rates.BandThresholds.Single))
}
