package api

import (
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/shopspring/decimal"
)

func init() {
	// Amounts and rates go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true
}

// Response is the envelope of every successful API reply.
type Response struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      any    `json:"data,omitempty"`
	Meta      any    `json:"meta,omitempty"`
	Timestamp string `json:"timestamp"`
}

// ErrorResponse is the envelope of every failed API reply. Errors maps a request field to
// its validation messages and is omitted for non-validation failures.
type ErrorResponse struct {
	Success   bool                `json:"success"`
	Message   string              `json:"message"`
	Errors    map[string][]string `json:"errors,omitempty"`
	Timestamp string              `json:"timestamp"`
}

// CalculationMeta accompanies every computed result.
type CalculationMeta struct {
	CalculationID   string `json:"calculation_id"`
	CalculationDate string `json:"calculation_date"`
	TaxYear         int    `json:"tax_year"`
}

// RatesMeta accompanies the published rate table.
type RatesMeta struct {
	LastUpdated string `json:"last_updated"`
	Source      string `json:"source"`
	TaxYear     int    `json:"tax_year"`
}

// CalculationData is the payload of /api/tax/calculate.
type CalculationData struct {
	Annual  any `json:"annual"`
	Monthly any `json:"monthly"`
}

// HealthData is the payload of /health.
type HealthData struct {
	App      string            `json:"app"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
}

func writeJSON(w http.ResponseWriter, status int, body any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(body)
}

func timestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}
