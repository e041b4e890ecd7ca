package api

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/rpgo/tax-calculator/internal/calculation"
	"github.com/rpgo/tax-calculator/internal/config"
	"github.com/rpgo/tax-calculator/internal/domain"
	"github.com/rpgo/tax-calculator/pkg/dateutil"
)

// MaxRequestBodyBytes bounds the size of a JSON request body.
const MaxRequestBodyBytes = 1 << 20

// RatesSource is reported with the published rate table.
const RatesSource = "Revenue.ie - Irish Tax and Customs"

// Version is reported by the health check.
var Version = "dev"

// Handler serves the tax endpoints on top of a Calculator.
type Handler struct {
	calc   calculation.Calculator
	parser *config.InputParser
	logger *zap.Logger
	now    func() time.Time
	newID  func() string
}

// HandlerOption customises a Handler.
type HandlerOption func(*Handler)

// WithClock replaces the time source used for timestamps and meta.
func WithClock(now func() time.Time) HandlerOption {
	return func(h *Handler) { h.now = now }
}

// WithIDGenerator replaces the generator of calculation ids.
func WithIDGenerator(newID func() string) HandlerOption {
	return func(h *Handler) { h.newID = newID }
}

// NewHandler creates a Handler. A nil logger disables logging.
func NewHandler(calc calculation.Calculator, logger *zap.Logger, opts ...HandlerOption) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		calc:   calc,
		parser: config.NewInputParser(),
		logger: logger,
		now:    time.Now,
		newID:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Routes returns the API routes.
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/tax/calculate", h.method(http.MethodPost, h.Calculate))
	mux.HandleFunc("/api/tax/rates", h.method(http.MethodGet, h.Rates))
	mux.HandleFunc("/api/tax/marginal-rate", h.method(http.MethodPost, h.MarginalRate))
	mux.HandleFunc("/api/tax/compare", h.method(http.MethodPost, h.Compare))
	mux.HandleFunc("/health", h.method(http.MethodGet, h.Health))
	return mux
}

func (h *Handler) method(allowed string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != allowed {
			w.Header().Set("Allow", allowed)
			h.writeError(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
			return
		}
		next(w, r)
	}
}

// Calculate handles POST /api/tax/calculate.
func (h *Handler) Calculate(w http.ResponseWriter, r *http.Request) {
	var in domain.ScenarioInput
	if !h.decode(w, r, &in) {
		return
	}
	scenario, err := h.parser.ToScenario(in)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	result, err := calculation.Calculate(h.calc, scenario)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, "Tax calculation completed successfully",
		CalculationData{Annual: result.Annual, Monthly: result.Monthly}, h.calculationMeta())
}

// Rates handles GET /api/tax/rates.
func (h *Handler) Rates(w http.ResponseWriter, r *http.Request) {
	rates := h.calc.Rates()
	h.writeSuccess(w, "Tax rates and bands retrieved successfully", rates, RatesMeta{
		LastUpdated: dateutil.DateString(dateutil.TaxYearStart(rates.Year)),
		Source:      RatesSource,
		TaxYear:     rates.Year,
	})
}

// MarginalRate handles POST /api/tax/marginal-rate.
func (h *Handler) MarginalRate(w http.ResponseWriter, r *http.Request) {
	var in domain.ScenarioInput
	if !h.decode(w, r, &in) {
		return
	}
	scenario, err := h.parser.ToScenario(in)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	analysis, err := h.calc.AnalyzeMarginalRate(scenario)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, "Marginal tax rate calculated successfully", analysis, h.calculationMeta())
}

// Compare handles POST /api/tax/compare.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	var req config.ScenarioFile
	if !h.decode(w, r, &req) {
		return
	}
	scenarios, err := h.parser.ToLabeledScenarios(req.Scenarios)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	comparison, err := h.calc.CompareScenarios(scenarios)
	if err != nil {
		h.writeFailure(w, r, err)
		return
	}

	h.writeSuccess(w, "Tax comparison completed successfully", comparison, h.calculationMeta())
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, "System is healthy", HealthData{
		App:     "taxcalc",
		Version: Version,
		Services: map[string]string{
			"calculator": "running",
			"rates":      fmt.Sprintf("%d", h.calc.Rates().Year),
		},
	}, nil)
}

// decode reads a JSON body into out, answering 400 itself when the body is unusable.
func (h *Handler) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxRequestBodyBytes))
	if err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return false
	}
	if err := json.Unmarshal(body, out); err != nil {
		h.writeError(w, http.StatusBadRequest, "Invalid request body: "+err.Error(), nil)
		return false
	}
	return true
}

func (h *Handler) calculationMeta() CalculationMeta {
	return CalculationMeta{
		CalculationID:   h.newID(),
		CalculationDate: timestamp(h.now()),
		TaxYear:         h.calc.Rates().Year,
	}
}

func (h *Handler) writeSuccess(w http.ResponseWriter, message string, data, meta any) {
	err := writeJSON(w, http.StatusOK, Response{
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
		Timestamp: timestamp(h.now()),
	})
	if err != nil {
		h.logger.Warn("failed to write response", zap.Error(err))
	}
}

// writeFailure maps an error to a status: invalid input is 422, anything else is 500.
func (h *Handler) writeFailure(w http.ResponseWriter, r *http.Request, err error) {
	var ve domain.ValidationErrors
	var ie *domain.InputError
	switch {
	case errors.As(err, &ve):
		h.writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.", ve.Fields())
	case errors.As(err, &ie):
		h.writeError(w, http.StatusUnprocessableEntity, "The given data was invalid.", map[string][]string{ie.Field: {ie.Message}})
	case errors.Is(err, domain.ErrInvalidInput):
		h.writeError(w, http.StatusUnprocessableEntity, err.Error(), nil)
	default:
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
		h.writeError(w, http.StatusInternalServerError, "An unexpected error occurred", nil)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, message string, fields map[string][]string) {
	err := writeJSON(w, status, ErrorResponse{
		Success:   false,
		Message:   message,
		Errors:    fields,
		Timestamp: timestamp(h.now()),
	})
	if err != nil {
		h.logger.Warn("failed to write error response", zap.Error(err))
	}
}
