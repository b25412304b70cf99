// Package server exposes the loan evaluation engine as a JSON API.
package server

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/cors"
	"github.com/srivastava-utkarsh/car-loan-planner/internal/cache"
	"github.com/srivastava-utkarsh/car-loan-planner/internal/config"
	"github.com/srivastava-utkarsh/car-loan-planner/internal/planner"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/adapters"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/affordability"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/finance"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/loans"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/mathutil"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/optimization"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/output"
	"go.uber.org/zap"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	store       cache.Cache
	cacheTTL    time.Duration
	cacheName   string
}

// NewHandler constructs the HTTP handler that serves the evaluation API.
// store may be nil to disable response caching.
func NewHandler(logger *zap.Logger, cfg *Config, version string, store cache.Cache) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg == nil {
		cfg, _ = LoadConfig("")
	}

	maxBodySize := cfg.BodySizeBytes()
	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	cacheName := cache.BackendNone
	if store != nil {
		cacheName = cfg.Cache.Backend
	}

	h := &handler{
		logger:      logger,
		maxBodySize: maxBodySize,
		version:     trimmedVersion,
		store:       store,
		cacheTTL:    cfg.CacheTTL(),
		cacheName:   cacheName,
	}

	mux := http.NewServeMux()

	// Loan evaluation endpoint (baseline, scenario, optional solver)
	mux.HandleFunc("/api/loan/evaluate", h.handleEvaluate)

	// Standalone 20/4/10 affordability check
	mux.HandleFunc("/api/affordability/check", h.handleAffordability)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Liveness endpoint
	mux.HandleFunc("/api/healthz", h.handleHealthz)

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	})
	return c.Handler(mux)
}

type evaluateRequest struct {
	Loan          config.LoanConfig           `json:"loan"`
	Prepayment    *config.PrepaymentConfig    `json:"prepayment,omitempty"`
	Solve         *config.SolverConfig        `json:"solve,omitempty"`
	Affordability *config.AffordabilityConfig `json:"affordability,omitempty"`
	StartDate     string                      `json:"startDate,omitempty"`
	Compare       bool                        `json:"compareStrategies,omitempty"`
}

type evaluateResponse struct {
	Baseline      planner.SimulationResult    `json:"baseline"`
	Result        planner.SimulationResult    `json:"result"`
	Comparison    *planner.StrategyComparison `json:"comparison,omitempty"`
	Solver        *optimization.Summary       `json:"solver,omitempty"`
	Affordability *affordabilityVerdict       `json:"affordability,omitempty"`
	Costs         *ownershipCosts             `json:"costs,omitempty"`
	Split         *costSplit                  `json:"split,omitempty"`
	CSV           string                      `json:"csv"`
	Warnings      []string                    `json:"warnings,omitempty"`
	Duration      string                      `json:"duration"`
}

type affordabilityVerdict struct {
	DownPaymentOK      bool    `json:"downPaymentOk"`
	TenureOK           bool    `json:"tenureOk"`
	ExpenseRatioOK     bool    `json:"expenseRatioOk"`
	Overall            bool    `json:"overall"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	ExpensePercent     float64 `json:"expensePercent"`
}

type ownershipCosts struct {
	EMI                float64 `json:"emi"`
	Fuel               float64 `json:"fuel"`
	Insurance          float64 `json:"insurance"`
	Maintenance        float64 `json:"maintenance"`
	MonthlyOutgo       float64 `json:"monthlyOutgo"`
	EMIPercent         float64 `json:"emiPercent"`
	FuelPercent        float64 `json:"fuelPercent"`
	InsurancePercent   float64 `json:"insurancePercent"`
	MaintenancePercent float64 `json:"maintenancePercent"`
}

// costSplit shows how the all-in purchase cost divides between the down
// payment, the financed principal, and the interest charged on it.
type costSplit struct {
	DownPayment        float64 `json:"downPayment"`
	Principal          float64 `json:"principal"`
	Interest           float64 `json:"interest"`
	Total              float64 `json:"total"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	PrincipalPercent   float64 `json:"principalPercent"`
	InterestPercent    float64 `json:"interestPercent"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	requestID := uuid.NewString()
	op := "server.handleEvaluate"

	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}

	var req evaluateRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	cacheKey := ""
	cacheStatus := ""
	if h.store != nil {
		digest := sha256.Sum256(body)
		cacheKey = "evaluate:" + hex.EncodeToString(digest[:])
		cacheStatus = "MISS"
		if cached, hit := h.store.Get(r.Context(), cacheKey); hit {
			h.logger.Debug("served evaluation from cache",
				zap.String("op", op),
				zap.String("requestId", requestID),
			)
			h.writeRawJSON(w, requestID, "HIT", cached)
			return
		}
	}

	resp, status, errMsg := h.runEvaluation(req)
	if errMsg != "" {
		h.respondErrorWithOp(w, status, errMsg, op)
		return
	}
	resp.Duration = time.Since(start).String()

	payload, err := json.Marshal(resp)
	if err != nil {
		h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode response: %v", err), op)
		return
	}

	if h.store != nil {
		if err := h.store.Set(r.Context(), cacheKey, string(payload), h.cacheTTL); err != nil {
			h.logger.Warn("failed to cache evaluation",
				zap.String("op", op),
				zap.Error(err),
			)
		}
	}

	h.logger.Info("evaluation computed",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.String("loan", req.Loan.Name),
		zap.Int("finalTenureMonths", resp.Result.FinalTenureMonths),
		zap.Duration("duration", time.Since(start)),
	)
	h.writeRawJSON(w, requestID, cacheStatus, string(payload))
}

// runEvaluation evaluates the request the same way the CLI evaluates one
// configured scenario against the baseline. It returns a non-empty message
// and status on failure.
func (h *handler) runEvaluation(req evaluateRequest) (*evaluateResponse, int, string) {
	conf := &config.Configuration{
		Loan:          req.Loan,
		Affordability: req.Affordability,
		StartDate:     req.StartDate,
		Scenarios: []config.Scenario{
			{
				Name:       "request",
				Active:     true,
				Prepayment: req.Prepayment,
				Solve:      req.Solve,
			},
		},
	}

	warnings := conf.ValidateConfiguration()

	reports, err := planner.EvaluateScenarios(h.logger, conf)
	if err != nil {
		return nil, http.StatusBadRequest, err.Error()
	}

	resp := &evaluateResponse{
		Baseline: reports[0].Result,
		Result:   reports[1].Result,
		Solver:   reports[1].Solver,
		Split:    buildSplit(req.Loan, reports[1].Result.TotalInterestPaid),
		CSV:      output.CsvString(reports),
		Warnings: warnings,
	}

	if req.Compare && req.Prepayment != nil {
		if p, perr := planner.NewPlanner(h.logger, conf.EffectiveStartDate()); perr == nil {
			plan := adapters.PrepaymentToPlan(req.Prepayment)
			comparison := p.CompareStrategies(adapters.LoanToInputs(req.Loan), *plan)
			resp.Comparison = &comparison
		}
	}

	if req.Affordability != nil {
		verdict := affordability.Check(adapters.AffordabilityToInputs(req.Loan, resp.Result.EMI, req.Affordability))
		resp.Affordability = buildVerdict(verdict)
		resp.Costs = buildCosts(h.logger, resp.Result.EMI, req.Affordability)
	}

	return resp, http.StatusOK, ""
}

type affordabilityRequest struct {
	Loan          config.LoanConfig          `json:"loan"`
	EMI           float64                    `json:"emi,omitempty"`
	Affordability config.AffordabilityConfig `json:"affordability"`
}

type affordabilityResponse struct {
	EMI      float64              `json:"emi"`
	Verdict  affordabilityVerdict `json:"verdict"`
	Costs    ownershipCosts       `json:"costs"`
	Warnings []string             `json:"warnings,omitempty"`
	Duration string               `json:"duration"`
}

func (h *handler) handleAffordability(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	requestID := uuid.NewString()
	op := "server.handleAffordability"

	body, ok := h.readBody(w, r, op)
	if !ok {
		return
	}

	var req affordabilityRequest
	if err := json.Unmarshal(body, &req); err != nil {
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	afford := req.Affordability
	conf := &config.Configuration{Loan: req.Loan, Affordability: &afford}
	warnings := conf.ValidateConfiguration()

	emi := req.EMI
	if emi <= 0 {
		emi = mathutil.RoundUnit(loans.CalculateEMI(
			req.Loan.Principal(), req.Loan.InterestRate, req.Loan.TenureYears))
	}

	verdict := affordability.Check(adapters.AffordabilityToInputs(req.Loan, emi, &afford))

	resp := affordabilityResponse{
		EMI:      emi,
		Verdict:  *buildVerdict(verdict),
		Costs:    *buildCosts(h.logger, emi, &afford),
		Warnings: warnings,
		Duration: time.Since(start).String(),
	}

	h.logger.Info("affordability checked",
		zap.String("op", op),
		zap.String("requestId", requestID),
		zap.Bool("overall", verdict.Overall),
		zap.Duration("duration", time.Since(start)),
	)

	w.Header().Set("X-Request-Id", requestID)
	h.writeJSON(w, http.StatusOK, resp)
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

type healthResponse struct {
	Status    string `json:"status"`
	Service   string `json:"service"`
	Version   string `json:"version"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

func (h *handler) handleHealthz(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, healthResponse{
		Status:    "ok",
		Service:   "car-loan-planner",
		Version:   h.version,
		Cache:     h.cacheName,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}

// readBody drains the request body under the configured size limit. It writes
// the error response itself and reports false when the read fails.
func (h *handler) readBody(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	if h.maxBodySize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)
	}
	body, err := io.ReadAll(r.Body)
	if err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return nil, false
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to read request: %v", err), op)
		return nil, false
	}
	return body, true
}

func buildVerdict(v affordability.Verdict) *affordabilityVerdict {
	return &affordabilityVerdict{
		DownPaymentOK:      v.DownPaymentOK,
		TenureOK:           v.TenureOK,
		ExpenseRatioOK:     v.ExpenseRatioOK,
		Overall:            v.Overall,
		DownPaymentPercent: v.DownPaymentPercent,
		ExpensePercent:     v.ExpensePercent,
	}
}

func buildSplit(loan config.LoanConfig, totalInterest float64) *costSplit {
	split := finance.CostSplit(loan.Principal(), totalInterest, loan.DownPayment)
	return &costSplit{
		DownPayment:        split.DownPayment,
		Principal:          split.Principal,
		Interest:           split.Interest,
		Total:              split.Total,
		DownPaymentPercent: split.DownPaymentPercent,
		PrincipalPercent:   split.PrincipalPercent,
		InterestPercent:    split.InterestPercent,
	}
}

func buildCosts(logger *zap.Logger, emi float64, afford *config.AffordabilityConfig) *ownershipCosts {
	costs := finance.NewCostProcessor(logger).MonthlyOwnershipCosts(finance.CostInputs{
		EMI:                emi,
		FuelCost:           afford.FuelCost(),
		InsuranceAnnual:    afford.InsuranceAnnual,
		MaintenanceMonthly: afford.MaintenanceMonthly,
	})
	return &ownershipCosts{
		EMI:                costs.EMI,
		Fuel:               costs.Fuel,
		Insurance:          costs.Insurance,
		Maintenance:        costs.Maintenance,
		MonthlyOutgo:       costs.MonthlyOutgo,
		EMIPercent:         costs.EMIPercent,
		FuelPercent:        costs.FuelPercent,
		InsurancePercent:   costs.InsurancePercent,
		MaintenancePercent: costs.MaintenancePercent,
	}
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}

// writeRawJSON writes an already-encoded response body, tagging it with the
// request id and, when caching is enabled, the cache disposition.
func (h *handler) writeRawJSON(w http.ResponseWriter, requestID, cacheStatus, payload string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Request-Id", requestID)
	if cacheStatus != "" {
		w.Header().Set("X-Cache", cacheStatus)
	}
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
