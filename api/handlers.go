/*
handlers.go - HTTP API handlers for the smart-estimator engine

PURPOSE:
  Exposes the estimation engine and its admin configuration via REST.
  Handles HTTP request/response, JSON serialization, and delegates to the
  estimator and settings packages.

ENDPOINTS:
  Estimation:
    POST   /api/estimate                      Compute plan + baseline + comparison

  Admin:
    GET    /api/admin/narrative-codes         Current rule set (seeded on first read)
    PUT    /api/admin/narrative-codes         Full-snapshot replace
    GET    /api/admin/calculator-settings     Current settings
    POST   /api/admin/calculator-settings     Full-snapshot save
    PUT    /api/admin/calculator-settings     Partial section merge
    POST   /api/admin/creditor-rates/import   CSV rate-table import
    GET    /api/admin/audit                   Audit log, newest first

REQUEST FLOW:
  1. Parse HTTP request
  2. Validate input
  3. Load configuration snapshots (defaults when nothing saved yet)
  4. Call domain logic
  5. Serialize response

ERROR HANDLING:
  Errors are returned as JSON with appropriate HTTP status:
  - 400: Validation errors, invalid input
  - 422: Configuration-integrity failures (gapped tier table)
  - 500: Internal errors

SEE ALSO:
  - dto.go: Request/response data structures
  - server.go: Router setup and middleware
*/
package api

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/momentum/estimator-engine/estimator"
	"github.com/momentum/estimator-engine/rules"
	"github.com/momentum/estimator-engine/settings"
)

// =============================================================================
// HANDLER CONTEXT
// =============================================================================

// Handler holds all dependencies for HTTP handlers.
type Handler struct {
	Repo  settings.Repository
	Audit settings.AuditLog // may be nil when the repository has no audit support
}

// NewHandler creates a new handler. audit may be nil.
func NewHandler(repo settings.Repository, audit settings.AuditLog) *Handler {
	return &Handler{Repo: repo, Audit: audit}
}

// loadSettings returns the saved settings document, or the shipped defaults
// when nothing has been saved yet.
func (h *Handler) loadSettings(r *http.Request) (settings.CalculatorSettings, error) {
	doc, err := h.Repo.LoadSettings(r.Context())
	if err != nil {
		return settings.CalculatorSettings{}, err
	}
	if doc == nil {
		return settings.Default(), nil
	}
	return *doc, nil
}

// loadRules returns the saved rule set, or the seeded catalogue when
// nothing has been saved yet. The second return reports the seeded case.
func (h *Handler) loadRules(r *http.Request) ([]estimator.NarrativeCodeRule, bool, error) {
	saved, err := h.Repo.LoadNarrativeCodes(r.Context())
	if err != nil {
		return nil, false, err
	}
	if saved == nil {
		return rules.DefaultRuleSet(), true, nil
	}
	return saved, false, nil
}

// =============================================================================
// ESTIMATION
// =============================================================================

// Estimate runs the full pipeline: normalize -> filter -> plan -> baseline
// -> comparison.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var req EstimateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if len(req.Accounts) == 0 {
		writeError(w, http.StatusBadRequest, "No accounts supplied", nil)
		return
	}

	doc, err := h.loadSettings(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	ruleSet, _, err := h.loadRules(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load narrative codes", err)
		return
	}

	programType := normalizeProgramType(req.ProgramType)
	constants := doc.ConstantsFor(programType)

	accounts := estimator.NormalizeAccounts(req.Accounts)
	eligible := estimator.FilterEligible(accounts, ruleSet)

	resp := EstimateResponse{
		Status:      string(estimator.StatusNoEligibleDebt),
		ProgramType: programType,
	}
	if len(eligible.EligibleAccounts) == 0 {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	calc := estimator.PlanCalculator{
		Tiers:     doc.TiersFor(programType),
		Rates:     doc.RateTable(),
		Constants: constants,
	}

	// Term optimization needs both budget figures and the business switch.
	var budget *estimator.Budget
	if doc.BusinessRules.EnableTermOptimization && req.MonthlyIncome != nil && req.MonthlyExpenses != nil {
		budget = &estimator.Budget{
			MonthlyIncome:   decimal.NewFromFloat(*req.MonthlyIncome),
			MonthlyExpenses: decimal.NewFromFloat(*req.MonthlyExpenses),
		}
	}

	plan, err := calc.Calculate(eligible.EligibleAccounts, budget)
	if err != nil {
		if estimator.IsConfigError(err) {
			writeError(w, http.StatusUnprocessableEntity, "Tier configuration cannot price this debt total", err)
			return
		}
		writeError(w, http.StatusInternalServerError, "Calculation failed", err)
		return
	}

	apr := decimal.Zero
	if req.APR != nil {
		apr = decimal.NewFromFloat(*req.APR)
	}
	currentPath := estimator.CurrentPathCalculator{Constants: constants}.
		Calculate(eligible.TotalDebt, apr)

	cmp := estimator.Compare(plan, &currentPath)

	resp.Status = string(cmp.Status)
	resp.Plan = toPlanDTO(plan)
	resp.CurrentPath = toCurrentPathDTO(&currentPath)
	if cmp.Status == estimator.StatusQualified || cmp.Status == estimator.StatusOptimized {
		resp.Comparison = toComparisonDTO(cmp)
	}
	writeJSON(w, http.StatusOK, resp)
}

// =============================================================================
// NARRATIVE CODE ADMIN
// =============================================================================

// GetNarrativeCodes returns the current rule set, seeding the built-in
// catalogue when no snapshot exists yet.
func (h *Handler) GetNarrativeCodes(w http.ResponseWriter, r *http.Request) {
	ruleSet, seeded, err := h.loadRules(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load narrative codes", err)
		return
	}
	writeJSON(w, http.StatusOK, NarrativeCodesDTO{Rules: rules.Sorted(ruleSet), Seeded: seeded})
}

// PutNarrativeCodes replaces the whole rule set.
func (h *Handler) PutNarrativeCodes(w http.ResponseWriter, r *http.Request) {
	var req SaveNarrativeCodesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := rules.Validate(req.Rules); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid rule set", err)
		return
	}
	if err := h.Repo.SaveNarrativeCodes(r.Context(), req.Rules, req.SavedBy); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save narrative codes", err)
		return
	}
	writeJSON(w, http.StatusOK, NarrativeCodesDTO{Rules: rules.Sorted(req.Rules)})
}

// =============================================================================
// CALCULATOR SETTINGS ADMIN
// =============================================================================

// GetCalculatorSettings returns the current settings document.
func (h *Handler) GetCalculatorSettings(w http.ResponseWriter, r *http.Request) {
	doc, err := h.loadSettings(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// PostCalculatorSettings saves a full settings snapshot.
func (h *Handler) PostCalculatorSettings(w http.ResponseWriter, r *http.Request) {
	var doc settings.CalculatorSettings
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}
	if err := doc.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid settings", err)
		return
	}
	if err := h.Repo.SaveSettings(r.Context(), doc, actorFrom(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// PutCalculatorSettings merges the supplied top-level sections into the
// current document, then saves the result as a full snapshot.
func (h *Handler) PutCalculatorSettings(w http.ResponseWriter, r *http.Request) {
	var partial map[string]json.RawMessage
	if err := json.NewDecoder(r.Body).Decode(&partial); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body", err)
		return
	}

	doc, err := h.loadSettings(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	if err := mergeSections(&doc, partial); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid settings section", err)
		return
	}
	if err := doc.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, "Merged settings invalid", err)
		return
	}
	if err := h.Repo.SaveSettings(r.Context(), doc, actorFrom(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// mergeSections overlays recognized top-level sections onto the document.
func mergeSections(doc *settings.CalculatorSettings, partial map[string]json.RawMessage) error {
	targets := map[string]any{
		"debtTiers":     &doc.DebtTiers,
		"settlement":    &doc.Settlement,
		"feeStructure":  &doc.FeeStructure,
		"businessRules": &doc.BusinessRules,
		"creditorData":  &doc.CreditorData,
	}
	for section, raw := range partial {
		target, ok := targets[section]
		if !ok {
			return fmt.Errorf("unknown settings section %q", section)
		}
		if err := json.Unmarshal(raw, target); err != nil {
			return fmt.Errorf("section %q: %w", section, err)
		}
	}
	return nil
}

// =============================================================================
// CREDITOR RATE IMPORT
// =============================================================================

// ImportCreditorRates parses a CSV body into the creditor rate table and
// saves the updated settings snapshot.
func (h *Handler) ImportCreditorRates(w http.ResponseWriter, r *http.Request) {
	reader := csv.NewReader(r.Body)
	reader.FieldsPerRecord = -1 // spreadsheet exports have ragged rows
	csvRows, err := reader.ReadAll()
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid CSV body", err)
		return
	}

	rates, err := settings.ParseCreditorCSV(csvRows)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to parse creditor rates", err)
		return
	}

	doc, err := h.loadSettings(r)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to load settings", err)
		return
	}
	doc.CreditorData.CreditorSettlementRates = rates
	doc.CreditorData.LastUpdated = time.Now().UTC().Format(time.RFC3339)

	if err := h.Repo.SaveSettings(r.Context(), doc, actorFrom(r)); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save settings", err)
		return
	}

	terms := map[string]bool{}
	for _, rr := range rates {
		for term := range rr {
			terms[term] = true
		}
	}
	writeJSON(w, http.StatusOK, ImportResultDTO{
		CreditorsImported: len(rates),
		TermsDetected:     len(terms),
	})
}

// =============================================================================
// AUDIT
// =============================================================================

// ListAudit returns recent audit entries, newest first.
func (h *Handler) ListAudit(w http.ResponseWriter, r *http.Request) {
	if h.Audit == nil {
		writeJSON(w, http.StatusOK, []settings.AuditEntry{})
		return
	}
	limit := 100
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			limit = n
		}
	}
	entries, err := h.Audit.ListAudit(r.Context(), limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to list audit entries", err)
		return
	}
	if entries == nil {
		entries = []settings.AuditEntry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

// =============================================================================
// HELPERS
// =============================================================================

// actorFrom extracts the acting admin identity. No auth layer exists yet;
// the header is trusted as-is.
func actorFrom(r *http.Request) string {
	return r.Header.Get("X-Admin-User")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string, err error) {
	resp := ErrorResponse{Error: msg}
	if err != nil {
		resp.Details = err.Error()
	}
	writeJSON(w, status, resp)
}
