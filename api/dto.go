/*
dto.go - Data Transfer Objects for API requests and responses

PURPOSE:
  Defines the JSON structures for API communication. These types decouple
  the internal domain model (decimal-typed, estimator package) from the
  external API contract:
  - Field renaming without breaking clients
  - API-specific validation
  - Version evolution

NAMING CONVENTION:
  - *DTO: Response types returned to clients
  - *Request: Request body types from clients
  - *Response: Complex response wrappers

MONEY REPRESENTATION:
  Responses carry plain JSON numbers (whole-dollar figures are already
  rounded upstream) plus pre-formatted display strings where the funnel
  needs them.

SEE ALSO:
  - handlers.go: Uses these types
  - estimator/types.go: Domain counterparts
*/
package api

import (
	"github.com/momentum/estimator-engine/estimator"
	"github.com/momentum/estimator-engine/settings"
)

// =============================================================================
// REQUEST TYPES
// =============================================================================

// EstimateRequest carries the already-materialized bureau accounts plus the
// optional budget figures. Accounts arrive in raw bureau shape; the server
// normalizes them.
type EstimateRequest struct {
	Accounts        []estimator.RawAccount `json:"accounts"`
	MonthlyIncome   *float64               `json:"monthlyIncome,omitempty"`
	MonthlyExpenses *float64               `json:"monthlyExpenses,omitempty"`
	APR             *float64               `json:"apr,omitempty"`
	ProgramType     string                 `json:"programType,omitempty"` // default "standard"
}

// SaveNarrativeCodesRequest replaces the whole rule set.
type SaveNarrativeCodesRequest struct {
	Rules   []estimator.NarrativeCodeRule `json:"rules"`
	SavedBy string                        `json:"savedBy,omitempty"`
}

// =============================================================================
// RESPONSE TYPES
// =============================================================================

// AccountSettlementDTO is one line of the settlement breakdown.
type AccountSettlementDTO struct {
	Creditor         string  `json:"creditor"`
	Balance          float64 `json:"balance"`
	SettlementRate   float64 `json:"settlementRate"` // fraction
	SettlementAmount float64 `json:"settlementAmount"`
	RateSource       string  `json:"rateSource"` // creditor | tier | global
}

// SettlementPlanDTO mirrors estimator.SettlementPlan for the wire.
type SettlementPlanDTO struct {
	TotalDebt    float64 `json:"totalDebt"`
	AccountCount int     `json:"accountCount"`

	BelowMinimum    bool    `json:"belowMinimum,omitempty"`
	MinimumRequired float64 `json:"minimumRequired,omitempty"`

	AccountSettlements []AccountSettlementDTO `json:"accountSettlements,omitempty"`
	TotalSettlement    float64                `json:"totalSettlement,omitempty"`
	FeePercentage      float64                `json:"feePercentage,omitempty"`
	ProgramFee         float64                `json:"programFee,omitempty"`
	TotalCost          float64                `json:"totalCost,omitempty"`
	TermMonths         int                    `json:"termMonths,omitempty"`
	MonthlyPayment     float64                `json:"monthlyPayment,omitempty"`

	// proposedMonthlyPayment is monthlyPayment plus the monthly legal
	// processing fee; it is the figure the funnel quotes.
	LegalProcessingFee     float64 `json:"legalProcessingFee,omitempty"`
	ProposedMonthlyPayment float64 `json:"proposedMonthlyPayment,omitempty"`

	IsOptimized            bool    `json:"isOptimized,omitempty"`
	OriginalMonthlyPayment float64 `json:"originalMonthlyPayment,omitempty"`
	OriginalTermMonths     int     `json:"originalTermMonths,omitempty"`
	ExcessLiquidity        float64 `json:"excessLiquidity,omitempty"`
}

// CurrentPathDTO mirrors estimator.CurrentPathPlan.
type CurrentPathDTO struct {
	MonthlyPayment float64 `json:"monthlyPayment"`
	TermMonths     int     `json:"termMonths"`
	TotalCost      float64 `json:"totalCost"`
}

// ComparisonDTO is the side-by-side summary the funnel renders.
type ComparisonDTO struct {
	TotalSavings        float64 `json:"totalSavings"`
	SavingsPercent      float64 `json:"savingsPercent"`
	MonthlyDifference   float64 `json:"monthlyDifference"`
	MonthsSaved         int     `json:"monthsSaved"`
	TotalSavingsDisplay string  `json:"totalSavingsDisplay"`
}

// EstimateResponse is the full estimate payload.
type EstimateResponse struct {
	Status      string             `json:"status"` // no_eligible_debt | below_minimum | qualified | optimized
	ProgramType string             `json:"programType"`
	Plan        *SettlementPlanDTO `json:"plan,omitempty"`
	CurrentPath *CurrentPathDTO    `json:"currentPath,omitempty"`
	Comparison  *ComparisonDTO     `json:"comparison,omitempty"`
}

// NarrativeCodesDTO wraps the rule set with its provenance.
type NarrativeCodesDTO struct {
	Rules  []estimator.NarrativeCodeRule `json:"rules"`
	Seeded bool                          `json:"seeded"` // true when serving built-in defaults
}

// ImportResultDTO summarizes a creditor CSV import.
type ImportResultDTO struct {
	CreditorsImported int `json:"creditorsImported"`
	TermsDetected     int `json:"termsDetected"`
}

// ErrorResponse is the standard error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details any    `json:"details,omitempty"`
}

// =============================================================================
// CONVERSION HELPERS
// =============================================================================

func toPlanDTO(plan *estimator.SettlementPlan) *SettlementPlanDTO {
	if plan == nil {
		return nil
	}
	dto := &SettlementPlanDTO{
		TotalDebt:       plan.TotalDebt.InexactFloat64(),
		AccountCount:    plan.AccountCount,
		BelowMinimum:    plan.BelowMinimum,
		MinimumRequired: plan.MinimumRequired.InexactFloat64(),
	}
	if plan.BelowMinimum {
		return dto
	}

	dto.AccountSettlements = make([]AccountSettlementDTO, len(plan.AccountSettlements))
	for i, acc := range plan.AccountSettlements {
		dto.AccountSettlements[i] = AccountSettlementDTO{
			Creditor:         acc.Creditor,
			Balance:          acc.Balance.InexactFloat64(),
			SettlementRate:   acc.SettlementRate.InexactFloat64(),
			SettlementAmount: acc.SettlementAmount.InexactFloat64(),
			RateSource:       string(acc.RateSource),
		}
	}
	dto.TotalSettlement = plan.TotalSettlement.InexactFloat64()
	dto.FeePercentage = plan.FeePercentage.InexactFloat64()
	dto.ProgramFee = plan.ProgramFee.InexactFloat64()
	dto.TotalCost = plan.TotalCost.InexactFloat64()
	dto.TermMonths = plan.TermMonths
	dto.MonthlyPayment = plan.MonthlyPayment.InexactFloat64()
	dto.LegalProcessingFee = plan.LegalProcessingFee.InexactFloat64()
	dto.ProposedMonthlyPayment = plan.ProposedMonthlyPayment.InexactFloat64()
	dto.IsOptimized = plan.IsOptimized
	dto.OriginalMonthlyPayment = plan.OriginalMonthlyPayment.InexactFloat64()
	dto.OriginalTermMonths = plan.OriginalTermMonths
	dto.ExcessLiquidity = plan.ExcessLiquidity.InexactFloat64()
	return dto
}

func toCurrentPathDTO(cp *estimator.CurrentPathPlan) *CurrentPathDTO {
	if cp == nil {
		return nil
	}
	return &CurrentPathDTO{
		MonthlyPayment: cp.MonthlyPayment.InexactFloat64(),
		TermMonths:     cp.TermMonths,
		TotalCost:      cp.TotalCost.InexactFloat64(),
	}
}

func toComparisonDTO(cmp estimator.Comparison) *ComparisonDTO {
	return &ComparisonDTO{
		TotalSavings:        cmp.TotalSavings.InexactFloat64(),
		SavingsPercent:      cmp.SavingsPercent.InexactFloat64(),
		MonthlyDifference:   cmp.MonthlyDifference.InexactFloat64(),
		MonthsSaved:         cmp.MonthsSaved,
		TotalSavingsDisplay: estimator.FormatCurrency(cmp.TotalSavings),
	}
}

func normalizeProgramType(p string) string {
	switch p {
	case settings.ProgramMomentum:
		return settings.ProgramMomentum
	default:
		return settings.ProgramStandard
	}
}
