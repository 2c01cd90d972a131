/*
Package estimator provides the core settlement-plan calculation engine.

PURPOSE:
  This package contains the pure business logic of the smart estimator:
  deciding which credit accounts count as settlement-eligible debt, resolving
  settlement rates through the creditor/tier/global fallback chain, and
  producing an itemized settlement plan alongside a "do nothing" baseline.

KEY CONCEPTS IN THIS FILE (types.go):
  - Account: A canonical credit-report trade line (creditor, balance, codes)
  - NarrativeCodeRule: Bureau code -> settlement-eligibility flag
  - DebtTier: Debt bracket determining fee, term, and fallback rate
  - CreditorRateTable: Creditor -> term months -> settlement percentage
  - SettlementPlan / CurrentPathPlan: Computed outputs
  - Constants: All tunable thresholds in one explicit structure

DESIGN PRINCIPLES:
  1. Purity: Every calculation is a function of its inputs. No ambient state,
     no storage access, no clocks. Re-running with the same inputs yields
     byte-identical output.
  2. Precision: Uses decimal.Decimal for all money and rate arithmetic.
  3. Explicit configuration: Fallback rates, buffers, and thresholds live in
     Constants so callers (and tests) can override them.

USAGE:
  calc := estimator.PlanCalculator{
      Tiers:     tiers,
      Rates:     rateTable,
      Constants: estimator.DefaultConstants(),
  }
  plan, err := calc.Calculate(eligible.Accounts, nil)

SEE ALSO:
  - eligibility.go: Account filtering
  - plan.go: Settlement plan calculation
  - currentpath.go: Minimum-payments baseline
  - rates.go: Settlement-rate resolution
*/
package estimator

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// ACCOUNT - Canonical credit-report trade line
// =============================================================================

// Account is a normalized trade line as consumed by the calculation core.
// Raw bureau records are converted to this shape by normalize.go before the
// engine ever sees them.
type Account struct {
	Creditor       string
	Balance        decimal.Decimal
	NarrativeCodes []string
}

// =============================================================================
// NARRATIVE CODE RULES - Which codes count toward eligible debt
// =============================================================================

// NarrativeCodeRule flags a bureau narrative code as settlement-eligible.
// Code is unique within a rule set. Administrators replace the whole rule
// set on save; rules are never patched incrementally.
type NarrativeCodeRule struct {
	Code                string `json:"code"`
	Description         string `json:"description"`
	IncludeInSettlement bool   `json:"includeInSettlement"`
}

// RuleSet indexes narrative-code rules for eligibility lookups.
type RuleSet struct {
	included map[string]bool
	size     int
}

// NewRuleSet builds a lookup index from a rule list. Later duplicates of the
// same code win, matching full-snapshot save semantics.
func NewRuleSet(rules []NarrativeCodeRule) RuleSet {
	included := make(map[string]bool, len(rules))
	for _, r := range rules {
		included[r.Code] = r.IncludeInSettlement
	}
	return RuleSet{included: included, size: len(included)}
}

// Includes reports whether the code is flagged for settlement inclusion.
func (rs RuleSet) Includes(code string) bool {
	return rs.included[code]
}

// Empty reports whether the rule set has no rules at all. An empty rule set
// fails closed: no account is eligible.
func (rs RuleSet) Empty() bool {
	return rs.size == 0
}

// =============================================================================
// DEBT TIERS - Fee, term, and fallback rate per debt bracket
// =============================================================================

// DebtTier is a debt-amount bracket. A total-debt figure matches the tier
// when MinAmount <= total <= MaxAmount. Tiers must be contiguous and
// non-overlapping; exactly one tier matches any supported debt total.
type DebtTier struct {
	MinAmount     decimal.Decimal
	MaxAmount     decimal.Decimal
	FeePercentage decimal.Decimal // percent of total debt, e.g. 15
	MaxTermMonths int
	// SettlementRate is the tier-level fallback settlement percentage used
	// when no creditor-specific rate exists. Zero means unset, which falls
	// through to Constants.GlobalFallbackRate.
	SettlementRate decimal.Decimal
	// LegalProcessingFee is the tier-level monthly legal fee in dollars.
	// Zero means unset, which falls through to Constants.LegalProcessingFee.
	LegalProcessingFee decimal.Decimal
}

// Contains reports whether the given debt total falls in this tier.
func (t DebtTier) Contains(totalDebt decimal.Decimal) bool {
	return totalDebt.GreaterThanOrEqual(t.MinAmount) && totalDebt.LessThanOrEqual(t.MaxAmount)
}

// CreditorRateTable maps normalized creditor name -> term months ->
// settlement percentage (0-100). Admin-configured, read-only during
// calculation.
type CreditorRateTable map[string]map[int]decimal.Decimal

// =============================================================================
// COMPUTED PLANS
// =============================================================================

// AccountSettlement is the per-account line item of a settlement plan.
type AccountSettlement struct {
	Creditor         string
	Balance          decimal.Decimal
	SettlementRate   decimal.Decimal // fraction, e.g. 0.58
	SettlementAmount decimal.Decimal
	RateSource       RateSource
}

// SettlementPlan is the fully itemized program estimate. It is ephemeral:
// computed per request, never persisted.
//
// Invariants (when not BelowMinimum):
//   TotalCost      = TotalSettlement + ProgramFee
//   MonthlyPayment = round(TotalCost / TermMonths) unless IsOptimized
type SettlementPlan struct {
	TotalDebt    decimal.Decimal
	AccountCount int

	// BelowMinimum marks the tagged "not enough eligible debt" outcome.
	// When set, only TotalDebt, AccountCount, and MinimumRequired carry
	// meaning; no payment plan is computed.
	BelowMinimum    bool
	MinimumRequired decimal.Decimal

	AccountSettlements []AccountSettlement
	TotalSettlement    decimal.Decimal
	FeePercentage      decimal.Decimal // percent, e.g. 15
	ProgramFee         decimal.Decimal
	TotalCost          decimal.Decimal
	TermMonths         int
	MonthlyPayment     decimal.Decimal

	// LegalProcessingFee is the monthly legal fee billed on top of the
	// settlement payment; ProposedMonthlyPayment is the consumer-facing
	// figure, MonthlyPayment plus that fee. The fee is not part of
	// TotalCost, which covers settlements and the program fee only.
	LegalProcessingFee     decimal.Decimal
	ProposedMonthlyPayment decimal.Decimal

	// Term optimization output. Populated only when a client budget was
	// supplied and the excess-liquidity threshold was met.
	IsOptimized            bool
	OriginalMonthlyPayment decimal.Decimal
	OriginalTermMonths     int
	ExcessLiquidity        decimal.Decimal
}

// CurrentPathPlan is the "keep making minimum payments" baseline, derived
// from total eligible debt alone via fixed scaling formulas.
type CurrentPathPlan struct {
	MonthlyPayment decimal.Decimal
	TermMonths     int
	TotalCost      decimal.Decimal
}

// Budget carries the optional income/expense figures that enable term
// optimization. Both fields must be supplied for optimization to run.
type Budget struct {
	MonthlyIncome   decimal.Decimal
	MonthlyExpenses decimal.Decimal
}

// Available returns income minus expenses.
func (b Budget) Available() decimal.Decimal {
	return b.MonthlyIncome.Sub(b.MonthlyExpenses)
}

// =============================================================================
// CONSTANTS - Every tunable threshold, in one place
// =============================================================================

// Constants collects the thresholds and fallbacks that the calculators
// consume. Defaults match the production program; tests override freely.
type Constants struct {
	// MinimumDebt is the program floor. Totals below it produce a
	// BelowMinimum plan. The business has used both 10000 and 15000 here;
	// it is deliberately configuration, not code.
	MinimumDebt decimal.Decimal

	// GlobalFallbackRate is the settlement fraction applied when neither a
	// creditor-specific nor a tier-level rate exists.
	GlobalFallbackRate decimal.Decimal

	// OptimizationBuffer is the fixed safety margin (dollars/month) kept
	// between the client budget and an optimized payment.
	OptimizationBuffer decimal.Decimal

	// MinimumExcessLiquidity is the excess required before a shorter term
	// is derived at all.
	MinimumExcessLiquidity decimal.Decimal

	// LegalProcessingFee is the global monthly legal fee applied when the
	// matched tier carries no override.
	LegalProcessingFee decimal.Decimal

	// DefaultAPR (percent) is assumed for the current-path baseline when
	// the caller supplies none.
	DefaultAPR decimal.Decimal

	// CreditorMatch selects how bureau-reported names are matched against
	// admin-entered rate-table keys.
	CreditorMatch MatchStrategy
}

// DefaultConstants returns the production defaults.
func DefaultConstants() Constants {
	return Constants{
		MinimumDebt:            decimal.NewFromInt(10000),
		GlobalFallbackRate:     decimal.NewFromFloat(0.60),
		OptimizationBuffer:     decimal.NewFromInt(50),
		MinimumExcessLiquidity: decimal.NewFromInt(50),
		LegalProcessingFee:     decimal.NewFromInt(25),
		DefaultAPR:             decimal.NewFromInt(24),
		CreditorMatch:          MatchExact,
	}
}

// Current-path calibration: a $2,000 balance at 22% APR costs about $4,300
// over 11 years of minimum payments. All baseline figures scale from this
// empirical reference point. See currentpath.go.
var (
	referenceBalance   = decimal.NewFromInt(2000)
	referenceAPR       = decimal.NewFromInt(22)
	referenceTotalCost = decimal.NewFromInt(4300)
	referenceYears     = decimal.NewFromInt(11)
	minimumPaymentRate = decimal.NewFromFloat(0.035)
	monthsPerYear      = decimal.NewFromInt(12)
)
