/*
errors.go - Centralized error types for the estimator engine

PURPOSE:
  All error types in one place. Expected business outcomes (below-minimum
  debt, missing creditor rates, empty rule sets) are NOT errors here; they
  are tagged results or fallbacks. Errors are reserved for configuration
  integrity problems the caller must surface loudly.

ERROR CATEGORIES:
  1. Tier configuration errors - gapped or missing tier tables
  2. Input errors - malformed calculation inputs

USAGE:
  plan, err := calc.Calculate(accounts, nil)
  if errors.Is(err, estimator.ErrNoTierMatch) {
      // tier table has a gap; report, do not default
  }
*/
package estimator

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrNoTierMatch is returned when total eligible debt falls into no
	// configured tier. This signals gapped tier ranges; callers must treat
	// it as "cannot produce a plan", never silently default.
	ErrNoTierMatch = errors.New("no debt tier matches total debt")

	// ErrNoTiers is returned when the calculator was given an empty tier
	// table.
	ErrNoTiers = errors.New("debt tier table is empty")

	// ErrInvalidTerm is returned when a tier carries a non-positive term.
	ErrInvalidTerm = errors.New("tier term must be positive")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// NoTierMatchError reports which debt total failed tier resolution.
type NoTierMatchError struct {
	TotalDebt decimal.Decimal
	TierCount int
}

func (e *NoTierMatchError) Error() string {
	return fmt.Sprintf("no debt tier matches total debt %s (%d tiers configured)",
		e.TotalDebt.StringFixed(2), e.TierCount)
}

func (e *NoTierMatchError) Unwrap() error {
	return ErrNoTierMatch
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConfigError reports whether the error indicates a configuration-integrity
// failure (as opposed to bad request input).
func IsConfigError(err error) bool {
	return errors.Is(err, ErrNoTierMatch) ||
		errors.Is(err, ErrNoTiers) ||
		errors.Is(err, ErrInvalidTerm)
}
