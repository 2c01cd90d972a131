/*
rates.go - Settlement-rate resolution

PURPOSE:
  Resolves the settlement rate for one account through a three-step
  fallback chain, evaluated independently per account:

    1. Creditor-specific rate for this creditor AND this tier's term
    2. Tier-level fallback settlement rate
    3. Global fallback (Constants.GlobalFallbackRate, 60% by default)

  A missing creditor rate is never an error; the chain always resolves.

CREDITOR NAME MATCHING:
  The rate table is admin-maintained with human-entered names that may not
  exactly match bureau-reported names. Names are normalized (upper-cased,
  trimmed, inner whitespace collapsed) before comparison. Two strategies:

    MatchExact:    normalized equality (default)
    MatchContains: substring containment in either direction, for tables
                   keyed by short names like "CHASE" against reported names
                   like "CHASE CARD SERVICES"

SEE ALSO:
  - plan.go: Calls ResolveRate per eligible account
*/
package estimator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// MatchStrategy selects how creditor names are compared against rate-table
// keys.
type MatchStrategy string

const (
	MatchExact    MatchStrategy = "exact"
	MatchContains MatchStrategy = "contains"
)

// RateSource records which level of the fallback chain produced a rate.
type RateSource string

const (
	RateSourceCreditor RateSource = "creditor"
	RateSourceTier     RateSource = "tier"
	RateSourceGlobal   RateSource = "global"
)

var percentDivisor = decimal.NewFromInt(100)

// NormalizeCreditor canonicalizes a creditor name for table lookup:
// trimmed, upper-cased, inner whitespace collapsed to single spaces.
func NormalizeCreditor(name string) string {
	return strings.Join(strings.Fields(strings.ToUpper(name)), " ")
}

// Normalized returns a copy of the table with creditor keys canonicalized
// via NormalizeCreditor. Lookups assume normalized keys; build tables from
// admin input through this.
func (t CreditorRateTable) Normalized() CreditorRateTable {
	out := make(CreditorRateTable, len(t))
	for name, rates := range t {
		out[NormalizeCreditor(name)] = rates
	}
	return out
}

// RateResolver resolves per-account settlement rates against a creditor
// rate table.
type RateResolver struct {
	Table    CreditorRateTable
	Strategy MatchStrategy
}

// Resolve returns the settlement rate for the creditor as a fraction
// (e.g. 0.58), along with which fallback level supplied it. tierRate and
// globalRate are percent and fraction respectively; a non-positive tierRate
// means the tier carries no fallback rate.
func (r RateResolver) Resolve(creditor string, termMonths int, tierRate, globalRate decimal.Decimal) (decimal.Decimal, RateSource) {
	if rates, ok := r.lookup(creditor); ok {
		if rate, ok := rates[termMonths]; ok && rate.IsPositive() {
			return rate.Div(percentDivisor), RateSourceCreditor
		}
	}
	if tierRate.IsPositive() {
		return tierRate.Div(percentDivisor), RateSourceTier
	}
	return globalRate, RateSourceGlobal
}

// lookup finds the term->rate map for a creditor per the configured
// strategy.
func (r RateResolver) lookup(creditor string) (map[int]decimal.Decimal, bool) {
	name := NormalizeCreditor(creditor)
	if name == "" {
		return nil, false
	}

	if rates, ok := r.Table[name]; ok {
		return rates, true
	}

	if r.Strategy == MatchContains {
		for key, rates := range r.Table {
			if key == "" {
				continue
			}
			if strings.Contains(name, key) || strings.Contains(key, name) {
				return rates, true
			}
		}
	}

	return nil, false
}
