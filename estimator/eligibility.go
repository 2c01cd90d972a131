/*
eligibility.go - Debt-eligibility filtering

PURPOSE:
  Decides which credit accounts count toward settlement-eligible debt.
  Two filters run in order:

  1. Balance filter: accounts with a coerced balance <= 0 are dropped.
     Malformed balances have already been coerced to zero by normalize.go,
     so they fall out here.
  2. Narrative-code filter: an account is eligible only if at least one of
     its codes matches a rule flagged includeInSettlement. Matching is
     inclusive-OR across the account's codes.

FAIL-CLOSED POLICY:
  An empty rule set makes nothing eligible. An account with no narrative
  codes at all is never eligible. Exclusion is the safe default for a
  consumer-facing estimate.

SEE ALSO:
  - plan.go: Consumes the eligible subset
*/
package estimator

import "github.com/shopspring/decimal"

// EligibilityResult is the output of FilterEligible.
type EligibilityResult struct {
	EligibleAccounts []Account
	TotalDebt        decimal.Decimal
}

// FilterEligible returns the settlement-eligible subset of accounts and
// their total debt. Pure function: no side effects, inputs are not mutated.
func FilterEligible(accounts []Account, rules []NarrativeCodeRule) EligibilityResult {
	ruleSet := NewRuleSet(rules)

	result := EligibilityResult{TotalDebt: decimal.Zero}
	if ruleSet.Empty() {
		return result
	}

	for _, account := range accounts {
		if !account.Balance.IsPositive() {
			continue
		}
		if !hasIncludedCode(account, ruleSet) {
			continue
		}
		result.EligibleAccounts = append(result.EligibleAccounts, account)
		result.TotalDebt = result.TotalDebt.Add(account.Balance)
	}
	return result
}

func hasIncludedCode(account Account, rules RuleSet) bool {
	for _, code := range account.NarrativeCodes {
		if rules.Includes(code) {
			return true
		}
	}
	return false
}
