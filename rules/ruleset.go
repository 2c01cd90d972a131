/*
Package rules manages the narrative-code eligibility catalogue.

PURPOSE:
  Narrative codes are short bureau-assigned markers on a trade line ("FE" =
  credit card, "BU" = student loan). Each carries an includeInSettlement
  flag deciding whether accounts bearing it count toward eligible debt.
  This package holds the seeded defaults (defaults.go) and the snapshot
  operations admins perform on them.

SNAPSHOT SEMANTICS:
  Saves replace the whole rule set; there are no incremental patches. Code
  uniqueness is enforced on save.

SEE ALSO:
  - defaults.go: Seeded catalogue
  - estimator/eligibility.go: Consumer of the rule list
*/
package rules

import (
	"fmt"
	"sort"

	"github.com/momentum/estimator-engine/estimator"
)

// Find returns the rule for code, if present.
func Find(rules []estimator.NarrativeCodeRule, code string) (estimator.NarrativeCodeRule, bool) {
	for _, r := range rules {
		if r.Code == code {
			return r, true
		}
	}
	return estimator.NarrativeCodeRule{}, false
}

// Toggle flips the inclusion flag for code in place. Returns false when the
// code is not in the set.
func Toggle(rules []estimator.NarrativeCodeRule, code string) bool {
	for i := range rules {
		if rules[i].Code == code {
			rules[i].IncludeInSettlement = !rules[i].IncludeInSettlement
			return true
		}
	}
	return false
}

// Validate checks a rule set before it is saved as a snapshot: codes must
// be non-empty and unique.
func Validate(rules []estimator.NarrativeCodeRule) error {
	seen := make(map[string]bool, len(rules))
	for _, r := range rules {
		if r.Code == "" {
			return fmt.Errorf("narrative code rule with empty code")
		}
		if seen[r.Code] {
			return fmt.Errorf("duplicate narrative code %q", r.Code)
		}
		seen[r.Code] = true
	}
	return nil
}

// Sorted returns a copy ordered by code, the order admin screens display.
func Sorted(rules []estimator.NarrativeCodeRule) []estimator.NarrativeCodeRule {
	out := make([]estimator.NarrativeCodeRule, len(rules))
	copy(out, rules)
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}

// IncludedCodes returns the codes currently flagged for settlement.
func IncludedCodes(rules []estimator.NarrativeCodeRule) []string {
	var codes []string
	for _, r := range rules {
		if r.IncludeInSettlement {
			codes = append(codes, r.Code)
		}
	}
	sort.Strings(codes)
	return codes
}
