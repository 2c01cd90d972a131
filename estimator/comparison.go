/*
comparison.go - Plan vs. current-path aggregation for display

PURPOSE:
  Combines a SettlementPlan and a CurrentPathPlan into the side-by-side
  comparison the funnel renders. Pure formatting/aggregation; the numbers
  are computed upstream.

QUALIFICATION STATUSES:
  no_eligible_debt - nothing passed the eligibility filter
  below_minimum    - eligible debt under the program floor
  qualified        - normal plan
  optimized        - plan with budget-based term optimization applied
*/
package estimator

import (
	"strings"

	"github.com/shopspring/decimal"
)

// QualificationStatus is the display branch the presentation layer must
// distinguish.
type QualificationStatus string

const (
	StatusNoEligibleDebt QualificationStatus = "no_eligible_debt"
	StatusBelowMinimum   QualificationStatus = "below_minimum"
	StatusQualified      QualificationStatus = "qualified"
	StatusOptimized      QualificationStatus = "optimized"
)

// Comparison pairs the settlement plan with the do-nothing baseline.
type Comparison struct {
	Status      QualificationStatus
	Plan        *SettlementPlan
	CurrentPath *CurrentPathPlan

	// Savings of the program against the current path. Zero when no plan
	// was produced.
	TotalSavings      decimal.Decimal
	SavingsPercent    decimal.Decimal
	MonthlyDifference decimal.Decimal
	MonthsSaved       int
}

// Compare builds the display aggregate. plan may be a below-minimum result;
// a nil plan means no eligible debt at all.
func Compare(plan *SettlementPlan, current *CurrentPathPlan) Comparison {
	cmp := Comparison{
		Status:      StatusNoEligibleDebt,
		Plan:        plan,
		CurrentPath: current,
	}
	if plan == nil {
		return cmp
	}

	if plan.BelowMinimum {
		cmp.Status = StatusBelowMinimum
		return cmp
	}

	cmp.Status = StatusQualified
	if plan.IsOptimized {
		cmp.Status = StatusOptimized
	}

	if current != nil {
		cmp.TotalSavings = current.TotalCost.Sub(plan.TotalCost)
		if current.TotalCost.IsPositive() {
			cmp.SavingsPercent = cmp.TotalSavings.Div(current.TotalCost).Mul(percentDivisor).Round(0)
		}
		cmp.MonthlyDifference = current.MonthlyPayment.Sub(plan.MonthlyPayment)
		cmp.MonthsSaved = current.TermMonths - plan.TermMonths
	}
	return cmp
}

// FormatCurrency renders a whole-dollar figure like the funnel does:
// "$15,005", "-$42". Cents are rounded away.
func FormatCurrency(d decimal.Decimal) string {
	rounded := d.Round(0)
	negative := rounded.IsNegative()
	digits := rounded.Abs().String()

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	b.WriteByte('$')

	lead := len(digits) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(digits[:lead])
	for i := lead; i < len(digits); i += 3 {
		b.WriteByte(',')
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}
