/*
currentpath.go - "Do nothing" minimum-payments baseline

PURPOSE:
  Produces the comparison baseline for continuing minimum payments with no
  settlement program. This is deliberately a rough closed-form model, not a
  real amortization schedule: everything scales linearly from one empirical
  reference point (a $2,000 balance at 22% APR costing ~$4,300 over 11
  years).

FORMULAS (preserved bit-for-bit; do not "fix"):
  scalingFactor  = totalDebt / 2000
  aprAdjustment  = apr / 22
  termMonths     = round(11 * aprAdjustment * 12)
  totalCost      = round(4300 * scalingFactor * aprAdjustment)
  monthlyPayment = round(totalDebt * 0.035)

  monthlyPayment is an independent display estimate and intentionally does
  NOT equal totalCost / termMonths. Real minimum payments decrease over
  time; the single figure shown is the starting payment.
*/
package estimator

import "github.com/shopspring/decimal"

// CurrentPathCalculator computes the no-intervention baseline.
type CurrentPathCalculator struct {
	Constants Constants
}

// Calculate derives the baseline from total eligible debt. A non-positive
// apr uses Constants.DefaultAPR.
func (c CurrentPathCalculator) Calculate(totalDebt, apr decimal.Decimal) CurrentPathPlan {
	if !apr.IsPositive() {
		apr = c.Constants.DefaultAPR
	}

	scalingFactor := totalDebt.Div(referenceBalance)
	aprAdjustment := apr.Div(referenceAPR)

	termMonths := referenceYears.Mul(aprAdjustment).Mul(monthsPerYear).Round(0)
	totalCost := referenceTotalCost.Mul(scalingFactor).Mul(aprAdjustment).Round(0)
	monthlyPayment := totalDebt.Mul(minimumPaymentRate).Round(0)

	return CurrentPathPlan{
		MonthlyPayment: monthlyPayment,
		TermMonths:     int(termMonths.IntPart()),
		TotalCost:      totalCost,
	}
}
