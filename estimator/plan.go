/*
plan.go - Settlement plan calculation

PURPOSE:
  The algorithmic heart of the estimator. Given the eligible accounts plus
  the configured tier and creditor-rate tables, produces a fully itemized
  SettlementPlan.

STEPS, IN ORDER:
  1. Minimum-debt gate: totals below Constants.MinimumDebt return a tagged
     BelowMinimum plan (a valid terminal outcome, not an error).
  2. Tier resolution: exactly one tier must contain the total. A miss is a
     hard configuration failure (NoTierMatchError).
  3. Per-account rate resolution via the fallback chain (rates.go).
  4. Per-account settlement = balance x rate.
  5. Totals: settlement sum, program fee (totalDebt x tier fee), total cost.
  6. Base monthly payment = round(totalCost / term).
  7. Optional term optimization when a client budget is supplied:
     excess = (income - expenses) - basePayment. If excess >= the threshold,
     the payment is raised to (budget - buffer) and the term shortened to
     ceil(totalCost / payment). Both original and optimized figures are
     returned.
  8. Proposed monthly payment = final payment + monthly legal processing
     fee (tier override, else the global fee).

ROUNDING:
  Monthly payments round to whole dollars, half away from zero, matching
  the consumer-facing display. Settlement amounts and fees keep full
  precision so that TotalCost == TotalSettlement + ProgramFee exactly.

SEE ALSO:
  - eligibility.go: Produces the account subset consumed here
  - currentpath.go: The comparison baseline
*/
package estimator

import "github.com/shopspring/decimal"

// PlanCalculator computes settlement plans from configured rule tables.
// It is stateless and safe to reuse; every call is pure.
type PlanCalculator struct {
	Tiers     []DebtTier
	Rates     CreditorRateTable
	Constants Constants
}

// Calculate produces a settlement plan for the eligible accounts. A nil
// budget skips term optimization. Returns NoTierMatchError when the tier
// table has a gap at the computed total.
func (c PlanCalculator) Calculate(eligible []Account, budget *Budget) (*SettlementPlan, error) {
	totalDebt := decimal.Zero
	for _, a := range eligible {
		totalDebt = totalDebt.Add(a.Balance)
	}

	// Step 1: minimum-debt gate.
	if totalDebt.LessThan(c.Constants.MinimumDebt) {
		return &SettlementPlan{
			TotalDebt:       totalDebt,
			AccountCount:    len(eligible),
			BelowMinimum:    true,
			MinimumRequired: c.Constants.MinimumDebt,
		}, nil
	}

	// Step 2: tier resolution.
	tier, err := c.resolveTier(totalDebt)
	if err != nil {
		return nil, err
	}

	// Steps 3-5: per-account settlement and totals.
	resolver := RateResolver{Table: c.Rates, Strategy: c.Constants.CreditorMatch}
	settlements := make([]AccountSettlement, len(eligible))
	totalSettlement := decimal.Zero
	for i, account := range eligible {
		rate, source := resolver.Resolve(account.Creditor, tier.MaxTermMonths,
			tier.SettlementRate, c.Constants.GlobalFallbackRate)
		amount := account.Balance.Mul(rate)
		settlements[i] = AccountSettlement{
			Creditor:         account.Creditor,
			Balance:          account.Balance,
			SettlementRate:   rate,
			SettlementAmount: amount,
			RateSource:       source,
		}
		totalSettlement = totalSettlement.Add(amount)
	}

	programFee := totalDebt.Mul(tier.FeePercentage).Div(percentDivisor)
	totalCost := totalSettlement.Add(programFee)

	// Step 6: base monthly payment.
	monthlyPayment := totalCost.Div(decimal.NewFromInt(int64(tier.MaxTermMonths))).Round(0)

	plan := &SettlementPlan{
		TotalDebt:          totalDebt,
		AccountCount:       len(eligible),
		AccountSettlements: settlements,
		TotalSettlement:    totalSettlement,
		FeePercentage:      tier.FeePercentage,
		ProgramFee:         programFee,
		TotalCost:          totalCost,
		TermMonths:         tier.MaxTermMonths,
		MonthlyPayment:     monthlyPayment,
	}

	// Step 7: optional term optimization.
	if budget != nil {
		c.optimizeTerm(plan, *budget)
	}

	// Step 8: the consumer-facing proposed payment adds the monthly legal
	// processing fee on top of whatever payment survived optimization.
	legalFee := tier.LegalProcessingFee
	if !legalFee.IsPositive() {
		legalFee = c.Constants.LegalProcessingFee
	}
	plan.LegalProcessingFee = legalFee
	plan.ProposedMonthlyPayment = plan.MonthlyPayment.Add(legalFee)

	return plan, nil
}

// resolveTier finds the single tier containing totalDebt.
func (c PlanCalculator) resolveTier(totalDebt decimal.Decimal) (DebtTier, error) {
	if len(c.Tiers) == 0 {
		return DebtTier{}, ErrNoTiers
	}
	for _, tier := range c.Tiers {
		if tier.Contains(totalDebt) {
			if tier.MaxTermMonths <= 0 {
				return DebtTier{}, ErrInvalidTerm
			}
			return tier, nil
		}
	}
	return DebtTier{}, &NoTierMatchError{TotalDebt: totalDebt, TierCount: len(c.Tiers)}
}

// optimizeTerm shortens the program term when the client budget leaves
// enough excess liquidity over the base payment. The buffer is a fixed
// safety margin, not configurable per plan.
func (c PlanCalculator) optimizeTerm(plan *SettlementPlan, budget Budget) {
	available := budget.Available()
	excess := available.Sub(plan.MonthlyPayment)
	if excess.LessThan(c.Constants.MinimumExcessLiquidity) {
		return
	}

	optimizedPayment := available.Sub(c.Constants.OptimizationBuffer)
	if !optimizedPayment.IsPositive() {
		return
	}
	optimizedTerm := int(plan.TotalCost.Div(optimizedPayment).Ceil().IntPart())

	plan.IsOptimized = true
	plan.OriginalMonthlyPayment = plan.MonthlyPayment
	plan.OriginalTermMonths = plan.TermMonths
	plan.ExcessLiquidity = excess
	plan.MonthlyPayment = optimizedPayment
	plan.TermMonths = optimizedTerm
}
