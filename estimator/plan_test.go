package estimator_test

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentum/estimator-engine/estimator"
)

// =============================================================================
// TEST FIXTURE
// =============================================================================
// Three credit cards totaling $19,500 against a 30-month, 15%-fee tier:
//   CHASE       $8,500 @ 58% = $4,930
//   DISCOVER    $6,200 @ 65% = $4,030
//   CAPITAL ONE $4,800 @ 65% = $3,120
//   settlement $12,080 + fee $2,925 = total cost $15,005, monthly $500

func fixtureCalculator() estimator.PlanCalculator {
	return estimator.PlanCalculator{
		Tiers: []estimator.DebtTier{
			{
				MinAmount:     decimal.NewFromInt(10000),
				MaxAmount:     decimal.NewFromInt(24999),
				FeePercentage: decimal.NewFromInt(15),
				MaxTermMonths: 30,
			},
		},
		Rates: estimator.CreditorRateTable{
			"CHASE":       {30: decimal.NewFromInt(58)},
			"DISCOVER":    {30: decimal.NewFromInt(65)},
			"CAPITAL ONE": {30: decimal.NewFromInt(65)},
		},
		Constants: estimator.DefaultConstants(),
	}
}

func fixtureAccounts() []estimator.Account {
	return []estimator.Account{
		acct("CHASE", 8500, "FE"),
		acct("DISCOVER", 6200, "FE"),
		acct("CAPITAL ONE", 4800, "FE"),
	}
}

func budget(income, expenses float64) *estimator.Budget {
	return &estimator.Budget{
		MonthlyIncome:   decimal.NewFromFloat(income),
		MonthlyExpenses: decimal.NewFromFloat(expenses),
	}
}

// =============================================================================
// PLAN CALCULATION TESTS
// =============================================================================

func TestCalculate_ItemizedPlan(t *testing.T) {
	// GIVEN: The three-account fixture
	// WHEN: Calculating without a budget
	// THEN: Every figure of the itemized plan matches the hand calculation

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), nil)
	require.NoError(t, err)

	assert.True(t, plan.TotalDebt.Equal(decimal.NewFromInt(19500)), "total debt %s", plan.TotalDebt)
	assert.Equal(t, 3, plan.AccountCount)
	assert.False(t, plan.BelowMinimum)

	require.Len(t, plan.AccountSettlements, 3)
	assert.True(t, plan.AccountSettlements[0].SettlementAmount.Equal(decimal.NewFromInt(4930)),
		"CHASE settlement %s", plan.AccountSettlements[0].SettlementAmount)
	assert.True(t, plan.AccountSettlements[1].SettlementAmount.Equal(decimal.NewFromInt(4030)),
		"DISCOVER settlement %s", plan.AccountSettlements[1].SettlementAmount)
	assert.True(t, plan.AccountSettlements[2].SettlementAmount.Equal(decimal.NewFromInt(3120)),
		"CAPITAL ONE settlement %s", plan.AccountSettlements[2].SettlementAmount)
	for _, s := range plan.AccountSettlements {
		assert.Equal(t, estimator.RateSourceCreditor, s.RateSource)
	}

	assert.True(t, plan.TotalSettlement.Equal(decimal.NewFromInt(12080)), "settlement %s", plan.TotalSettlement)
	assert.True(t, plan.ProgramFee.Equal(decimal.NewFromInt(2925)), "fee %s", plan.ProgramFee)
	assert.True(t, plan.TotalCost.Equal(decimal.NewFromInt(15005)), "total cost %s", plan.TotalCost)
	assert.Equal(t, 30, plan.TermMonths)
	assert.True(t, plan.MonthlyPayment.Equal(decimal.NewFromInt(500)), "monthly %s", plan.MonthlyPayment)
	assert.False(t, plan.IsOptimized)

	// Legal processing rides on top of the settlement payment.
	assert.True(t, plan.LegalProcessingFee.Equal(decimal.NewFromInt(25)), "legal fee %s", plan.LegalProcessingFee)
	assert.True(t, plan.ProposedMonthlyPayment.Equal(decimal.NewFromInt(525)),
		"proposed %s", plan.ProposedMonthlyPayment)
}

func TestCalculate_TotalCostIsSettlementPlusFee(t *testing.T) {
	// GIVEN: Any plan
	// WHEN: Calculating
	// THEN: TotalCost equals TotalSettlement + ProgramFee exactly

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), nil)
	require.NoError(t, err)

	assert.True(t, plan.TotalCost.Equal(plan.TotalSettlement.Add(plan.ProgramFee)))
}

func TestCalculate_UnknownCreditor_UsesGlobalFallback(t *testing.T) {
	// GIVEN: An account whose creditor is absent from the rate table, on a
	//        tier with no fallback rate
	// WHEN: Calculating
	// THEN: The 60% global fallback prices the account; no error

	calc := fixtureCalculator()
	accounts := []estimator.Account{acct("LOCAL CREDIT UNION", 12000, "FE")}

	plan, err := calc.Calculate(accounts, nil)
	require.NoError(t, err)

	require.Len(t, plan.AccountSettlements, 1)
	assert.Equal(t, estimator.RateSourceGlobal, plan.AccountSettlements[0].RateSource)
	assert.True(t, plan.AccountSettlements[0].SettlementAmount.Equal(decimal.NewFromInt(7200)),
		"settlement %s", plan.AccountSettlements[0].SettlementAmount)
}

func TestCalculate_TierRate_BeatsGlobal(t *testing.T) {
	// GIVEN: A tier carrying its own fallback settlement rate
	// WHEN: Calculating an account with no creditor rate
	// THEN: The tier rate prices it, not the global fallback

	calc := fixtureCalculator()
	calc.Tiers[0].SettlementRate = decimal.NewFromInt(55)
	accounts := []estimator.Account{acct("LOCAL CREDIT UNION", 12000, "FE")}

	plan, err := calc.Calculate(accounts, nil)
	require.NoError(t, err)

	assert.Equal(t, estimator.RateSourceTier, plan.AccountSettlements[0].RateSource)
	assert.True(t, plan.AccountSettlements[0].SettlementAmount.Equal(decimal.NewFromInt(6600)))
}

// =============================================================================
// LEGAL PROCESSING FEE TESTS
// =============================================================================

func TestCalculate_TierLegalFee_OverridesGlobal(t *testing.T) {
	// GIVEN: A tier carrying its own monthly legal processing fee
	// WHEN: Calculating
	// THEN: The tier fee is charged instead of the global default

	calc := fixtureCalculator()
	calc.Tiers[0].LegalProcessingFee = decimal.NewFromInt(30)

	plan, err := calc.Calculate(fixtureAccounts(), nil)
	require.NoError(t, err)

	assert.True(t, plan.LegalProcessingFee.Equal(decimal.NewFromInt(30)))
	assert.True(t, plan.ProposedMonthlyPayment.Equal(decimal.NewFromInt(530)),
		"proposed %s", plan.ProposedMonthlyPayment)
}

func TestCalculate_LegalFee_NotPartOfTotalCost(t *testing.T) {
	// GIVEN: The fixture plan
	// WHEN: Calculating
	// THEN: TotalCost still equals settlement + program fee; the legal fee
	//       only widens the proposed payment

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), nil)
	require.NoError(t, err)

	assert.True(t, plan.TotalCost.Equal(plan.TotalSettlement.Add(plan.ProgramFee)))
	assert.True(t, plan.ProposedMonthlyPayment.Equal(plan.MonthlyPayment.Add(plan.LegalProcessingFee)))
}

// =============================================================================
// DETERMINISM TESTS
// =============================================================================

func TestCalculate_SameInputs_IdenticalPlans(t *testing.T) {
	// GIVEN: Fixed accounts, tables, and budget
	// WHEN: Calculating twice
	// THEN: The plans are identical in every field; the calculator keeps no
	//       state between calls

	calc := fixtureCalculator()
	accounts := fixtureAccounts()
	b := budget(3800, 3000)

	first, err := calc.Calculate(accounts, b)
	require.NoError(t, err)
	second, err := calc.Calculate(accounts, b)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestCurrentPath_SameInputs_IdenticalPlans(t *testing.T) {
	calc := estimator.CurrentPathCalculator{Constants: estimator.DefaultConstants()}

	first := calc.Calculate(decimal.NewFromInt(19500), decimal.NewFromInt(24))
	second := calc.Calculate(decimal.NewFromInt(19500), decimal.NewFromInt(24))

	assert.Equal(t, first, second)
}

// =============================================================================
// MINIMUM-DEBT GATE TESTS
// =============================================================================

func TestCalculate_BelowMinimum_TaggedResultNotError(t *testing.T) {
	// GIVEN: Eligible debt under the program floor
	// WHEN: Calculating
	// THEN: A BelowMinimum plan comes back; this is an outcome, not an error

	plan, err := fixtureCalculator().Calculate([]estimator.Account{acct("CHASE", 9999, "FE")}, nil)
	require.NoError(t, err)

	assert.True(t, plan.BelowMinimum)
	assert.True(t, plan.MinimumRequired.Equal(decimal.NewFromInt(10000)))
	assert.True(t, plan.TotalDebt.Equal(decimal.NewFromInt(9999)))
	assert.Empty(t, plan.AccountSettlements)
	assert.Equal(t, 0, plan.TermMonths)
}

func TestCalculate_ExactlyMinimum_Qualifies(t *testing.T) {
	// GIVEN: Eligible debt exactly at the floor
	// WHEN: Calculating
	// THEN: The gate is inclusive; a full plan is produced

	plan, err := fixtureCalculator().Calculate([]estimator.Account{acct("CHASE", 10000, "FE")}, nil)
	require.NoError(t, err)

	assert.False(t, plan.BelowMinimum)
	assert.Equal(t, 30, plan.TermMonths)
}

// =============================================================================
// TIER RESOLUTION FAILURE TESTS
// =============================================================================

func TestCalculate_NoTierMatch_HardError(t *testing.T) {
	// GIVEN: A debt total above every configured tier
	// WHEN: Calculating
	// THEN: NoTierMatchError; the engine never silently defaults a tier

	plan, err := fixtureCalculator().Calculate([]estimator.Account{acct("CHASE", 50000, "FE")}, nil)

	assert.Nil(t, plan)
	require.Error(t, err)
	assert.ErrorIs(t, err, estimator.ErrNoTierMatch)

	var tierErr *estimator.NoTierMatchError
	require.ErrorAs(t, err, &tierErr)
	assert.True(t, tierErr.TotalDebt.Equal(decimal.NewFromInt(50000)))
	assert.Equal(t, 1, tierErr.TierCount)
	assert.True(t, estimator.IsConfigError(err))
}

func TestCalculate_EmptyTierTable_Error(t *testing.T) {
	// GIVEN: No tiers configured at all
	// WHEN: Calculating above the minimum
	// THEN: ErrNoTiers

	calc := fixtureCalculator()
	calc.Tiers = nil

	_, err := calc.Calculate([]estimator.Account{acct("CHASE", 12000, "FE")}, nil)

	assert.ErrorIs(t, err, estimator.ErrNoTiers)
	assert.True(t, estimator.IsConfigError(err))
}

func TestCalculate_NonPositiveTerm_Error(t *testing.T) {
	// GIVEN: A matching tier with a zero term
	// WHEN: Calculating
	// THEN: ErrInvalidTerm instead of a division blowup

	calc := fixtureCalculator()
	calc.Tiers[0].MaxTermMonths = 0

	_, err := calc.Calculate([]estimator.Account{acct("CHASE", 12000, "FE")}, nil)

	assert.ErrorIs(t, err, estimator.ErrInvalidTerm)
	assert.False(t, errors.Is(err, estimator.ErrNoTierMatch))
}

// =============================================================================
// TERM OPTIMIZATION TESTS
// =============================================================================

func TestCalculate_Optimization_ShortensTermWithinBudget(t *testing.T) {
	// GIVEN: The fixture plan ($500/mo over 30) and an $800/mo budget
	// WHEN: Calculating with the budget
	// THEN: Payment rises to budget minus the $50 buffer; term shrinks to
	//       ceil(15005 / 750) = 21 months; originals are preserved

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), budget(3800, 3000))
	require.NoError(t, err)

	assert.True(t, plan.IsOptimized)
	assert.True(t, plan.MonthlyPayment.Equal(decimal.NewFromInt(750)), "monthly %s", plan.MonthlyPayment)
	assert.Equal(t, 21, plan.TermMonths)
	assert.True(t, plan.OriginalMonthlyPayment.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 30, plan.OriginalTermMonths)
	assert.True(t, plan.ExcessLiquidity.Equal(decimal.NewFromInt(300)), "excess %s", plan.ExcessLiquidity)

	// Total cost is unchanged; optimization only reshapes the schedule.
	assert.True(t, plan.TotalCost.Equal(decimal.NewFromInt(15005)))

	// The proposed payment tracks the optimized payment, not the original.
	assert.True(t, plan.ProposedMonthlyPayment.Equal(decimal.NewFromInt(775)),
		"proposed %s", plan.ProposedMonthlyPayment)
}

func TestCalculate_ExcessJustBelowThreshold_NoOptimization(t *testing.T) {
	// GIVEN: A budget leaving $49 over the base payment
	// WHEN: Calculating
	// THEN: Below the $50 threshold, the base plan stands

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), budget(3549, 3000))
	require.NoError(t, err)

	assert.False(t, plan.IsOptimized)
	assert.True(t, plan.MonthlyPayment.Equal(decimal.NewFromInt(500)))
	assert.Equal(t, 30, plan.TermMonths)
}

func TestCalculate_ExcessExactlyThreshold_Optimizes(t *testing.T) {
	// GIVEN: A budget leaving exactly $50 over the base payment
	// WHEN: Calculating
	// THEN: The threshold is inclusive

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), budget(3550, 3000))
	require.NoError(t, err)

	assert.True(t, plan.IsOptimized)
	assert.True(t, plan.ExcessLiquidity.Equal(decimal.NewFromInt(50)))
}

func TestCalculate_NilBudget_NoOptimization(t *testing.T) {
	// GIVEN: No budget supplied
	// WHEN: Calculating
	// THEN: Optimization is skipped entirely

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), nil)
	require.NoError(t, err)

	assert.False(t, plan.IsOptimized)
	assert.True(t, plan.OriginalMonthlyPayment.IsZero())
}

func TestCalculate_NegativeBudget_NoOptimization(t *testing.T) {
	// GIVEN: Expenses exceeding income
	// WHEN: Calculating
	// THEN: Negative excess never optimizes

	plan, err := fixtureCalculator().Calculate(fixtureAccounts(), budget(2000, 3000))
	require.NoError(t, err)

	assert.False(t, plan.IsOptimized)
}
