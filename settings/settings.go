/*
Package settings defines the admin-configured calculator document.

PURPOSE:
  Everything an administrator tunes lives in one CalculatorSettings
  document: debt tiers, creditor settlement rates, fee structure, and
  business rules. The document is persisted as a full JSON snapshot (save
  overwrites, never patches) through the Repository interface, and
  converted to the estimator's decimal-typed inputs at calculation time.

  The document types use float64 and JSON tags because they ARE the wire
  and storage format; precision-sensitive arithmetic only happens after
  conversion to estimator types.

KEY TYPES:
  CalculatorSettings: The whole document
  DebtTier:           One bracket row of the tier table
  CreditorData:       Creditor -> term months -> settlement percent
  BusinessRules:      Program thresholds and switches

SEE ALSO:
  - repository.go: Load/save snapshot interface
  - csvimport.go: Creditor rate-table import
  - estimator/types.go: The calculation-side counterparts
*/
package settings

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/momentum/estimator-engine/estimator"
)

// Program types. Momentum is the flagship plan the funnel recommends;
// standard is the longer-term alternative.
const (
	ProgramMomentum = "momentum"
	ProgramStandard = "standard"
)

// =============================================================================
// DOCUMENT TYPES
// =============================================================================

// DebtTier is one row of the admin tier table.
type DebtTier struct {
	ID                 string  `json:"id"`
	ProgramType        string  `json:"programType"`
	MinAmount          float64 `json:"minAmount"`
	MaxAmount          float64 `json:"maxAmount"`
	FeePercentage      float64 `json:"feePercentage"` // percent of total debt
	MaxTerm            int     `json:"maxTerm"`       // months
	SettlementRate     float64 `json:"settlementRate"`
	LegalProcessingFee float64 `json:"legalProcessingFee"` // $/month, 0 = use global
}

// SettlementConfig tunes rate resolution.
type SettlementConfig struct {
	FallbackSettlementRate float64 `json:"fallbackSettlementRate"` // percent
	MinimumExcessLiquidity float64 `json:"minimumExcessLiquidity"` // $/month
	CreditorMatchStrategy  string  `json:"creditorMatchStrategy"`  // "exact" | "contains"
}

// FeeStructure holds program-wide fee knobs.
type FeeStructure struct {
	LegalProcessingMonthlyFee float64 `json:"legalProcessingMonthlyFee"`
	BufferAmount              float64 `json:"bufferAmount"` // optimization safety margin
}

// BusinessRules holds qualification thresholds and switches.
type BusinessRules struct {
	EnableTermOptimization bool    `json:"enableTermOptimization"`
	MinimumDebtAmount      float64 `json:"minimumDebtAmount"`
	AssumedAPR             float64 `json:"assumedApr"` // percent, current-path baseline
}

// CreditorData is the admin-maintained settlement-rate table, keyed by
// creditor name, then term length in months.
type CreditorData struct {
	CreditorSettlementRates map[string]map[string]float64 `json:"creditorSettlementRates"`
	LastUpdated             string                        `json:"lastUpdated"`
}

// CalculatorSettings is the full configuration document.
type CalculatorSettings struct {
	DebtTiers     []DebtTier       `json:"debtTiers"`
	Settlement    SettlementConfig `json:"settlement"`
	FeeStructure  FeeStructure     `json:"feeStructure"`
	BusinessRules BusinessRules    `json:"businessRules"`
	CreditorData  CreditorData     `json:"creditorData"`
}

// =============================================================================
// DEFAULTS
// =============================================================================

// Default returns the shipped configuration: the production tier tables for
// both programs and a starter creditor rate table.
func Default() CalculatorSettings {
	return CalculatorSettings{
		DebtTiers: []DebtTier{
			// Momentum program
			{ID: "momentum-1", ProgramType: ProgramMomentum, MinAmount: 15000, MaxAmount: 19999, FeePercentage: 25, MaxTerm: 25, SettlementRate: 60},
			{ID: "momentum-2", ProgramType: ProgramMomentum, MinAmount: 20000, MaxAmount: 23999, FeePercentage: 19, MaxTerm: 38, SettlementRate: 60},
			{ID: "momentum-3", ProgramType: ProgramMomentum, MinAmount: 24000, MaxAmount: 49999, FeePercentage: 19, MaxTerm: 42, SettlementRate: 60},

			// Standard program
			{ID: "standard-1", ProgramType: ProgramStandard, MinAmount: 10000, MaxAmount: 14999, FeePercentage: 28, MaxTerm: 24, SettlementRate: 60},
			{ID: "standard-2", ProgramType: ProgramStandard, MinAmount: 15000, MaxAmount: 17999, FeePercentage: 28, MaxTerm: 36, SettlementRate: 60},
			{ID: "standard-3", ProgramType: ProgramStandard, MinAmount: 18000, MaxAmount: 19999, FeePercentage: 25, MaxTerm: 36, SettlementRate: 60},
			{ID: "standard-4", ProgramType: ProgramStandard, MinAmount: 20000, MaxAmount: 23999, FeePercentage: 25, MaxTerm: 42, SettlementRate: 60},
			{ID: "standard-5", ProgramType: ProgramStandard, MinAmount: 24000, MaxAmount: 49999, FeePercentage: 25, MaxTerm: 48, SettlementRate: 60},
		},
		Settlement: SettlementConfig{
			FallbackSettlementRate: 60,
			MinimumExcessLiquidity: 50,
			CreditorMatchStrategy:  string(estimator.MatchExact),
		},
		FeeStructure: FeeStructure{
			LegalProcessingMonthlyFee: 25,
			BufferAmount:              50,
		},
		BusinessRules: BusinessRules{
			EnableTermOptimization: true,
			MinimumDebtAmount:      10000,
			AssumedAPR:             24,
		},
		CreditorData: CreditorData{
			CreditorSettlementRates: map[string]map[string]float64{
				"CHASE":            {"24": 55, "25": 56, "30": 58, "36": 60, "38": 61, "42": 62, "48": 64},
				"DISCOVER":         {"24": 62, "25": 63, "30": 65, "36": 67, "38": 68, "42": 69, "48": 70},
				"CAPITAL ONE":      {"24": 62, "25": 63, "30": 65, "36": 66, "38": 67, "42": 68, "48": 69},
				"CITIBANK":         {"24": 58, "25": 58, "30": 60, "36": 62, "38": 63, "42": 64, "48": 65},
				"BANK OF AMERICA":  {"24": 55, "25": 56, "30": 57, "36": 58, "38": 59, "42": 60, "48": 62},
				"AMERICAN EXPRESS": {"24": 65, "25": 66, "30": 68, "36": 70, "38": 71, "42": 72, "48": 73},
				"WELLS FARGO":      {"24": 56, "25": 57, "30": 58, "36": 60, "38": 61, "42": 62, "48": 63},
				"SYNCHRONY":        {"24": 60, "25": 61, "30": 62, "36": 64, "38": 65, "42": 66, "48": 67},
			},
			LastUpdated: "",
		},
	}
}

// =============================================================================
// VALIDATION
// =============================================================================

// Validate checks document integrity. Tier tables must be contiguous and
// non-overlapping per program type: a gap means some supported debt total
// resolves to no tier, which surfaces later as a hard calculation failure.
// Gaps up to one dollar between consecutive integer-bounded tiers are the
// convention (e.g. max 14999, next min 15000).
func (s CalculatorSettings) Validate() error {
	if len(s.DebtTiers) == 0 {
		return fmt.Errorf("settings: no debt tiers configured")
	}

	byProgram := map[string][]DebtTier{}
	for _, t := range s.DebtTiers {
		if t.ProgramType != ProgramMomentum && t.ProgramType != ProgramStandard {
			return fmt.Errorf("settings: tier %q has unknown program type %q", t.ID, t.ProgramType)
		}
		if t.MinAmount < 0 || t.MaxAmount <= t.MinAmount {
			return fmt.Errorf("settings: tier %q has invalid range [%v, %v]", t.ID, t.MinAmount, t.MaxAmount)
		}
		if t.FeePercentage < 0 || t.FeePercentage > 100 {
			return fmt.Errorf("settings: tier %q has fee percentage %v outside 0-100", t.ID, t.FeePercentage)
		}
		if t.MaxTerm <= 0 {
			return fmt.Errorf("settings: tier %q has non-positive term %d", t.ID, t.MaxTerm)
		}
		if t.SettlementRate < 0 || t.SettlementRate > 100 {
			return fmt.Errorf("settings: tier %q has settlement rate %v outside 0-100", t.ID, t.SettlementRate)
		}
		if t.LegalProcessingFee < 0 {
			return fmt.Errorf("settings: tier %q has negative legal processing fee", t.ID)
		}
		byProgram[t.ProgramType] = append(byProgram[t.ProgramType], t)
	}

	for program, tiers := range byProgram {
		sort.Slice(tiers, func(i, j int) bool { return tiers[i].MinAmount < tiers[j].MinAmount })
		for i := 1; i < len(tiers); i++ {
			prev, cur := tiers[i-1], tiers[i]
			if cur.MinAmount <= prev.MaxAmount {
				return fmt.Errorf("settings: %s tiers %q and %q overlap", program, prev.ID, cur.ID)
			}
			if cur.MinAmount-prev.MaxAmount > 1 {
				return fmt.Errorf("settings: %s tier table has a gap between %v and %v",
					program, prev.MaxAmount, cur.MinAmount)
			}
		}
	}

	if s.FeeStructure.LegalProcessingMonthlyFee < 0 || s.FeeStructure.BufferAmount < 0 {
		return fmt.Errorf("settings: fee structure values must be non-negative")
	}

	for creditor, rates := range s.CreditorData.CreditorSettlementRates {
		if creditor == "" {
			return fmt.Errorf("settings: creditor rate entry with empty name")
		}
		for term, rate := range rates {
			months, err := strconv.Atoi(term)
			if err != nil || months <= 0 {
				return fmt.Errorf("settings: creditor %q has invalid term %q", creditor, term)
			}
			if rate < 0 || rate > 100 {
				return fmt.Errorf("settings: creditor %q term %q has rate %v outside 0-100", creditor, term, rate)
			}
		}
	}

	return nil
}

// =============================================================================
// CONVERSION TO ESTIMATOR TYPES
// =============================================================================

// TiersFor converts the tier rows of one program into the estimator's
// decimal-typed tiers, sorted by minimum amount.
func (s CalculatorSettings) TiersFor(programType string) []estimator.DebtTier {
	var out []estimator.DebtTier
	for _, t := range s.DebtTiers {
		if t.ProgramType != programType {
			continue
		}
		out = append(out, estimator.DebtTier{
			MinAmount:          decimal.NewFromFloat(t.MinAmount),
			MaxAmount:          decimal.NewFromFloat(t.MaxAmount),
			FeePercentage:      decimal.NewFromFloat(t.FeePercentage),
			MaxTermMonths:      t.MaxTerm,
			SettlementRate:     decimal.NewFromFloat(t.SettlementRate),
			LegalProcessingFee: decimal.NewFromFloat(t.LegalProcessingFee),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MinAmount.LessThan(out[j].MinAmount) })
	return out
}

// RateTable converts the creditor document into the estimator's lookup
// table, normalizing creditor keys. Invalid term keys are skipped; Validate
// rejects them before a snapshot is ever saved.
func (s CalculatorSettings) RateTable() estimator.CreditorRateTable {
	table := make(estimator.CreditorRateTable, len(s.CreditorData.CreditorSettlementRates))
	for creditor, rates := range s.CreditorData.CreditorSettlementRates {
		converted := make(map[int]decimal.Decimal, len(rates))
		for term, rate := range rates {
			months, err := strconv.Atoi(term)
			if err != nil || months <= 0 {
				continue
			}
			converted[months] = decimal.NewFromFloat(rate)
		}
		table[creditor] = converted
	}
	return table.Normalized()
}

// Constants assembles the estimator constants from the document.
func (s CalculatorSettings) Constants() estimator.Constants {
	c := estimator.DefaultConstants()
	if s.BusinessRules.MinimumDebtAmount > 0 {
		c.MinimumDebt = decimal.NewFromFloat(s.BusinessRules.MinimumDebtAmount)
	}
	if s.Settlement.FallbackSettlementRate > 0 {
		c.GlobalFallbackRate = decimal.NewFromFloat(s.Settlement.FallbackSettlementRate / 100)
	}
	if s.FeeStructure.BufferAmount > 0 {
		c.OptimizationBuffer = decimal.NewFromFloat(s.FeeStructure.BufferAmount)
	}
	if s.Settlement.MinimumExcessLiquidity > 0 {
		c.MinimumExcessLiquidity = decimal.NewFromFloat(s.Settlement.MinimumExcessLiquidity)
	}
	if s.FeeStructure.LegalProcessingMonthlyFee > 0 {
		c.LegalProcessingFee = decimal.NewFromFloat(s.FeeStructure.LegalProcessingMonthlyFee)
	}
	if s.BusinessRules.AssumedAPR > 0 {
		c.DefaultAPR = decimal.NewFromFloat(s.BusinessRules.AssumedAPR)
	}
	if s.Settlement.CreditorMatchStrategy == string(estimator.MatchContains) {
		c.CreditorMatch = estimator.MatchContains
	}
	return c
}

// ConstantsFor returns Constants with the minimum-debt floor raised to the
// program's lowest tier bound when that is higher. The momentum program
// starts at $15,000 while the global business-rule floor is $10,000; the
// effective gate for a given plan is the stricter of the two.
func (s CalculatorSettings) ConstantsFor(programType string) estimator.Constants {
	c := s.Constants()
	tiers := s.TiersFor(programType)
	if len(tiers) > 0 && tiers[0].MinAmount.GreaterThan(c.MinimumDebt) {
		c.MinimumDebt = tiers[0].MinAmount
	}
	return c
}
