/*
normalize.go - Adapter from raw bureau trade lines to canonical Accounts

PURPOSE:
  Bureau responses are not uniformly shaped: balances arrive as numbers or
  strings ("8500", "N/A"), the creditor name sits under customerName or
  creditor, and narrative codes expose their value under code and/or codeabv.
  This file maps any recognized input shape into the canonical Account record
  so the calculation core never deals with duck typing.

COERCION RULES:
  - Numeric balances pass through.
  - String balances are parsed strictly; anything unparseable ("N/A", "abc",
    "1,000") coerces to zero and is then dropped by the balance filter.
    Lenient by design: malformed input reduces eligible debt, it never halts
    the pipeline.
  - codeabv is collected first (it matches the rule-set keys like "FE"),
    then the numeric code as fallback. Both are kept; matching is
    inclusive-OR.

SEE ALSO:
  - eligibility.go: Consumes the canonical Accounts produced here
*/
package estimator

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// =============================================================================
// RAW INPUT SHAPES
// =============================================================================

// RawNarrativeCode is a narrative-code object as reported by the bureau.
// The short alphabetic code may appear under either field.
type RawNarrativeCode struct {
	Code        string `json:"code"`
	CodeAbv     string `json:"codeabv"`
	Description string `json:"description"`
}

// RawAccount is a trade line as it arrives from the credit-bureau
// collaborator. Balance may be a JSON number or a string.
type RawAccount struct {
	CustomerName   string             `json:"customerName"`
	Creditor       string             `json:"creditor"`
	Balance        json.RawMessage    `json:"balance"`
	NarrativeCodes []RawNarrativeCode `json:"narrativeCodes"`
}

// =============================================================================
// NORMALIZATION
// =============================================================================

// NormalizeAccounts converts raw trade lines to canonical Accounts.
func NormalizeAccounts(raw []RawAccount) []Account {
	accounts := make([]Account, len(raw))
	for i, r := range raw {
		accounts[i] = NormalizeAccount(r)
	}
	return accounts
}

// NormalizeAccount converts a single raw trade line.
func NormalizeAccount(raw RawAccount) Account {
	creditor := raw.CustomerName
	if creditor == "" {
		creditor = raw.Creditor
	}

	var codes []string
	for _, nc := range raw.NarrativeCodes {
		if nc.CodeAbv != "" {
			codes = append(codes, nc.CodeAbv)
		}
		if nc.Code != "" {
			codes = append(codes, nc.Code)
		}
	}

	return Account{
		Creditor:       creditor,
		Balance:        CoerceBalance(raw.Balance),
		NarrativeCodes: codes,
	}
}

// CoerceBalance parses a raw JSON balance value. Numbers and strictly
// numeric strings parse; everything else (null, "N/A", "1,000", objects)
// coerces to zero.
func CoerceBalance(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		return decimal.NewFromFloat(num)
	}

	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		return CoerceBalanceString(str)
	}

	return decimal.Zero
}

// CoerceBalanceString parses a string balance strictly. Unparseable values
// become zero.
func CoerceBalanceString(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
