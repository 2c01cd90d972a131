package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentum/estimator-engine/estimator"
	"github.com/momentum/estimator-engine/rules"
)

func TestDefaultRuleSet_Catalogue(t *testing.T) {
	// GIVEN: The seeded bureau catalogue
	// THEN: All 237 codes present, unique, with the known inclusion flags

	set := rules.DefaultRuleSet()

	assert.Len(t, set, 237)
	require.NoError(t, rules.Validate(set))

	fe, ok := rules.Find(set, "FE")
	require.True(t, ok)
	assert.True(t, fe.IncludeInSettlement, "credit cards are settlement-eligible")

	bu, ok := rules.Find(set, "BU")
	require.True(t, ok)
	assert.False(t, bu.IncludeInSettlement, "student loans are excluded")
}

func TestDefaultRuleSet_ReturnsCopy(t *testing.T) {
	// Mutating one copy must not leak into the next caller's defaults.
	first := rules.DefaultRuleSet()
	first[0].IncludeInSettlement = !first[0].IncludeInSettlement

	second := rules.DefaultRuleSet()
	assert.NotEqual(t, first[0].IncludeInSettlement, second[0].IncludeInSettlement)
}

func TestToggle(t *testing.T) {
	set := []estimator.NarrativeCodeRule{{Code: "FE", IncludeInSettlement: true}}

	assert.True(t, rules.Toggle(set, "FE"))
	assert.False(t, set[0].IncludeInSettlement)

	assert.False(t, rules.Toggle(set, "ZZ"))
}

func TestValidate(t *testing.T) {
	assert.NoError(t, rules.Validate([]estimator.NarrativeCodeRule{
		{Code: "FE"}, {Code: "BU"},
	}))
	assert.Error(t, rules.Validate([]estimator.NarrativeCodeRule{
		{Code: "FE"}, {Code: "FE"},
	}))
	assert.Error(t, rules.Validate([]estimator.NarrativeCodeRule{
		{Code: ""},
	}))
}

func TestSorted_CopiesAndOrders(t *testing.T) {
	set := []estimator.NarrativeCodeRule{{Code: "GS"}, {Code: "BU"}, {Code: "FE"}}

	sorted := rules.Sorted(set)

	assert.Equal(t, "BU", sorted[0].Code)
	assert.Equal(t, "FE", sorted[1].Code)
	assert.Equal(t, "GS", sorted[2].Code)
	// Input untouched.
	assert.Equal(t, "GS", set[0].Code)
}

func TestIncludedCodes(t *testing.T) {
	set := []estimator.NarrativeCodeRule{
		{Code: "GS", IncludeInSettlement: true},
		{Code: "BU", IncludeInSettlement: false},
		{Code: "FE", IncludeInSettlement: true},
	}

	assert.Equal(t, []string{"FE", "GS"}, rules.IncludedCodes(set))
}
