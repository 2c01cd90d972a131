package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/momentum/estimator-engine/estimator"
	"github.com/momentum/estimator-engine/settings"
	"github.com/momentum/estimator-engine/store/sqlite"
)

// =============================================================================
// TEST SETUP
// =============================================================================

func newTestStore(t *testing.T) *sqlite.Store {
	store, err := sqlite.New(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

// =============================================================================
// SETTINGS SNAPSHOT TESTS
// =============================================================================

func TestLoadSettings_Empty_ReturnsNil(t *testing.T) {
	// GIVEN: A fresh database
	// WHEN: Loading settings
	// THEN: nil, nil; callers fall back to the shipped defaults

	store := newTestStore(t)

	doc, err := store.LoadSettings(context.Background())

	require.NoError(t, err)
	assert.Nil(t, doc)
}

func TestSaveSettings_Roundtrip(t *testing.T) {
	// GIVEN: The default document with a tweak
	// WHEN: Saving and loading
	// THEN: The loaded document matches field for field

	store := newTestStore(t)
	ctx := context.Background()

	doc := settings.Default()
	doc.BusinessRules.MinimumDebtAmount = 12000

	require.NoError(t, store.SaveSettings(ctx, doc, "admin@test"))

	loaded, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, doc, *loaded)
}

func TestSaveSettings_LatestSnapshotWins(t *testing.T) {
	// GIVEN: A burst of back-to-back saves, some within the same instant
	// WHEN: Loading
	// THEN: The last insert is served; ordering never depends on timestamp
	//       string comparison

	store := newTestStore(t)
	ctx := context.Background()

	for _, minimum := range []float64{10000, 12000, 15000} {
		doc := settings.Default()
		doc.BusinessRules.MinimumDebtAmount = minimum
		require.NoError(t, store.SaveSettings(ctx, doc, "admin@test"))
	}

	loaded, err := store.LoadSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, 15000.0, loaded.BusinessRules.MinimumDebtAmount)
}

// =============================================================================
// NARRATIVE CODE SNAPSHOT TESTS
// =============================================================================

func TestNarrativeCodes_NilWhenEmpty_ThenRoundtrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	loaded, err := store.LoadNarrativeCodes(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	ruleSet := []estimator.NarrativeCodeRule{
		{Code: "FE", Description: "Credit card", IncludeInSettlement: true},
		{Code: "BU", Description: "Student loan", IncludeInSettlement: false},
	}
	require.NoError(t, store.SaveNarrativeCodes(ctx, ruleSet, "admin@test"))

	loaded, err = store.LoadNarrativeCodes(ctx)
	require.NoError(t, err)
	assert.Equal(t, ruleSet, loaded)
}

// =============================================================================
// AUDIT LOG TESTS
// =============================================================================

func TestSaveSettings_RecordsAuditEntry(t *testing.T) {
	// GIVEN: A settings save
	// WHEN: Listing the audit log
	// THEN: One entry with the actor and section recorded

	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.SaveSettings(ctx, settings.Default(), "admin@test"))

	entries, err := store.ListAudit(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "admin@test", entries[0].Actor)
	assert.Equal(t, "calculator-settings", entries[0].Section)
	assert.False(t, entries[0].Timestamp.IsZero())
}

func TestAppendAudit_FillsIDAndTimestamp(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.AppendAudit(ctx, settings.AuditEntry{
		Actor:   "admin@test",
		Section: "narrative-codes",
		Detail:  "toggled FE",
	}))

	entries, err := store.ListAudit(ctx, 10)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.NotEmpty(t, entries[0].ID)
	assert.False(t, entries[0].Timestamp.IsZero())
	assert.Equal(t, "toggled FE", entries[0].Detail)
}

func TestListAudit_NewestFirstWithLimit(t *testing.T) {
	// GIVEN: Three audit entries written in order
	// WHEN: Listing with limit 2
	// THEN: The two newest come back, newest first

	store := newTestStore(t)
	ctx := context.Background()

	base := time.Now().UTC().Truncate(time.Second)
	for i, detail := range []string{"first", "second", "third"} {
		require.NoError(t, store.AppendAudit(ctx, settings.AuditEntry{
			Timestamp: base.Add(time.Duration(i) * time.Second),
			Actor:     "admin@test",
			Section:   "calculator-settings",
			Detail:    detail,
		}))
	}

	entries, err := store.ListAudit(ctx, 2)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "third", entries[0].Detail)
	assert.Equal(t, "second", entries[1].Detail)
}
