/*
repository.go - Configuration snapshot persistence interface

PURPOSE:
  Defines the boundary between admin-configured state and its storage.
  The calculation core never reads configuration from ambient state; the
  caller loads snapshots through this interface and passes them in
  explicitly.

SNAPSHOT CONTRACT:
  - Load returns nil (no error) when nothing has been saved yet; callers
    fall back to the seeded defaults.
  - Save persists the FULL document. There is no partial update at the
    storage level; section merges happen in the API layer before saving.

IMPLEMENTATIONS:
  - store/sqlite: Production persistence with audit logging
  - settings/store: In-memory, for tests and demo mode
*/
package settings

import (
	"context"
	"time"

	"github.com/momentum/estimator-engine/estimator"
)

// Repository loads and saves full configuration snapshots.
type Repository interface {
	// LoadSettings returns the latest settings snapshot, or nil when none
	// has been saved.
	LoadSettings(ctx context.Context) (*CalculatorSettings, error)

	// SaveSettings persists a full settings snapshot.
	SaveSettings(ctx context.Context, doc CalculatorSettings, savedBy string) error

	// LoadNarrativeCodes returns the latest rule-set snapshot, or nil when
	// none has been saved.
	LoadNarrativeCodes(ctx context.Context) ([]estimator.NarrativeCodeRule, error)

	// SaveNarrativeCodes persists a full rule-set snapshot.
	SaveNarrativeCodes(ctx context.Context, rules []estimator.NarrativeCodeRule, savedBy string) error
}

// AuditEntry records who saved which configuration section when.
type AuditEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Actor     string    `json:"actor"`
	Section   string    `json:"section"` // "calculator-settings" | "narrative-codes"
	Detail    string    `json:"detail,omitempty"`
}

// AuditLog is append-only; configuration saves are also recorded here.
type AuditLog interface {
	AppendAudit(ctx context.Context, entry AuditEntry) error
	ListAudit(ctx context.Context, limit int) ([]AuditEntry, error)
}
