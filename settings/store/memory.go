/*
Package store provides an in-memory settings repository.

PURPOSE:
  Implements settings.Repository and settings.AuditLog without a database.
  Used by tests and by demo mode; snapshot semantics match the SQLite
  implementation: latest save wins, nil when nothing saved, and every save
  records an audit entry.

THREAD SAFETY:
  Guarded by a mutex so handler tests can exercise it concurrently.
*/
package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/momentum/estimator-engine/estimator"
	"github.com/momentum/estimator-engine/settings"
)

// Memory is an in-memory settings.Repository and settings.AuditLog.
type Memory struct {
	mu       sync.RWMutex
	settings *settings.CalculatorSettings
	rules    []estimator.NarrativeCodeRule
	audit    []settings.AuditEntry
}

// NewMemory creates an empty in-memory repository.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadSettings(ctx context.Context) (*settings.CalculatorSettings, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.settings == nil {
		return nil, nil
	}
	doc := *m.settings
	return &doc, nil
}

func (m *Memory) SaveSettings(ctx context.Context, doc settings.CalculatorSettings, savedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.settings = &doc
	m.recordSaveLocked("calculator-settings", savedBy)
	return nil
}

func (m *Memory) LoadNarrativeCodes(ctx context.Context) ([]estimator.NarrativeCodeRule, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.rules == nil {
		return nil, nil
	}
	out := make([]estimator.NarrativeCodeRule, len(m.rules))
	copy(out, m.rules)
	return out, nil
}

func (m *Memory) SaveNarrativeCodes(ctx context.Context, rules []estimator.NarrativeCodeRule, savedBy string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	snapshot := make([]estimator.NarrativeCodeRule, len(rules))
	copy(snapshot, rules)
	m.rules = snapshot
	m.recordSaveLocked("narrative-codes", savedBy)
	return nil
}

// recordSaveLocked mirrors the audit row the SQLite store writes per save.
func (m *Memory) recordSaveLocked(section, savedBy string) {
	m.audit = append(m.audit, settings.AuditEntry{
		ID:        uuid.NewString(),
		Timestamp: time.Now().UTC(),
		Actor:     savedBy,
		Section:   section,
		Detail:    "snapshot saved",
	})
}

func (m *Memory) AppendAudit(ctx context.Context, entry settings.AuditEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}
	m.audit = append(m.audit, entry)
	return nil
}

func (m *Memory) ListAudit(ctx context.Context, limit int) ([]settings.AuditEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	// Newest first.
	out := make([]settings.AuditEntry, 0, len(m.audit))
	for i := len(m.audit) - 1; i >= 0 && (limit <= 0 || len(out) < limit); i-- {
		out = append(out, m.audit[i])
	}
	return out, nil
}
