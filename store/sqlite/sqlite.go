/*
Package sqlite provides a SQLite-backed implementation of the storage
interfaces.

PURPOSE:
  Implements settings.Repository and settings.AuditLog using SQLite.
  Configuration is stored as full JSON document snapshots: every save
  inserts a new row and the latest row wins. Nothing is ever updated in
  place, so the snapshot history doubles as a change record alongside the
  audit log.

KEY TABLES:
  settings_snapshots:       Calculator-settings documents (JSON)
  narrative_code_snapshots: Narrative-code rule sets (JSON)
  audit_log:                Append-only record of who saved what when

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. With a server-grade database the
  database's own concurrency control would handle this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging): multiple readers do not
  block, single writer at a time, better crash recovery.

USAGE:
  store, err := sqlite.New("./data/estimator.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

MIGRATION:
  Schema is auto-migrated on New(). For production, use a proper migration
  tool (golang-migrate, goose) with versioned migrations.

SEE ALSO:
  - settings/repository.go: Interface definitions
  - settings/store/memory.go: In-memory implementation for testing
*/
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"

	"github.com/momentum/estimator-engine/estimator"
	"github.com/momentum/estimator-engine/settings"
)

// Store implements settings.Repository and settings.AuditLog using SQLite.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// New creates a new SQLite store with the given database path.
// Use ":memory:" for an in-memory database.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return store, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// migrate creates the database schema.
func (s *Store) migrate() error {
	// seq, not created_at, is the ordering key: textual timestamps are not
	// lexicographically sortable at sub-second precision, and same-instant
	// saves must still resolve to the last insert.
	schema := `
	-- Calculator settings, stored as full document snapshots (latest wins)
	CREATE TABLE IF NOT EXISTS settings_snapshots (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		document_json TEXT NOT NULL,
		saved_by TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	-- Narrative-code rule sets, same snapshot semantics
	CREATE TABLE IF NOT EXISTS narrative_code_snapshots (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		document_json TEXT NOT NULL,
		saved_by TEXT NOT NULL DEFAULT '',
		created_at TEXT NOT NULL
	);

	-- Audit log (append-only, listed in insertion order)
	CREATE TABLE IF NOT EXISTS audit_log (
		seq INTEGER PRIMARY KEY AUTOINCREMENT,
		id TEXT NOT NULL UNIQUE,
		timestamp TEXT NOT NULL,
		actor TEXT NOT NULL DEFAULT '',
		section TEXT NOT NULL,
		detail TEXT
	);
	`

	_, err := s.db.Exec(schema)
	return err
}

// =============================================================================
// SETTINGS SNAPSHOTS
// =============================================================================

// LoadSettings returns the latest settings snapshot, or nil when none has
// been saved yet.
func (s *Store) LoadSettings(ctx context.Context) (*settings.CalculatorSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT document_json FROM settings_snapshots ORDER BY seq DESC LIMIT 1`,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load settings: %w", err)
	}

	var doc settings.CalculatorSettings
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return nil, fmt.Errorf("malformed settings snapshot: %w", err)
	}
	return &doc, nil
}

// SaveSettings persists a full settings snapshot and records an audit entry.
func (s *Store) SaveSettings(ctx context.Context, doc settings.CalculatorSettings, savedBy string) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode settings: %w", err)
	}
	return s.saveSnapshot(ctx, "settings_snapshots", "calculator-settings", string(raw), savedBy)
}

// =============================================================================
// NARRATIVE CODE SNAPSHOTS
// =============================================================================

// LoadNarrativeCodes returns the latest rule-set snapshot, or nil when none
// has been saved yet.
func (s *Store) LoadNarrativeCodes(ctx context.Context) ([]estimator.NarrativeCodeRule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var raw string
	err := s.db.QueryRowContext(ctx,
		`SELECT document_json FROM narrative_code_snapshots ORDER BY seq DESC LIMIT 1`,
	).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load narrative codes: %w", err)
	}

	var ruleSet []estimator.NarrativeCodeRule
	if err := json.Unmarshal([]byte(raw), &ruleSet); err != nil {
		return nil, fmt.Errorf("malformed narrative-code snapshot: %w", err)
	}
	return ruleSet, nil
}

// SaveNarrativeCodes persists a full rule-set snapshot and records an audit
// entry.
func (s *Store) SaveNarrativeCodes(ctx context.Context, ruleSet []estimator.NarrativeCodeRule, savedBy string) error {
	raw, err := json.Marshal(ruleSet)
	if err != nil {
		return fmt.Errorf("failed to encode narrative codes: %w", err)
	}
	return s.saveSnapshot(ctx, "narrative_code_snapshots", "narrative-codes", string(raw), savedBy)
}

// saveSnapshot inserts the snapshot row and its audit entry atomically.
func (s *Store) saveSnapshot(ctx context.Context, table, section, documentJSON, savedBy string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = tx.ExecContext(ctx,
		fmt.Sprintf(`INSERT INTO %s (id, document_json, saved_by, created_at) VALUES (?, ?, ?, ?)`, table),
		uuid.NewString(), documentJSON, savedBy, now)
	if err != nil {
		return fmt.Errorf("failed to save snapshot: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO audit_log (id, timestamp, actor, section, detail) VALUES (?, ?, ?, ?, ?)`,
		uuid.NewString(), now, savedBy, section, "snapshot saved")
	if err != nil {
		return fmt.Errorf("failed to record audit entry: %w", err)
	}

	return tx.Commit()
}

// =============================================================================
// AUDIT LOG
// =============================================================================

// AppendAudit records an audit entry. IDs and timestamps are assigned here
// when the caller leaves them zero.
func (s *Store) AppendAudit(ctx context.Context, entry settings.AuditEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO audit_log (id, timestamp, actor, section, detail) VALUES (?, ?, ?, ?, ?)`,
		entry.ID, entry.Timestamp.UTC().Format(time.RFC3339Nano), entry.Actor, entry.Section, entry.Detail)
	if err != nil {
		return fmt.Errorf("failed to append audit entry: %w", err)
	}
	return nil
}

// ListAudit returns audit entries, newest first.
func (s *Store) ListAudit(ctx context.Context, limit int) ([]settings.AuditEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if limit <= 0 {
		limit = 100
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, timestamp, actor, section, COALESCE(detail, '') FROM audit_log
		 ORDER BY seq DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit entries: %w", err)
	}
	defer rows.Close()

	var entries []settings.AuditEntry
	for rows.Next() {
		var entry settings.AuditEntry
		var ts string
		if err := rows.Scan(&entry.ID, &ts, &entry.Actor, &entry.Section, &entry.Detail); err != nil {
			return nil, fmt.Errorf("failed to scan audit entry: %w", err)
		}
		entry.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
