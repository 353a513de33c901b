/*
Package sqlite provides a SQLite-backed cache of fetched agreements.

PURPOSE:
  Agreements are owned by the grants backend; this store only caches
  the raw JSON documents so the presentation service can re-render a
  page without refetching, and so demo scenarios can run without a
  backend at all. The cached payload is the document of record for
  rendering - nothing here mutates agreement state.

KEY TABLE:
  agreements:  agreement_id PK, status, payload (raw JSON), fetched_at

CONCURRENCY:
  Uses sync.RWMutex for thread-safety. In production with PostgreSQL,
  database-level concurrency control handles this instead.

WAL MODE:
  SQLite is opened with WAL (Write-Ahead Logging) for better
  concurrency: multiple readers don't block, single writer at a time.

USAGE:
  store, err := sqlite.New("./data/agreements.db")
  if err != nil {
      log.Fatal(err)
  }
  defer store.Close()

SEE ALSO:
  - api/handlers.go: Cache-or-fetch flow using this store
  - api/scenarios.go: Demo data loaded through this store
*/
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/warp/agreement-engine/agreement"
)

// Record is one cached agreement document.
type Record struct {
	AgreementID string
	Status      agreement.Status
	Payload     []byte
	FetchedAt   time.Time
}

// Store caches agreement documents in SQLite.
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
	schema := `
	CREATE TABLE IF NOT EXISTS agreements (
		agreement_id TEXT PRIMARY KEY,
		status TEXT NOT NULL,
		payload TEXT NOT NULL,
		fetched_at TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_agreements_status ON agreements(status);
	`
	_, err := s.db.Exec(schema)
	return err
}

// SaveAgreement inserts or replaces a cached agreement document.
func (s *Store) SaveAgreement(ctx context.Context, r Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	fetchedAt := r.FetchedAt
	if fetchedAt.IsZero() {
		fetchedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO agreements (agreement_id, status, payload, fetched_at)
		VALUES (?, ?, ?, ?)`,
		r.AgreementID, string(r.Status), string(r.Payload), fetchedAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to save agreement %s: %w", r.AgreementID, err)
	}
	return nil
}

// GetAgreement returns a cached document, or ErrAgreementNotCached.
func (s *Store) GetAgreement(ctx context.Context, agreementID string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var r Record
	var status, payload, fetchedAt string
	err := s.db.QueryRowContext(ctx, `
		SELECT agreement_id, status, payload, fetched_at
		FROM agreements WHERE agreement_id = ?`, agreementID).
		Scan(&r.AgreementID, &status, &payload, &fetchedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return Record{}, fmt.Errorf("agreement %s: %w", agreementID, agreement.ErrAgreementNotCached)
	}
	if err != nil {
		return Record{}, fmt.Errorf("failed to load agreement %s: %w", agreementID, err)
	}

	r.Status = agreement.Status(status)
	r.Payload = []byte(payload)
	if t, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
		r.FetchedAt = t
	}
	return r, nil
}

// ListAgreements returns all cached documents ordered by id.
func (s *Store) ListAgreements(ctx context.Context) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `
		SELECT agreement_id, status, payload, fetched_at
		FROM agreements ORDER BY agreement_id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list agreements: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		var status, payload, fetchedAt string
		if err := rows.Scan(&r.AgreementID, &status, &payload, &fetchedAt); err != nil {
			return nil, err
		}
		r.Status = agreement.Status(status)
		r.Payload = []byte(payload)
		if t, err := time.Parse(time.RFC3339, fetchedAt); err == nil {
			r.FetchedAt = t
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

// DeleteAgreement removes a cached document. Missing ids are a no-op.
func (s *Store) DeleteAgreement(ctx context.Context, agreementID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM agreements WHERE agreement_id = ?`, agreementID)
	if err != nil {
		return fmt.Errorf("failed to delete agreement %s: %w", agreementID, err)
	}
	return nil
}

// Reset clears the cache. Used by demo scenarios.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.ExecContext(ctx, `DELETE FROM agreements`)
	if err != nil {
		return fmt.Errorf("failed to reset store: %w", err)
	}
	return nil
}
