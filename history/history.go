// history/history.go
package history

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// ErrNoBatches is returned when the journal holds nothing to report.
var ErrNoBatches = errors.New("history: no batches recorded")

const schemaSQL = `
CREATE TABLE IF NOT EXISTS operations (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    batch_id TEXT NOT NULL,
    tool TEXT NOT NULL,
    action TEXT NOT NULL,
    src TEXT NOT NULL,
    dst TEXT NOT NULL,
    created_at DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_operations_batch ON operations(batch_id);
`

// Op is one journaled file operation.
type Op struct {
	ID      int64
	BatchID string
	Tool    string
	Action  string // "copy" or "move"
	Src     string
	Dst     string
	At      time.Time
}

// Store journals performed file operations per batch, so the most recent
// batch can be undone.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (creating if needed) the journal database at path.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create history dir: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, err
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, err
		}
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("init history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Record journals one performed operation under batchID.
func (s *Store) Record(batchID, tool, action, src, dst string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(
		`INSERT INTO operations (batch_id, tool, action, src, dst) VALUES (?, ?, ?, ?, ?)`,
		batchID, tool, action, src, dst,
	)
	if err != nil {
		return fmt.Errorf("record operation: %w", err)
	}
	return nil
}

// LastBatch returns the most recently written batch id and its operations
// in insertion order. ErrNoBatches when the journal is empty.
func (s *Store) LastBatch() (string, []Op, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var batchID string
	err := s.db.QueryRow(`SELECT batch_id FROM operations ORDER BY id DESC LIMIT 1`).Scan(&batchID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil, ErrNoBatches
	}
	if err != nil {
		return "", nil, err
	}

	ops, err := s.batchLocked(batchID)
	return batchID, ops, err
}

// Batch returns the operations journaled under id, in insertion order.
func (s *Store) Batch(id string) ([]Op, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.batchLocked(id)
}

func (s *Store) batchLocked(id string) ([]Op, error) {
	rows, err := s.db.Query(
		`SELECT id, batch_id, tool, action, src, dst, created_at FROM operations WHERE batch_id = ? ORDER BY id`,
		id,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOps(rows)
}

// DeleteBatch drops every operation journaled under id.
func (s *Store) DeleteBatch(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec(`DELETE FROM operations WHERE batch_id = ?`, id); err != nil {
		return fmt.Errorf("delete batch: %w", err)
	}
	return nil
}

// Recent returns up to n of the newest operations, newest first.
func (s *Store) Recent(n int) ([]Op, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(
		`SELECT id, batch_id, tool, action, src, dst, created_at FROM operations ORDER BY id DESC LIMIT ?`, n,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanOps(rows)
}

func scanOps(rows *sql.Rows) ([]Op, error) {
	var ops []Op
	for rows.Next() {
		var op Op
		var at sql.NullTime
		if err := rows.Scan(&op.ID, &op.BatchID, &op.Tool, &op.Action, &op.Src, &op.Dst, &at); err != nil {
			return nil, err
		}
		if at.Valid {
			op.At = at.Time
		}
		ops = append(ops, op)
	}
	return ops, rows.Err()
}
