// Package store provides SQLite persistence for the interaction log.
package store

import (
	"database/sql"
	"fmt"
	"sync"
	"time"

	_ "modernc.org/sqlite"

	"github.com/camdenreyes/loci/internal/feed"
)

// Store is the append-only interaction log. NOT an interface - concrete type.
// Thread-safety: all methods are safe for concurrent use via internal mutex,
// since the event dispatcher writes from a background goroutine.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open creates a Store at the given database path, creating tables if
// they don't exist. Uses WAL mode for file-based databases.
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every connection in the pool sees the same
		// in-memory database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}
	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}
	return s, nil
}

func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS interactions (
		event_id TEXT PRIMARY KEY,
		item_id  TEXT NOT NULL,
		action   TEXT NOT NULL,
		dwell_ms INTEGER NOT NULL,
		at       DATETIME NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_interactions_item ON interactions(item_id);
	CREATE INDEX IF NOT EXISTS idx_interactions_at ON interactions(at DESC);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// Append stores one interaction. Duplicate event IDs are silently
// ignored: redelivery from the dispatcher must not fail.
func (s *Store) Append(ev feed.Interaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT OR IGNORE INTO interactions (event_id, item_id, action, dwell_ms, at)
		VALUES (?, ?, ?, ?, ?)`,
		ev.EventID,
		ev.ItemID,
		string(ev.Action),
		ev.Dwell.Milliseconds(),
		ev.At.UTC(),
	)
	if err != nil {
		return fmt.Errorf("append interaction: %w", err)
	}
	return nil
}

// Recent returns the newest interactions, most recent first.
func (s *Store) Recent(limit int) ([]feed.Interaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`
		SELECT event_id, item_id, action, dwell_ms, at
		FROM interactions
		ORDER BY at DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query interactions: %w", err)
	}
	defer rows.Close()

	var out []feed.Interaction
	for rows.Next() {
		var ev feed.Interaction
		var action string
		var dwellMs int64
		var at time.Time
		if err := rows.Scan(&ev.EventID, &ev.ItemID, &action, &dwellMs, &at); err != nil {
			return nil, fmt.Errorf("scan interaction: %w", err)
		}
		ev.Action = feed.Action(action)
		ev.Dwell = time.Duration(dwellMs) * time.Millisecond
		ev.At = at
		out = append(out, ev)
	}
	return out, rows.Err()
}

// CountByAction returns how many interactions were recorded per action.
func (s *Store) CountByAction() (map[feed.Action]int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query(`SELECT action, COUNT(*) FROM interactions GROUP BY action`)
	if err != nil {
		return nil, fmt.Errorf("count interactions: %w", err)
	}
	defer rows.Close()

	counts := make(map[feed.Action]int)
	for rows.Next() {
		var action string
		var n int
		if err := rows.Scan(&action, &n); err != nil {
			return nil, fmt.Errorf("scan count: %w", err)
		}
		counts[feed.Action(action)] = n
	}
	return counts, rows.Err()
}

// ItemDwell returns the total dwell recorded against one item across
// all its view sessions.
func (s *Store) ItemDwell(itemID string) (time.Duration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var totalMs sql.NullInt64
	err := s.db.QueryRow(`
		SELECT SUM(dwell_ms) FROM interactions WHERE item_id = ?`, itemID).Scan(&totalMs)
	if err != nil {
		return 0, fmt.Errorf("sum dwell: %w", err)
	}
	return time.Duration(totalMs.Int64) * time.Millisecond, nil
}
