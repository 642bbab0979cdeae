// Package sqlite provides an ObjectStore backed by SQLite through the
// pure Go driver. Records are kept as codec text in a single TEXT
// column; an in-memory B-tree maps storage keys to row ids so lookups
// stay off the database for the common miss case.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/tidwall/btree"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/mwantia/mantameta/codec"
	"github.com/mwantia/mantameta/data"
	"github.com/mwantia/mantameta/log"
	"github.com/mwantia/mantameta/store"
)

type Store struct {
	mu  sync.RWMutex
	db  *sql.DB
	log *log.Logger

	// In-memory B-tree for fast key lookups
	keys *btree.Map[string, string]
}

// New opens (or creates) the database at dbPath and prepares the
// schema. The dbPath can be ":memory:" for an in-memory database or a
// file path.
func New(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Enable WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to enable WAL mode: %w", err)
	}

	s := &Store{
		db:   db,
		log:  log.NewLogger("mantameta/sqlite", log.Error, "", false),
		keys: btree.NewMap[string, string](0),
	}

	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, err
	}
	if err := s.loadKeys(); err != nil {
		db.Close()
		return nil, err
	}

	s.log.Debug("opened store at '%s' with %d keys", dbPath, s.keys.Len())
	return s, nil
}

// SetLogger replaces the default error-level logger.
func (s *Store) SetLogger(logger *log.Logger) {
	if logger != nil {
		s.log = logger
	}
}

func (s *Store) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS manta_records (
		id TEXT PRIMARY KEY,
		key TEXT NOT NULL UNIQUE,
		record TEXT
	);
	CREATE INDEX IF NOT EXISTS idx_manta_records_key ON manta_records(key);
	`
	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("failed to initialize schema: %w", err)
	}
	return nil
}

// loadKeys rebuilds the B-tree index from the database on startup.
func (s *Store) loadKeys() error {
	rows, err := s.db.Query("SELECT key, id FROM manta_records")
	if err != nil {
		return fmt.Errorf("failed to load keys: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, id string
		if err := rows.Scan(&key, &id); err != nil {
			return fmt.Errorf("failed to scan key row: %w", err)
		}
		s.keys.Set(key, id)
	}
	return rows.Err()
}

func (s *Store) Put(ctx context.Context, key string, rec *data.ObjectRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Check B-tree first
	if _, exists := s.keys.Get(key); exists {
		return store.ErrExist
	}

	text, err := codec.Encode(rec)
	if err != nil {
		return err
	}

	id := uuid.Must(uuid.NewV7()).String()
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO manta_records (id, key, record)
		VALUES (?, ?, ?)
	`, id, key, string(text))
	if err != nil {
		return fmt.Errorf("failed to insert record: %w", err)
	}

	// Update B-tree
	s.keys.Set(key, id)
	return nil
}

func (s *Store) Get(ctx context.Context, key string) (*data.ObjectRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	// Check B-tree first
	id, exists := s.keys.Get(key)
	if !exists {
		return nil, store.ErrNotExist
	}

	var cell sql.NullString
	err := s.db.QueryRowContext(ctx, `
		SELECT record FROM manta_records WHERE id = ?
	`, id).Scan(&cell)
	if err == sql.ErrNoRows {
		return nil, store.ErrNotExist
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query record: %w", err)
	}

	// A NULL cell decodes distinctly from a corrupt one
	var text []byte
	if cell.Valid {
		text = []byte(cell.String)
	}

	rec, err := codec.Decode(text)
	if err != nil {
		s.log.Error("record '%s' failed to decode: %v", key, err)
		return nil, err
	}
	return rec, nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, exists := s.keys.Get(key)
	if !exists {
		return store.ErrNotExist
	}

	if _, err := s.db.ExecContext(ctx, "DELETE FROM manta_records WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}

	s.keys.Delete(key)
	return nil
}

func (s *Store) Keys(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	keys := make([]string, 0, s.keys.Len())
	s.keys.Scan(func(key string, _ string) bool {
		keys = append(keys, key)
		return true
	})
	return keys, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}
