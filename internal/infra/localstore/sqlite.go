package localstore

import (
	"context"
	"database/sql"
	"encoding/json"

	_ "github.com/mattn/go-sqlite3"

	"github.com/coastally/coastally-api/internal/domain/auth"
)

// Fixed entry keys, carried over from the original storage layout.
const (
	profileKey = "coastAllyUser"
	apiKeyKey  = "geoapify_api_key"
)

// KeyStore persists the optional user-saved places API key. The saved key is
// read once at startup; a running process never re-reads it.
type KeyStore interface {
	SaveAPIKey(ctx context.Context, key string) error
	LoadAPIKey(ctx context.Context) (string, bool, error)
	DeleteAPIKey(ctx context.Context) error
}

// SQLiteStore is the durable local store: a single key/value table holding
// the session profile and the saved API key.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens (and if needed creates) the store file.
func OpenSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(`
CREATE TABLE IF NOT EXISTS local_entries (
  key   TEXT PRIMARY KEY,
  value TEXT NOT NULL
);
`); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

// SaveProfile implements auth.SessionStore.
func (s *SQLiteStore) SaveProfile(ctx context.Context, profile auth.Profile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return err
	}
	return s.put(ctx, profileKey, string(payload))
}

func (s *SQLiteStore) LoadProfile(ctx context.Context) (auth.Profile, bool, error) {
	payload, ok, err := s.get(ctx, profileKey)
	if err != nil || !ok {
		return auth.Profile{}, false, err
	}
	var profile auth.Profile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return auth.Profile{}, false, err
	}
	return profile, true, nil
}

func (s *SQLiteStore) DeleteProfile(ctx context.Context) error {
	return s.delete(ctx, profileKey)
}

// SaveAPIKey implements KeyStore.
func (s *SQLiteStore) SaveAPIKey(ctx context.Context, key string) error {
	return s.put(ctx, apiKeyKey, key)
}

func (s *SQLiteStore) LoadAPIKey(ctx context.Context) (string, bool, error) {
	return s.get(ctx, apiKeyKey)
}

func (s *SQLiteStore) DeleteAPIKey(ctx context.Context) error {
	return s.delete(ctx, apiKeyKey)
}

func (s *SQLiteStore) put(ctx context.Context, key, value string) error {
	_, err := s.db.ExecContext(ctx, `
INSERT INTO local_entries (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, key, value)
	return err
}

func (s *SQLiteStore) get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx, `SELECT value FROM local_entries WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

func (s *SQLiteStore) delete(ctx context.Context, key string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM local_entries WHERE key = ?`, key)
	return err
}

var (
	_ auth.SessionStore = (*SQLiteStore)(nil)
	_ KeyStore          = (*SQLiteStore)(nil)
)
