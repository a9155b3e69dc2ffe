package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"suite/pkg/storage"
	"suite/pkg/utils"
)

// Store implements storage.Store on top of the kv_store table.
type Store struct {
	db     *sql.DB
	driver Driver
}

var _ storage.Store = (*Store)(nil)

// Open connects, ensures the schema and returns a ready Store.
func Open(driver Driver, dsn string) (*Store, error) {
	db, err := ConnectDB(driver, dsn)
	if err != nil {
		return nil, err
	}
	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}
	return NewStore(db, driver), nil
}

// NewStore wraps an already prepared connection.
func NewStore(db *sql.DB, driver Driver) *Store {
	return &Store{db: db, driver: driver}
}

// Get returns the value stored under key
func (s *Store) Get(key string) (string, bool, error) {
	var value string
	err := s.db.QueryRow(s.rebind("SELECT value FROM kv_store WHERE key = ?"), key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read %s: %w", key, err)
	}
	return value, true, nil
}

// Set inserts or replaces the value stored under key
func (s *Store) Set(key, value string) error {
	_, err := s.db.Exec(
		s.rebind(`INSERT INTO kv_store (key, value, updated) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated = CURRENT_TIMESTAMP`),
		key, value,
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	utils.Log("Stored key %s (%d bytes)", key, len(value))
	return nil
}

// Close releases the underlying connection pool
func (s *Store) Close() error {
	return s.db.Close()
}

// rebind rewrites ? placeholders into the driver's positional form
func (s *Store) rebind(query string) string {
	return Rebind(s.driver, query)
}

// Rebind converts ? placeholders to $1, $2, ... for postgres.
func Rebind(driver Driver, query string) string {
	if driver != PostgresDriver {
		return query
	}

	var sb strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&sb, "$%d", n)
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}
