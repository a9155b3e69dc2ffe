package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ConnectDB opens a connection for driver. For sqlite the dsn is a file path
// (or ":memory:"); for postgres it is a connection string.
func ConnectDB(driver Driver, dsn string) (*sql.DB, error) {
	switch driver {
	case SQLiteDriver:
		return connectSQLite(dsn)
	case PostgresDriver:
		db, err := sql.Open(string(PostgresDriver), dsn)
		if err != nil {
			return nil, err
		}
		if err := db.Ping(); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to ping database: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", driver)
	}
}

func connectSQLite(dbPath string) (*sql.DB, error) {
	if dbPath == ":memory:" {
		db, err := sql.Open(string(SQLiteDriver), dbPath)
		if err != nil {
			return nil, err
		}
		// Every pooled connection would get its own in-memory database
		db.SetMaxOpenConns(1)
		return db, nil
	}

	// Expand tilde to home directory if present
	if strings.HasPrefix(dbPath, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		dbPath = homeDir + dbPath[1:]
	}

	// Create the directory structure if it doesn't exist
	dbDir := filepath.Dir(dbPath)
	if dbDir != "." {
		if err := os.MkdirAll(dbDir, 0755); err != nil {
			return nil, err
		}
	}

	// SQLite will create the database file if it doesn't exist
	return sql.Open(string(SQLiteDriver), dbPath)
}

// EnsureSchema creates the key/value table if it doesn't exist
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS kv_store (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`)
	return err
}
