package database

// Driver names a database/sql driver supported by the key/value store.
type Driver string

const (
	SQLiteDriver   Driver = "sqlite3"  // Default - file under the config dir
	PostgresDriver Driver = "postgres" // Shared server, addressed by DSN
)

