package repository

import (
	"fmt"

	"github.com/jmoiron/sqlx"
)

const postgresSchema = `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		payload BYTEA NOT NULL,
		created_at TIMESTAMPTZ NOT NULL,
		updated_at TIMESTAMPTZ NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_user_created
		ON scenarios(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_scenarios_updated_at
		ON scenarios(updated_at);
`

// go-sqlite3 scans TIMESTAMP columns back into time.Time
const sqliteSchema = `
	CREATE TABLE IF NOT EXISTS scenarios (
		id TEXT PRIMARY KEY,
		user_id TEXT NOT NULL,
		kind TEXT NOT NULL,
		name TEXT NOT NULL,
		payload BLOB NOT NULL,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_scenarios_user_created
		ON scenarios(user_id, created_at DESC);
	CREATE INDEX IF NOT EXISTS idx_scenarios_updated_at
		ON scenarios(updated_at);
`

// Migrate creates the schema for the connection's driver
func Migrate(db *sqlx.DB) error {
	var schema string
	switch db.DriverName() {
	case "postgres":
		schema = postgresSchema
	case "sqlite3":
		schema = sqliteSchema
	default:
		return fmt.Errorf("unsupported database driver %q", db.DriverName())
	}

	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
