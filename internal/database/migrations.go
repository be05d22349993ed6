package database

import (
	"context"

	"github.com/jmoiron/sqlx"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sqlx.DB) error {
	return withTx(ctx, db, func(tx *sqlx.Tx) error {
		// One row per named slot; the value is an opaque serialized snapshot
		_, err := tx.ExecContext(ctx, `
			CREATE TABLE IF NOT EXISTS slots (
				name TEXT PRIMARY KEY,
				value TEXT NOT NULL,
				updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
			)
		`)
		return err
	})
}
