package database

import (
	"context"
	"fmt"
)

// Migrate creates the schema on startup. Statements are idempotent so the
// application can run against a fresh or existing database.
func (db *PostgresDB) Migrate(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS books (
			id          uuid PRIMARY KEY,
			title       text NOT NULL,
			image       text NOT NULL,
			genre       text NOT NULL,
			price       numeric(12,2) NOT NULL CHECK (price >= 0),
			description text NOT NULL,
			location    text,
			reviews     uuid[] NOT NULL DEFAULT '{}',
			created_at  timestamptz NOT NULL DEFAULT NOW(),
			updated_at  timestamptz NOT NULL DEFAULT NOW()
		)`,
		`CREATE TABLE IF NOT EXISTS reviews (
			id         uuid PRIMARY KEY,
			rating     int NOT NULL CHECK (rating BETWEEN 1 AND 5),
			body       text NOT NULL,
			created_at timestamptz NOT NULL DEFAULT NOW()
		)`,
		`CREATE INDEX IF NOT EXISTS idx_books_created_at ON books(created_at)`,
	}

	for _, stmt := range statements {
		if _, err := db.Pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}

	return nil
}
