package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if needed
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create bookings table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS bookings (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			reference TEXT NOT NULL UNIQUE,
			weeks INTEGER NOT NULL CHECK (weeks > 0),
			days INTEGER NOT NULL,
			price INTEGER NOT NULL,
			start_date TEXT NOT NULL,
			end_date TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return err
	}

	// Listings are newest first
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_bookings_created
		ON bookings(created_at DESC, id DESC)
	`)
	return err
}
