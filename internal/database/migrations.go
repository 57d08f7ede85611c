package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema if it does not exist yet
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create projects table
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS projects (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			start_date TEXT NOT NULL,
			completion_date TEXT NOT NULL,
			status INTEGER NOT NULL DEFAULT 0,
			priority INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	// Create assignments table. parent_project_id is a weak reference:
	// 0 means "no parent project", so no FOREIGN KEY constraint is declared
	// and integrity is maintained by the services and the cascade detach.
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS assignments (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			status INTEGER NOT NULL DEFAULT 0,
			description TEXT NOT NULL DEFAULT '',
			priority INTEGER NOT NULL DEFAULT 0,
			parent_project_id INTEGER NOT NULL DEFAULT 0
		)
	`)
	if err != nil {
		return err
	}

	// Create index for efficient by-project queries
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_assignments_parent
		ON assignments(parent_project_id, priority)
	`)
	if err != nil {
		return err
	}

	return nil
}
