package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"time"
)

// withTx executes a function within a database transaction.
// It automatically handles begin, rollback on error, and commit on success.
func withTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("failed to rollback transaction: %v", err)
		}
	}()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// dbTimeLayout is the fixed-width UTC text format for stored dates. Every
// component is zero-padded, so lexicographic SQL comparisons are chronological
// across the full year range, and the 9-digit fraction keeps sub-second
// precision through a round trip.
const dbTimeLayout = "2006-01-02 15:04:05.000000000"

// timeToDB converts a time.Time to the UTC text value stored in the database.
func timeToDB(t time.Time) string {
	return t.UTC().Format(dbTimeLayout)
}

// timeFromDB converts a stored text value back to a UTC time.Time.
func timeFromDB(s string) (time.Time, error) {
	t, err := time.Parse(dbTimeLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("failed to parse stored date %q: %w", s, err)
	}
	return t, nil
}
