package database

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/thenoetrevino/tasktracker/internal/models"
	_ "modernc.org/sqlite"
)

// ============================================================================
// DATABASE SETUP HELPERS
// ============================================================================

// setupTestDB creates an in-memory database and runs migrations
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	// Enable foreign key constraints
	_, err = db.Exec("PRAGMA foreign_keys = ON")
	if err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}

	if err := runMigrations(context.Background(), db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// ============================================================================
// FIXTURE HELPERS
// ============================================================================

func testProjectBody(name string) models.ProjectBody {
	return models.ProjectBody{
		Name:           name,
		StartDate:      time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		CompletionDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Status:         models.ProjectActive,
		Priority:       5,
	}
}

func testAssignmentBody(name string, parentID int) models.AssignmentBody {
	return models.AssignmentBody{
		Name:            name,
		Status:          models.AssignmentToDo,
		Description:     "test description",
		Priority:        3,
		ParentProjectID: parentID,
	}
}

// createTestProject inserts a project and fails the test on error
func createTestProject(t *testing.T, repo *Repository, body models.ProjectBody) *models.Project {
	t.Helper()
	project, err := repo.CreateProject(context.Background(), body)
	if err != nil {
		t.Fatalf("Failed to create test project: %v", err)
	}
	return project
}

// createTestAssignment inserts an assignment and fails the test on error
func createTestAssignment(t *testing.T, repo *Repository, body models.AssignmentBody) *models.Assignment {
	t.Helper()
	assignment, err := repo.CreateAssignment(context.Background(), body)
	if err != nil {
		t.Fatalf("Failed to create test assignment: %v", err)
	}
	return assignment
}
