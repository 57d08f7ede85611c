package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

// AssignmentRepo handles all assignment-related database operations.
type AssignmentRepo struct {
	db *sql.DB
}

const assignmentColumns = `id, name, status, description, priority, parent_project_id`

// CreateAssignment inserts a new assignment and returns the stored entity
// with its assigned id.
func (r *AssignmentRepo) CreateAssignment(ctx context.Context, body models.AssignmentBody) (*models.Assignment, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO assignments (name, status, description, priority, parent_project_id) VALUES (?, ?, ?, ?, ?)`,
		body.Name, int(body.Status), body.Description, body.Priority, body.ParentProjectID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert assignment '%s': %w", body.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment ID after insert: %w", err)
	}

	return r.GetAssignmentByID(ctx, int(id))
}

// GetAssignmentByID retrieves an assignment by its ID
func (r *AssignmentRepo) GetAssignmentByID(ctx context.Context, id int) (*models.Assignment, error) {
	assignment := &models.Assignment{}
	err := r.db.QueryRowContext(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE id = ?`, id,
	).Scan(&assignment.ID, &assignment.Name, &assignment.Status, &assignment.Description,
		&assignment.Priority, &assignment.ParentProjectID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("assignment %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get assignment %d: %w", id, err)
	}
	return assignment, nil
}

// GetAllAssignments retrieves all assignments ordered by ID
func (r *AssignmentRepo) GetAllAssignments(ctx context.Context) ([]*models.Assignment, error) {
	return r.queryAssignments(ctx, `SELECT `+assignmentColumns+` FROM assignments ORDER BY id`)
}

// UpdateAssignment replaces every writable field of the assignment with the body.
func (r *AssignmentRepo) UpdateAssignment(ctx context.Context, id int, body models.AssignmentBody) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE assignments SET name = ?, status = ?, description = ?, priority = ?, parent_project_id = ? WHERE id = ?`,
		body.Name, int(body.Status), body.Description, body.Priority, body.ParentProjectID, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update assignment %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for assignment %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("assignment %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// DeleteAssignment removes an assignment by id
func (r *AssignmentRepo) DeleteAssignment(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM assignments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete assignment %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for assignment %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("assignment %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// AssignmentExists reports whether an assignment with the given id exists
func (r *AssignmentRepo) AssignmentExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM assignments WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check assignment %d existence: %w", id, err)
	}
	return exists, nil
}

// SetAssignmentParent mutates only the parent_project_id of an assignment.
// projectID 0 detaches the assignment from any project.
func (r *AssignmentRepo) SetAssignmentParent(ctx context.Context, assignmentID, projectID int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE assignments SET parent_project_id = ? WHERE id = ?`, projectID, assignmentID)
	if err != nil {
		return fmt.Errorf("failed to set parent project for assignment %d: %w", assignmentID, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for assignment %d: %w", assignmentID, err)
	}
	if affected == 0 {
		return fmt.Errorf("assignment %d: %w", assignmentID, models.ErrNotFound)
	}
	return nil
}

// GetAssignmentsByProject retrieves the assignments with the given parent
// project id ordered by priority descending. projectID 0 returns the
// assignments with no parent project.
func (r *AssignmentRepo) GetAssignmentsByProject(ctx context.Context, projectID int) ([]*models.Assignment, error) {
	return r.queryAssignments(ctx,
		`SELECT `+assignmentColumns+` FROM assignments WHERE parent_project_id = ? ORDER BY priority DESC`,
		projectID)
}

// queryAssignments runs a query returning assignment rows and scans them all.
func (r *AssignmentRepo) queryAssignments(ctx context.Context, query string, args ...any) ([]*models.Assignment, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignments: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	assignments := make([]*models.Assignment, 0, 10)
	for rows.Next() {
		assignment := &models.Assignment{}
		if err := rows.Scan(&assignment.ID, &assignment.Name, &assignment.Status,
			&assignment.Description, &assignment.Priority, &assignment.ParentProjectID); err != nil {
			return nil, fmt.Errorf("failed to scan assignment row: %w", err)
		}
		assignments = append(assignments, assignment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating assignment rows: %w", err)
	}
	return assignments, nil
}
