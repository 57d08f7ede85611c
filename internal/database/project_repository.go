package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

// ProjectRepo handles all project-related database operations.
type ProjectRepo struct {
	db *sql.DB
}

const projectColumns = `id, name, start_date, completion_date, status, priority`

// scanProject scans a single project row.
func scanProject(row interface{ Scan(...any) error }) (*models.Project, error) {
	project := &models.Project{}
	var start, completion string
	err := row.Scan(&project.ID, &project.Name, &start, &completion, &project.Status, &project.Priority)
	if err != nil {
		return nil, err
	}
	if project.StartDate, err = timeFromDB(start); err != nil {
		return nil, err
	}
	if project.CompletionDate, err = timeFromDB(completion); err != nil {
		return nil, err
	}
	return project, nil
}

// CreateProject inserts a new project and returns the stored entity with its
// assigned id.
func (r *ProjectRepo) CreateProject(ctx context.Context, body models.ProjectBody) (*models.Project, error) {
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO projects (name, start_date, completion_date, status, priority) VALUES (?, ?, ?, ?, ?)`,
		body.Name, timeToDB(body.StartDate), timeToDB(body.CompletionDate), int(body.Status), body.Priority,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert project '%s': %w", body.Name, err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get project ID after insert: %w", err)
	}

	return r.GetProjectByID(ctx, int(id))
}

// GetProjectByID retrieves a project by its ID
func (r *ProjectRepo) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+projectColumns+` FROM projects WHERE id = ?`, id)
	project, err := scanProject(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("project %d: %w", id, models.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project %d: %w", id, err)
	}
	return project, nil
}

// GetAllProjects retrieves all projects ordered by ID
func (r *ProjectRepo) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return r.queryProjects(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

// UpdateProject replaces every writable field of the project with the body.
func (r *ProjectRepo) UpdateProject(ctx context.Context, id int, body models.ProjectBody) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE projects SET name = ?, start_date = ?, completion_date = ?, status = ?, priority = ? WHERE id = ?`,
		body.Name, timeToDB(body.StartDate), timeToDB(body.CompletionDate), int(body.Status), body.Priority, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update project %d: %w", id, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows for project %d: %w", id, err)
	}
	if affected == 0 {
		return fmt.Errorf("project %d: %w", id, models.ErrNotFound)
	}
	return nil
}

// DeleteProject removes a project and detaches its assignments in a single
// transaction: every assignment referencing the project has its parent reset
// to 0 before the project row is removed, so a crash can never leave
// assignments pointing at a deleted project.
func (r *ProjectRepo) DeleteProject(ctx context.Context, id int) error {
	return withTx(ctx, r.db, func(tx *sql.Tx) error {
		_, err := tx.ExecContext(ctx,
			`UPDATE assignments SET parent_project_id = 0 WHERE parent_project_id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to detach assignments for project %d: %w", id, err)
		}

		result, err := tx.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
		if err != nil {
			return fmt.Errorf("failed to delete project %d: %w", id, err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get affected rows for project %d: %w", id, err)
		}
		if affected == 0 {
			return fmt.Errorf("project %d: %w", id, models.ErrNotFound)
		}
		return nil
	})
}

// ProjectExists reports whether a project with the given id exists
func (r *ProjectRepo) ProjectExists(ctx context.Context, id int) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM projects WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check project %d existence: %w", id, err)
	}
	return exists, nil
}

// FilterProjects retrieves the projects matching every supplied criterion.
// Criteria are AND-composed; an empty filter returns all projects.
func (r *ProjectRepo) FilterProjects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	var (
		clauses []string
		args    []any
	)

	if filter.Name != nil {
		clauses = append(clauses, `LOWER(name) LIKE ?`)
		args = append(args, "%"+strings.ToLower(*filter.Name)+"%")
	}

	if filter.StartDate != nil {
		clauses = append(clauses, `start_date = ?`)
		args = append(args, timeToDB(*filter.StartDate))
	} else {
		if filter.MinStartDate != nil {
			clauses = append(clauses, `start_date >= ?`)
			args = append(args, timeToDB(*filter.MinStartDate))
		}
		if filter.MaxStartDate != nil {
			clauses = append(clauses, `start_date <= ?`)
			args = append(args, timeToDB(*filter.MaxStartDate))
		}
	}

	if filter.CompletionDate != nil {
		clauses = append(clauses, `completion_date = ?`)
		args = append(args, timeToDB(*filter.CompletionDate))
	} else {
		if filter.MinCompletionDate != nil {
			clauses = append(clauses, `completion_date >= ?`)
			args = append(args, timeToDB(*filter.MinCompletionDate))
		}
		if filter.MaxCompletionDate != nil {
			clauses = append(clauses, `completion_date <= ?`)
			args = append(args, timeToDB(*filter.MaxCompletionDate))
		}
	}

	if filter.Status != nil {
		clauses = append(clauses, `status = ?`)
		args = append(args, int(*filter.Status))
	}

	if filter.Priority != nil {
		clauses = append(clauses, `priority = ?`)
		args = append(args, *filter.Priority)
	} else {
		if filter.MinPriority != nil {
			clauses = append(clauses, `priority >= ?`)
			args = append(args, *filter.MinPriority)
		}
		if filter.MaxPriority != nil {
			clauses = append(clauses, `priority <= ?`)
			args = append(args, *filter.MaxPriority)
		}
	}

	query := `SELECT ` + projectColumns + ` FROM projects`
	if len(clauses) > 0 {
		query += ` WHERE ` + strings.Join(clauses, ` AND `)
	}
	query += ` ORDER BY id`

	return r.queryProjects(ctx, query, args...)
}

// queryProjects runs a query returning project rows and scans them all.
func (r *ProjectRepo) queryProjects(ctx context.Context, query string, args ...any) ([]*models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query projects: %w", err)
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	projects := make([]*models.Project, 0, 10)
	for rows.Next() {
		project, err := scanProject(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, project)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}
	return projects, nil
}
