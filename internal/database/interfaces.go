// Package database defines repository interfaces for data access
package database

import (
	"context"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

// DataStore defines the unified interface for all data operations needed by
// the services. This interface enables swapping the store in unit tests.
type DataStore interface {
	// Projects
	CreateProject(ctx context.Context, body models.ProjectBody) (*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id int, body models.ProjectBody) error
	DeleteProject(ctx context.Context, id int) error
	ProjectExists(ctx context.Context, id int) (bool, error)
	FilterProjects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error)

	// Assignments
	CreateAssignment(ctx context.Context, body models.AssignmentBody) (*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, id int) (*models.Assignment, error)
	GetAllAssignments(ctx context.Context) ([]*models.Assignment, error)
	UpdateAssignment(ctx context.Context, id int, body models.AssignmentBody) error
	DeleteAssignment(ctx context.Context, id int) error
	AssignmentExists(ctx context.Context, id int) (bool, error)
	SetAssignmentParent(ctx context.Context, assignmentID, projectID int) error
	GetAssignmentsByProject(ctx context.Context, projectID int) ([]*models.Assignment, error)
}
