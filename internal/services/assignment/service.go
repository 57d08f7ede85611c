// Package assignment implements the business operations on assignments,
// including maintenance of the optional parent project reference.
package assignment

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

// Service defines all assignment-related business operations
type Service interface {
	// Read operations
	GetAllAssignments(ctx context.Context) ([]*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, id int) (*models.Assignment, error)
	GetAssignmentsByProject(ctx context.Context, projectID int) ([]*models.Assignment, error)

	// Write operations
	CreateAssignment(ctx context.Context, body models.AssignmentBody) (*models.Assignment, error)
	UpdateAssignment(ctx context.Context, id int, body models.AssignmentBody) (*models.Assignment, error)
	DeleteAssignment(ctx context.Context, id int) error
	SetParentProject(ctx context.Context, assignmentID, projectID int) (*models.Assignment, error)
}

// repository defines the data access methods needed by the assignment service.
// This interface is private to the service layer.
type repository interface {
	CreateAssignment(ctx context.Context, body models.AssignmentBody) (*models.Assignment, error)
	GetAssignmentByID(ctx context.Context, id int) (*models.Assignment, error)
	GetAllAssignments(ctx context.Context) ([]*models.Assignment, error)
	UpdateAssignment(ctx context.Context, id int, body models.AssignmentBody) error
	DeleteAssignment(ctx context.Context, id int) error
	AssignmentExists(ctx context.Context, id int) (bool, error)
	SetAssignmentParent(ctx context.Context, assignmentID, projectID int) error
	GetAssignmentsByProject(ctx context.Context, projectID int) ([]*models.Assignment, error)
	ProjectExists(ctx context.Context, id int) (bool, error)
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new assignment service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllAssignments retrieves all assignments
func (s *service) GetAllAssignments(ctx context.Context) ([]*models.Assignment, error) {
	return s.repo.GetAllAssignments(ctx)
}

// GetAssignmentByID retrieves a specific assignment
func (s *service) GetAssignmentByID(ctx context.Context, id int) (*models.Assignment, error) {
	return s.repo.GetAssignmentByID(ctx, id)
}

// GetAssignmentsByProject retrieves the assignments attached to a project,
// ordered by priority descending. projectID 0 is valid and means "assignments
// with no parent project"; any other unknown id is reported as not found.
func (s *service) GetAssignmentsByProject(ctx context.Context, projectID int) ([]*models.Assignment, error) {
	if projectID != models.NoParentProject {
		exists, err := s.repo.ProjectExists(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check project: %w", err)
		}
		if !exists {
			return nil, fmt.Errorf("project %d: %w", projectID, models.ErrNotFound)
		}
	}
	return s.repo.GetAssignmentsByProject(ctx, projectID)
}

// CreateAssignment creates a new assignment with validation
func (s *service) CreateAssignment(ctx context.Context, body models.AssignmentBody) (*models.Assignment, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}
	if err := s.validateParentProject(ctx, body.ParentProjectID); err != nil {
		return nil, err
	}

	assignment, err := s.repo.CreateAssignment(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create assignment: %w", err)
	}
	return assignment, nil
}

// UpdateAssignment replaces an existing assignment with the body (full
// replacement semantics) and returns the updated entity. Field validation
// comes before the existence lookup, the parent reference check after.
func (s *service) UpdateAssignment(ctx context.Context, id int, body models.AssignmentBody) (*models.Assignment, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	exists, err := s.repo.AssignmentExists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("assignment %d: %w", id, models.ErrNotFound)
	}

	if err := s.validateParentProject(ctx, body.ParentProjectID); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateAssignment(ctx, id, body); err != nil {
		return nil, fmt.Errorf("failed to update assignment: %w", err)
	}
	return s.repo.GetAssignmentByID(ctx, id)
}

// DeleteAssignment removes an assignment by id
func (s *service) DeleteAssignment(ctx context.Context, id int) error {
	return s.repo.DeleteAssignment(ctx, id)
}

// SetParentProject mutates only the assignment's parent project reference and
// returns the updated assignment. projectID 0 always succeeds and detaches;
// an unknown assignment or non-zero unknown project is reported as not found.
func (s *service) SetParentProject(ctx context.Context, assignmentID, projectID int) (*models.Assignment, error) {
	exists, err := s.repo.AssignmentExists(ctx, assignmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to check assignment: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("assignment %d: %w", assignmentID, models.ErrNotFound)
	}

	if projectID != models.NoParentProject {
		projectExists, err := s.repo.ProjectExists(ctx, projectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check project: %w", err)
		}
		if !projectExists {
			return nil, fmt.Errorf("project %d: %w", projectID, models.ErrNotFound)
		}
	}

	if err := s.repo.SetAssignmentParent(ctx, assignmentID, projectID); err != nil {
		return nil, fmt.Errorf("failed to set parent project: %w", err)
	}
	return s.repo.GetAssignmentByID(ctx, assignmentID)
}

// validateBody validates the writable assignment fields shared by create and
// update.
func validateBody(body models.AssignmentBody) error {
	if body.Name == "" {
		return ErrEmptyName
	}
	if !body.Status.Valid() {
		return ErrInvalidStatus
	}
	if body.Priority < models.MinPriority || body.Priority > models.MaxPriority {
		return ErrInvalidPriority
	}
	return nil
}

// validateParentProject checks that a non-zero parent reference points at an
// existing project.
func (s *service) validateParentProject(ctx context.Context, parentProjectID int) error {
	if parentProjectID == models.NoParentProject {
		return nil
	}
	exists, err := s.repo.ProjectExists(ctx, parentProjectID)
	if err != nil {
		return fmt.Errorf("failed to check parent project: %w", err)
	}
	if !exists {
		return ErrInvalidParentProject
	}
	return nil
}
