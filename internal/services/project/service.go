// Package project implements the business operations on projects.
package project

import (
	"context"
	"fmt"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

// Service defines all project-related business operations
type Service interface {
	// Read operations
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	FilterProjects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error)

	// Write operations
	CreateProject(ctx context.Context, body models.ProjectBody) (*models.Project, error)
	UpdateProject(ctx context.Context, id int, body models.ProjectBody) (*models.Project, error)
	DeleteProject(ctx context.Context, id int) error
}

// repository defines the data access methods needed by the project service.
// This interface is private to the service layer.
type repository interface {
	CreateProject(ctx context.Context, body models.ProjectBody) (*models.Project, error)
	GetProjectByID(ctx context.Context, id int) (*models.Project, error)
	GetAllProjects(ctx context.Context) ([]*models.Project, error)
	UpdateProject(ctx context.Context, id int, body models.ProjectBody) error
	DeleteProject(ctx context.Context, id int) error
	ProjectExists(ctx context.Context, id int) (bool, error)
	FilterProjects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error)
}

// service implements Service interface with private repository
type service struct {
	repo repository
}

// NewService creates a new project service
func NewService(repo repository) Service {
	return &service{repo: repo}
}

// GetAllProjects retrieves all projects
func (s *service) GetAllProjects(ctx context.Context) ([]*models.Project, error) {
	return s.repo.GetAllProjects(ctx)
}

// GetProjectByID retrieves a specific project
func (s *service) GetProjectByID(ctx context.Context, id int) (*models.Project, error) {
	return s.repo.GetProjectByID(ctx, id)
}

// FilterProjects retrieves the projects matching the supplied criteria.
// Pure read: criteria compose with AND semantics, an empty filter returns
// every project, and an exact date or priority suppresses its min/max range.
func (s *service) FilterProjects(ctx context.Context, filter models.ProjectFilter) ([]*models.Project, error) {
	normalizeFilter(&filter)
	return s.repo.FilterProjects(ctx, filter)
}

// CreateProject creates a new project with validation
func (s *service) CreateProject(ctx context.Context, body models.ProjectBody) (*models.Project, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}
	if !body.StartDate.Before(body.CompletionDate) {
		return nil, ErrIncorrectCompletionDate
	}

	project, err := s.repo.CreateProject(ctx, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// UpdateProject replaces an existing project with the body (full replacement
// semantics) and returns the updated entity.
func (s *service) UpdateProject(ctx context.Context, id int, body models.ProjectBody) (*models.Project, error) {
	if err := validateBody(body); err != nil {
		return nil, err
	}

	exists, err := s.repo.ProjectExists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check project: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("project %d: %w", id, models.ErrNotFound)
	}

	if !body.StartDate.Before(body.CompletionDate) {
		return nil, ErrIncorrectCompletionDate
	}

	if err := s.repo.UpdateProject(ctx, id, body); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}
	return s.repo.GetProjectByID(ctx, id)
}

// DeleteProject deletes a project. Dependent assignments are detached (their
// parent reset to 0), not deleted; the repository performs both durably in
// one transaction.
func (s *service) DeleteProject(ctx context.Context, id int) error {
	return s.repo.DeleteProject(ctx, id)
}

// validateBody validates the writable project fields shared by create and update
func validateBody(body models.ProjectBody) error {
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

// normalizeFilter drops range bounds that are overridden by an exact value.
func normalizeFilter(filter *models.ProjectFilter) {
	if filter.StartDate != nil {
		filter.MinStartDate = nil
		filter.MaxStartDate = nil
	}
	if filter.CompletionDate != nil {
		filter.MinCompletionDate = nil
		filter.MaxCompletionDate = nil
	}
	if filter.Priority != nil {
		filter.MinPriority = nil
		filter.MaxPriority = nil
	}
}
