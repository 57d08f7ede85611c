// Package app wires the repository and services into a single container.
package app

import (
	"github.com/thenoetrevino/tasktracker/internal/database"
	assignmentservice "github.com/thenoetrevino/tasktracker/internal/services/assignment"
	projectservice "github.com/thenoetrevino/tasktracker/internal/services/project"
)

// App holds all application services and provides dependency injection.
type App struct {
	// Repository layer (direct database access)
	repo *database.Repository

	// Service layer (business logic)
	ProjectService    projectservice.Service
	AssignmentService assignmentservice.Service
}

// New creates a new App with all services initialized.
// This is the single entry point for creating the application container.
func New(repo *database.Repository) *App {
	return &App{
		repo:              repo,
		ProjectService:    projectservice.NewService(repo),
		AssignmentService: assignmentservice.NewService(repo),
	}
}

// Repo returns the underlying repository for direct database access.
func (a *App) Repo() *database.Repository {
	return a.repo
}
