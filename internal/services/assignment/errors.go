package assignment

import (
	"fmt"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

// Domain errors for the assignment service. Each wraps models.ErrValidation
// so callers can classify it with errors.Is; the text before the wrap is the
// client-facing reason.
var (
	ErrEmptyName       = fmt.Errorf("assignment name cannot be empty: %w", models.ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("assignment status is out of range: %w", models.ErrValidation)
	ErrInvalidPriority = fmt.Errorf("assignment priority must be between 0 and 10: %w", models.ErrValidation)

	// ErrInvalidParentProject keeps the exact reason string the API has
	// always reported for a parent reference to a missing project.
	ErrInvalidParentProject = fmt.Errorf("Invalid Parent Project ID: %w", models.ErrValidation)
)
