package project

import (
	"fmt"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

// Domain errors for the project service. Each wraps models.ErrValidation so
// callers can classify it with errors.Is; the text before the wrap is the
// client-facing reason.
var (
	ErrEmptyName       = fmt.Errorf("project name cannot be empty: %w", models.ErrValidation)
	ErrInvalidStatus   = fmt.Errorf("project status is out of range: %w", models.ErrValidation)
	ErrInvalidPriority = fmt.Errorf("project priority must be between 0 and 10: %w", models.ErrValidation)

	// ErrIncorrectCompletionDate keeps the exact reason string the API has
	// always reported for a completion date at or before the start date.
	ErrIncorrectCompletionDate = fmt.Errorf("Incorrect Completion Date: %w", models.ErrValidation)
)
