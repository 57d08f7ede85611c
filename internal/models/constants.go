package models

// Priority bounds for both projects and assignments.
const (
	MinPriority = 0
	MaxPriority = 10
)
