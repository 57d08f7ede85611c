// Package models defines the persisted entities and the client-facing body shapes.
package models

import "time"

// ProjectStatus enumerates the lifecycle states of a project.
type ProjectStatus int

const (
	ProjectNotStarted ProjectStatus = iota
	ProjectActive
	ProjectCompleted
)

// Valid reports whether the status is within the enum range.
func (s ProjectStatus) Valid() bool {
	return s >= ProjectNotStarted && s <= ProjectCompleted
}

// Project is the persisted project entity. The ID is assigned by the store on
// creation and is immutable afterwards.
type Project struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	StartDate      time.Time     `json:"startDate"`
	CompletionDate time.Time     `json:"completionDate"`
	Status         ProjectStatus `json:"status"`
	Priority       int           `json:"priority"`
}

// ProjectBody carries the writable project fields a client may supply on
// create or update. The ID is deliberately absent.
type ProjectBody struct {
	Name           string        `json:"name"`
	StartDate      time.Time     `json:"startDate"`
	CompletionDate time.Time     `json:"completionDate"`
	Status         ProjectStatus `json:"status"`
	Priority       int           `json:"priority"`
}

// BodyToProject maps a body onto a full project entity with the given id.
func BodyToProject(body ProjectBody, id int) *Project {
	return &Project{
		ID:             id,
		Name:           body.Name,
		StartDate:      body.StartDate,
		CompletionDate: body.CompletionDate,
		Status:         body.Status,
		Priority:       body.Priority,
	}
}

// ProjectToBody maps a project entity back to its writable fields.
func ProjectToBody(p *Project) ProjectBody {
	return ProjectBody{
		Name:           p.Name,
		StartDate:      p.StartDate,
		CompletionDate: p.CompletionDate,
		Status:         p.Status,
		Priority:       p.Priority,
	}
}

// ProjectFilter holds the independently optional criteria for filtering
// projects. A nil field means the criterion is absent. When an exact value
// and its min/max range are both supplied, the exact value wins.
type ProjectFilter struct {
	Name *string

	StartDate    *time.Time
	MinStartDate *time.Time
	MaxStartDate *time.Time

	CompletionDate    *time.Time
	MinCompletionDate *time.Time
	MaxCompletionDate *time.Time

	Status *ProjectStatus

	Priority    *int
	MinPriority *int
	MaxPriority *int
}
