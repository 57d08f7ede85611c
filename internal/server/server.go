// Package server exposes the project and assignment services over a JSON
// HTTP API.
package server

import (
	"net/http"

	"github.com/thenoetrevino/tasktracker/internal/services/assignment"
	"github.com/thenoetrevino/tasktracker/internal/services/project"
)

// API holds the services and wires them to HTTP routes.
type API struct {
	projects    project.Service
	assignments assignment.Service
	metrics     *Metrics
}

// NewAPI creates a new API over the given services.
func NewAPI(projects project.Service, assignments assignment.Service) *API {
	return &API{
		projects:    projects,
		assignments: assignments,
		metrics:     NewMetrics(),
	}
}

// Handler returns the fully routed HTTP handler.
//
// Literal segments ("FilterProjects", "AssignParentProject",
// "ViewProjectAssignments") take precedence over the {id} patterns, matching
// the API's historical route layout.
func (a *API) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /projects", a.handleListProjects)
	mux.HandleFunc("POST /projects", a.handleCreateProject)
	mux.HandleFunc("GET /projects/FilterProjects", a.handleFilterProjects)
	mux.HandleFunc("GET /projects/{id}", a.handleGetProject)
	mux.HandleFunc("PUT /projects/{id}", a.handleUpdateProject)
	mux.HandleFunc("DELETE /projects/{id}", a.handleDeleteProject)

	mux.HandleFunc("GET /assignments", a.handleListAssignments)
	mux.HandleFunc("POST /assignments", a.handleCreateAssignment)
	mux.HandleFunc("PUT /assignments/AssignParentProject", a.handleAssignParentProject)
	mux.HandleFunc("GET /assignments/ViewProjectAssignments", a.handleViewProjectAssignments)
	mux.HandleFunc("GET /assignments/{id}", a.handleGetAssignment)
	mux.HandleFunc("PUT /assignments/{id}", a.handleUpdateAssignment)
	mux.HandleFunc("DELETE /assignments/{id}", a.handleDeleteAssignment)

	mux.HandleFunc("GET /healthz", a.handleHealthz)
	mux.HandleFunc("GET /metrics", a.handleMetrics)

	return a.withMetrics(mux)
}

func (a *API) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (a *API) handleMetrics(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, a.metrics.GetSnapshot())
}

// statusRecorder captures the response status for metrics accounting.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(status int) {
	rec.status = status
	rec.ResponseWriter.WriteHeader(status)
}

// withMetrics counts every request and classifies error responses.
func (a *API) withMetrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		a.metrics.IncRequestsTotal()

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		switch {
		case rec.status >= 500:
			a.metrics.IncServerErrors()
		case rec.status >= 400:
			a.metrics.IncClientErrors()
		}
	})
}
