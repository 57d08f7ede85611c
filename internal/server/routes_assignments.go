package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

func (a *API) handleListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := a.assignments.GetAllAssignments(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (a *API) handleGetAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	assignment, err := a.assignments.GetAssignmentByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assignment)
}

func (a *API) handleCreateAssignment(w http.ResponseWriter, r *http.Request) {
	var body models.AssignmentBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := a.assignments.CreateAssignment(r.Context(), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/assignments/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var body models.AssignmentBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	updated, err := a.assignments.UpdateAssignment(r.Context(), id, body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	if err := a.assignments.DeleteAssignment(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (a *API) handleAssignParentProject(w http.ResponseWriter, r *http.Request) {
	assignmentID, err := strconv.Atoi(r.URL.Query().Get("assignmentId"))
	if err != nil {
		notFound(w)
		return
	}
	projectID, err := strconv.Atoi(r.URL.Query().Get("projectId"))
	if err != nil {
		notFound(w)
		return
	}

	updated, err := a.assignments.SetParentProject(r.Context(), assignmentID, projectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleViewProjectAssignments(w http.ResponseWriter, r *http.Request) {
	// An absent projectId means 0, the orphan list; a malformed one is 404.
	projectID := models.NoParentProject
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil {
			notFound(w)
			return
		}
		projectID = id
	}

	assignments, err := a.assignments.GetAssignmentsByProject(r.Context(), projectID)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}
