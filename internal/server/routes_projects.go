package server

import (
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

func (a *API) handleListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := a.projects.GetAllProjects(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (a *API) handleGetProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	project, err := a.projects.GetProjectByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (a *API) handleCreateProject(w http.ResponseWriter, r *http.Request) {
	var body models.ProjectBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	created, err := a.projects.CreateProject(r.Context(), body)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/projects/%d", created.ID))
	writeJSON(w, http.StatusCreated, created)
}

func (a *API) handleUpdateProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	var body models.ProjectBody
	if err := decodeJSON(w, r, &body); err != nil {
		writeDecodeError(w, err)
		return
	}

	updated, err := a.projects.UpdateProject(r.Context(), id, body)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

func (a *API) handleDeleteProject(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r)
	if !ok {
		notFound(w)
		return
	}

	if err := a.projects.DeleteProject(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (a *API) handleFilterProjects(w http.ResponseWriter, r *http.Request) {
	filter, err := parseProjectFilter(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	projects, err := a.projects.FilterProjects(r.Context(), filter)
	if err != nil {
		writeServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

// pathID extracts the integer {id} path segment.
func pathID(r *http.Request) (int, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// parseProjectFilter reads the independently optional filter criteria from
// the query string. Every criterion is absent unless its parameter is set.
func parseProjectFilter(query url.Values) (models.ProjectFilter, error) {
	var filter models.ProjectFilter

	if name := query.Get("name"); name != "" {
		filter.Name = &name
	}

	var err error
	if filter.StartDate, err = queryDate(query, "startDate"); err != nil {
		return filter, err
	}
	if filter.MinStartDate, err = queryDate(query, "minStartDate"); err != nil {
		return filter, err
	}
	if filter.MaxStartDate, err = queryDate(query, "maxStartDate"); err != nil {
		return filter, err
	}
	if filter.CompletionDate, err = queryDate(query, "completionDate"); err != nil {
		return filter, err
	}
	if filter.MinCompletionDate, err = queryDate(query, "minCompletionDate"); err != nil {
		return filter, err
	}
	if filter.MaxCompletionDate, err = queryDate(query, "maxCompletionDate"); err != nil {
		return filter, err
	}

	if raw := query.Get("status"); raw != "" {
		value, err := strconv.Atoi(raw)
		if err != nil {
			return filter, fmt.Errorf("invalid status %q", raw)
		}
		status := models.ProjectStatus(value)
		filter.Status = &status
	}

	if filter.Priority, err = queryInt(query, "priority"); err != nil {
		return filter, err
	}
	if filter.MinPriority, err = queryInt(query, "minPriority"); err != nil {
		return filter, err
	}
	if filter.MaxPriority, err = queryInt(query, "maxPriority"); err != nil {
		return filter, err
	}

	return filter, nil
}

// queryDate parses an optional date parameter, accepting a calendar date or
// a full RFC 3339 timestamp.
func queryDate(query url.Values, key string) (*time.Time, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}

	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, raw); err == nil {
			return &t, nil
		}
	}
	return nil, fmt.Errorf("invalid date %q for %s", raw, key)
}

// queryInt parses an optional integer parameter.
func queryInt(query url.Values, key string) (*int, error) {
	raw := query.Get(key)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid value %q for %s", raw, key)
	}
	return &value, nil
}
