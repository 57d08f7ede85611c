package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/thenoetrevino/tasktracker/internal/models"
)

const maxJSONBodyBytes int64 = 1 << 20

func decodeJSON(w http.ResponseWriter, r *http.Request, target any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxJSONBodyBytes)
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	return decoder.Decode(target)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("write json failed: status=%d body_type=%T err=%v", status, body, err)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func notFound(w http.ResponseWriter) {
	writeError(w, http.StatusNotFound, "not found")
}

func writeDecodeError(w http.ResponseWriter, err error) {
	message := "invalid JSON"
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		message = fmt.Sprintf("request body too large (max %d bytes)", maxBytesErr.Limit)
	}
	writeError(w, http.StatusBadRequest, message)
}

// writeServiceError maps service errors onto HTTP statuses: validation
// failures become a 400 carrying the reason string, missing rows become a
// 404, and anything else is a storage failure reported as a 500.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrValidation):
		writeError(w, http.StatusBadRequest, validationReason(err))
	case errors.Is(err, models.ErrNotFound):
		notFound(w)
	default:
		log.Printf("internal error: %v", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

// validationReason strips the wrapped base sentinel from a validation error,
// leaving the human-readable reason (e.g. "Incorrect Completion Date").
func validationReason(err error) string {
	message := strings.TrimSpace(err.Error())
	suffix := ": " + models.ErrValidation.Error()
	if strings.HasSuffix(message, suffix) {
		message = strings.TrimSuffix(message, suffix)
	}
	if message == "" {
		message = "validation failed"
	}
	return message
}
