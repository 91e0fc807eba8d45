package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/tordrt/biaslab/internal/content"
	"github.com/tordrt/biaslab/internal/dataset"
	"github.com/tordrt/biaslab/internal/lessonplan"
)

type errorResponse struct {
	Message string `json:"message"`
}

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, errorResponse{Message: message})
}

// statusFor maps domain errors to HTTP statuses. Unknown errors are 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, lessonplan.ErrNotFound),
		errors.Is(err, content.ErrUnknownCategory):
		return http.StatusNotFound
	case errors.Is(err, dataset.ErrInvalidAttribute),
		errors.Is(err, dataset.ErrEmptyGroup),
		errors.Is(err, lessonplan.ErrMissingField),
		errors.Is(err, lessonplan.ErrInvalidLevel),
		errors.Is(err, lessonplan.ErrInvalidDuration),
		errors.Is(err, lessonplan.ErrInvalidSubject),
		errors.Is(err, errBadRequest):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// fail writes err as a JSON error. Internal errors are logged and hidden
// from the client.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		respondError(w, status, "internal server error")
		return
	}
	respondError(w, status, err.Error())
}
