package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/taskflow/taskflow/internal/common"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeServiceError maps the service error taxonomy onto HTTP statuses.
// Messages are fixed per error kind; raw storage errors never reach the
// client.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, common.ErrEmailTaken):
		writeError(w, http.StatusConflict, "A user with this email already exists")
	case errors.Is(err, common.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, common.ErrNotFound):
		writeError(w, http.StatusNotFound, "Task not found")
	case errors.Is(err, common.ErrUnavailable):
		s.logger.Error(r.Context(), "storage unavailable", "error", err.Error())
		writeError(w, http.StatusServiceUnavailable, "Service temporarily unavailable")
	default:
		s.logger.Error(r.Context(), "unexpected error", "error", err.Error())
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
