package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/isdelr/bloglist-be/internal/models"
	"github.com/rs/zerolog/log"
)

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("Failed to write JSON response")
	}
}

// writeError sends a JSON error body with the given status code.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// respondError translates a service or validation failure into an HTTP
// response. Anything outside the known taxonomy becomes a plain 500.
func respondError(w http.ResponseWriter, err error) {
	var validationErr *models.ValidationError

	switch {
	case errors.As(err, &validationErr):
		writeError(w, http.StatusBadRequest, validationErr.Message)
	case errors.Is(err, models.ErrMalformedID):
		writeError(w, http.StatusBadRequest, "malformatted id")
	case errors.Is(err, models.ErrDuplicateUsername):
		writeError(w, http.StatusBadRequest, models.ErrDuplicateUsername.Error())
	case errors.Is(err, models.ErrTokenExpired):
		writeError(w, http.StatusUnauthorized, "token expired")
	case errors.Is(err, models.ErrTokenInvalid):
		writeError(w, http.StatusUnauthorized, "token invalid")
	case errors.Is(err, models.ErrTokenMissing):
		writeError(w, http.StatusUnauthorized, "token missing or invalid")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, models.ErrInvalidCredentials.Error())
	case errors.Is(err, models.ErrNotOwner):
		writeError(w, http.StatusForbidden, models.ErrNotOwner.Error())
	case errors.Is(err, models.ErrNotFound):
		w.WriteHeader(http.StatusNotFound)
	default:
		log.Error().Err(err).Msg("Unhandled error")
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}

// UnknownEndpoint responds to requests for routes that do not exist.
func UnknownEndpoint(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusNotFound, "unknown endpoint")
}
