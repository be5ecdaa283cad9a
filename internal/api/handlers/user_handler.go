package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/rs/zerolog/log"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	service services.UserServiceProvider
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(service services.UserServiceProvider) *UserHandler {
	return &UserHandler{service: service}
}

// Register handles new user registration. The password minimum length is
// enforced here because only its hash ever reaches the store.
func (h *UserHandler) Register(w http.ResponseWriter, r *http.Request) {
	var payload RegisterPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkPayload(payload); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.service.CreateUser(payload.Username, payload.Name, payload.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", payload.Username).Msg("Failed to register user")
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

// GetAll handles the request to list all users with their blogs expanded.
func (h *UserHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.GetAllUsers()
	if err != nil {
		log.Error().Err(err).Msg("Failed to retrieve users")
		respondError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}
