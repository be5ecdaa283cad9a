package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/isdelr/bloglist-be/internal/auth"
	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/rs/zerolog/log"
)

// LoginHandler handles authentication and token issuance.
type LoginHandler struct {
	service services.UserServiceProvider
	tokens  *auth.TokenManager
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(service services.UserServiceProvider, tokens *auth.TokenManager) *LoginHandler {
	return &LoginHandler{service: service, tokens: tokens}
}

// Login verifies credentials and responds with a signed identity token.
// The failure message is identical for unknown usernames and wrong
// passwords.
func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	var payload LoginPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := checkPayload(payload); err != nil {
		respondError(w, err)
		return
	}

	user, err := h.service.AuthenticateUser(payload.Username, payload.Password)
	if err != nil {
		log.Warn().Str("username", payload.Username).Msg("Failed authentication attempt")
		respondError(w, err)
		return
	}

	token, err := h.tokens.Issue(user)
	if err != nil {
		log.Error().Err(err).Str("user_id", user.ID).Msg("Failed to issue token")
		respondError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"token":    token,
		"username": user.Username,
		"name":     user.Name,
	})
}
