package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/isdelr/bloglist-be/internal/models"
)

type contextKey string

const userContextKey = contextKey("user")

// UserLoader resolves a verified token subject to a full user record.
type UserLoader interface {
	GetUserByID(id string) (models.User, error)
}

// UserFromContext extracts the authenticated user from the request context.
// Returns nil when the request carries no resolvable identity.
func UserFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(userContextKey).(*models.User)
	return user
}

// ExtractToken reads the bearer token from the Authorization header.
// A missing or differently-shaped header yields the empty string; absence
// is a valid outcome here, not an error.
func ExtractToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// Identify creates middleware that resolves the request's bearer token to a
// user and attaches it to the context. Resolution is best effort: no token,
// a bad or expired token, or an unknown user all leave the request without
// an identity, and the handler decides the consequence. The middleware never
// rejects a request itself.
func Identify(tm *TokenManager, users UserLoader) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenStr := ExtractToken(r)
			if tokenStr == "" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := tm.Verify(tokenStr)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			user, err := users.GetUserByID(claims.UserID)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userContextKey, &user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
