// internal/middleware/auth.go
package middleware

// Usage:
//
//	r.Group(func(r chi.Router) {
//		r.Use(middleware.AuthMiddleware(tokenManager))
//		r.With(middleware.RequireRoles(users, model.RoleNationalAdmin)).Post("/roles/assign", roleHandler.Assign)
//	})

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/auth"
	"github.com/google/uuid"
)

// TokenCookie is the cookie relayed by the frontend when no Authorization
// header is sent.
const TokenCookie = "token"

type UserContextKey string

var UserIDKey UserContextKey = "orgadmin_user_id"

// RoleChecker answers whether a user holds any of the given roles.
type RoleChecker interface {
	HasAnyRole(ctx context.Context, userID uuid.UUID, slugs ...string) (bool, error)
}

// WithUserID stores the authenticated user id in ctx.
func WithUserID(ctx context.Context, id uuid.UUID) context.Context {
	return context.WithValue(ctx, UserIDKey, id)
}

// UserIDFromContext returns the authenticated user id.
func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(UserIDKey).(uuid.UUID)
	return id, ok && id != uuid.Nil
}

// bearerToken reads the token from the Authorization header, falling back to
// the token cookie.
func bearerToken(r *http.Request) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		parts := strings.Fields(authHeader)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return "", false
		}
		return parts[1], true
	}

	if c, err := r.Cookie(TokenCookie); err == nil && c.Value != "" {
		return c.Value, true
	}
	return "", false
}

// AuthMiddleware creates a middleware that validates JWT tokens
func AuthMiddleware(tokenManager *auth.TokenManager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Unauthenticated")
				return
			}

			claims, err := tokenManager.Validate(token)
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			userID, err := claims.UserUUID()
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUserID(r.Context(), userID)))
		})
	}
}

// RequireRoles rejects users holding none of the given role slugs.
func RequireRoles(checker RoleChecker, slugs ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID, ok := UserIDFromContext(r.Context())
			if !ok {
				respondWithError(w, http.StatusUnauthorized, "Unauthenticated")
				return
			}

			allowed, err := checker.HasAnyRole(r.Context(), userID, slugs...)
			if err != nil {
				slog.ErrorContext(r.Context(), "Failed to check roles", "error", err, "userID", userID)
				respondWithError(w, http.StatusInternalServerError, "An unexpected error occurred")
				return
			}
			if !allowed {
				respondWithError(w, http.StatusForbidden, "You do not have permission to perform this action")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// respondWithError sends a JSON error response
func respondWithError(w http.ResponseWriter, code int, message string) {
	respondWithJSON(w, code, map[string]interface{}{"success": false, "message": message})
}

// respondWithJSON sends a JSON response
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(payload)
}
