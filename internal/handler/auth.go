// internal/handler/auth.go
package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/middleware"
	"github.com/dangerclosesec/orgadmin/internal/service"
)

// AuthHandler serves the session sync endpoints.
type AuthHandler struct {
	Responder
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService, rs Responder) *AuthHandler {
	return &AuthHandler{
		Responder:   rs,
		authService: authService,
	}
}

// CheckUser handles POST /auth/check-user. It is public: the identity
// provider calls it before creating a session.
func (h *AuthHandler) CheckUser(w http.ResponseWriter, r *http.Request) {
	var input service.CheckUserInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "check user")
		return
	}

	output, err := h.authService.CheckUser(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err, "check user")
		return
	}
	h.respondWithData(w, http.StatusOK, output, "")
}

// RolesPermissions handles GET /auth/roles-permissions for the current user.
func (h *AuthHandler) RolesPermissions(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.handleError(w, r, domain.ErrUnauthorized, "load roles and permissions")
		return
	}

	output, err := h.authService.RolesPermissions(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err, "load roles and permissions")
		return
	}
	h.respondWithData(w, http.StatusOK, output, "")
}
