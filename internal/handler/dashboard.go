package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/middleware"
	"github.com/dangerclosesec/orgadmin/internal/service"
)

type DashboardHandler struct {
	Responder
	dashboardService *service.DashboardService
}

func NewDashboardHandler(dashboardService *service.DashboardService, rs Responder) *DashboardHandler {
	return &DashboardHandler{Responder: rs, dashboardService: dashboardService}
}

// Summary handles GET /dashboard for the authenticated member.
func (h *DashboardHandler) Summary(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.handleError(w, r, domain.ErrUnauthorized, "load dashboard")
		return
	}

	dashboard, err := h.dashboardService.Summary(r.Context(), userID)
	if err != nil {
		h.handleError(w, r, err, "load dashboard")
		return
	}
	h.respondWithData(w, http.StatusOK, dashboard, "")
}
