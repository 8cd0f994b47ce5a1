package handler

import (
	"net/http"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/go-chi/chi/v5"
)

const historyPerPage = 15

type RoleHandler struct {
	Responder
	roleService *service.RoleService
}

func NewRoleHandler(roleService *service.RoleService, rs Responder) *RoleHandler {
	return &RoleHandler{Responder: rs, roleService: roleService}
}

// Assign handles POST /roles/{id}/users.
func (h *RoleHandler) Assign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "assign role")
		return
	}
	roleID, err := pathUUID(chi.URLParam(r, "id"), "role_id")
	if err != nil {
		h.handleError(w, r, err, "assign role")
		return
	}

	input := service.AssignRoleInput{}
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "assign role")
		return
	}
	input.RoleID = roleID

	logs, err := h.roleService.Assign(r.Context(), actor, input)
	if err != nil {
		h.handleError(w, r, err, "assign role")
		return
	}
	h.respondWithData(w, http.StatusOK, logs, "Role assigned")
}

// Detach handles DELETE /roles/{id}/users/{userID}.
func (h *RoleHandler) Detach(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "remove role")
		return
	}
	roleID, err := pathUUID(chi.URLParam(r, "id"), "role_id")
	if err != nil {
		h.handleError(w, r, err, "remove role")
		return
	}
	userID, err := pathUUID(chi.URLParam(r, "userID"), "user_id")
	if err != nil {
		h.handleError(w, r, err, "remove role")
		return
	}

	log, err := h.roleService.Detach(r.Context(), actor, service.DetachRoleInput{RoleID: roleID, UserID: userID})
	if err != nil {
		h.handleError(w, r, err, "remove role")
		return
	}
	h.respondWithData(w, http.StatusOK, log, "Role removed")
}

// AssignFromBody handles POST /roles/assign, reading role_id from the body.
func (h *RoleHandler) AssignFromBody(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "assign role")
		return
	}

	input := service.AssignRoleInput{}
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "assign role")
		return
	}

	logs, err := h.roleService.Assign(r.Context(), actor, input)
	if err != nil {
		h.handleError(w, r, err, "assign role")
		return
	}
	h.respondWithData(w, http.StatusOK, logs, "Role assigned")
}

// DetachFromBody handles POST /roles/detach.
func (h *RoleHandler) DetachFromBody(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "remove role")
		return
	}

	input := service.DetachRoleInput{}
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "remove role")
		return
	}

	log, err := h.roleService.Detach(r.Context(), actor, input)
	if err != nil {
		h.handleError(w, r, err, "remove role")
		return
	}
	h.respondWithData(w, http.StatusOK, log, "Role removed")
}

// History handles GET /roles/{id}/history.
func (h *RoleHandler) History(w http.ResponseWriter, r *http.Request) {
	roleID, err := pathUUID(chi.URLParam(r, "id"), "role_id")
	if err != nil {
		h.handleError(w, r, err, "retrieve role history")
		return
	}

	query := r.URL.Query()
	affiliateID, err := queryUUID(query, "affiliate_id")
	if err != nil {
		h.handleError(w, r, err, "retrieve role history")
		return
	}

	page, err := h.roleService.History(r.Context(), roleID, service.HistoryQuery{
		Type:        strings.TrimSpace(query.Get("type")),
		AffiliateID: affiliateID,
	}, repository.ParsePageRequest(query, historyPerPage))
	if err != nil {
		h.handleError(w, r, err, "retrieve role history")
		return
	}
	respondWithPage(h.Responder, w, page)
}

// Tree handles GET /roles/tree.
func (h *RoleHandler) Tree(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.Tree(r.Context())
	if err != nil {
		h.handleError(w, r, err, "retrieve roles")
		return
	}
	h.respondWithData(w, http.StatusOK, roles, "")
}

// Selectable handles GET /roles/selectable.
func (h *RoleHandler) Selectable(w http.ResponseWriter, r *http.Request) {
	roles, err := h.roleService.Selectable(r.Context())
	if err != nil {
		h.handleError(w, r, err, "retrieve roles")
		return
	}
	h.respondWithData(w, http.StatusOK, roles, "")
}
