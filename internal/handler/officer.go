package handler

import (
	"net/http"

	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/go-chi/chi/v5"
)

type OfficerHandler struct {
	Responder
	officerService *service.OfficerService
}

func NewOfficerHandler(officerService *service.OfficerService, rs Responder) *OfficerHandler {
	return &OfficerHandler{Responder: rs, officerService: officerService}
}

// Assign handles POST /affiliates/{affiliateID}/officers.
func (h *OfficerHandler) Assign(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "assign officer")
		return
	}
	affiliateID, err := pathUUID(chi.URLParam(r, "affiliateID"), "affiliate_id")
	if err != nil {
		h.handleError(w, r, err, "assign officer")
		return
	}

	input := service.AssignOfficerInput{}
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "assign officer")
		return
	}
	input.AffiliateID = affiliateID

	officer, err := h.officerService.Assign(r.Context(), actor, input)
	if err != nil {
		h.handleError(w, r, err, "assign officer")
		return
	}
	h.respondWithData(w, http.StatusOK, officer, "Officer assigned")
}

// End handles DELETE /affiliates/{affiliateID}/officers/{id}.
func (h *OfficerHandler) End(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFrom(r)
	if err != nil {
		h.handleError(w, r, err, "end officer term")
		return
	}
	affiliateID, err := pathUUID(chi.URLParam(r, "affiliateID"), "affiliate_id")
	if err != nil {
		h.handleError(w, r, err, "end officer term")
		return
	}
	officerID, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err, "end officer term")
		return
	}

	officer, err := h.officerService.End(r.Context(), actor, affiliateID, officerID)
	if err != nil {
		h.handleError(w, r, err, "end officer term")
		return
	}
	h.respondWithData(w, http.StatusOK, officer, "Officer term ended")
}

// Leaders handles GET /affiliates/{affiliateID}/leaders.
func (h *OfficerHandler) Leaders(w http.ResponseWriter, r *http.Request) {
	affiliateID, err := pathUUID(chi.URLParam(r, "affiliateID"), "affiliate_id")
	if err != nil {
		h.handleError(w, r, err, "retrieve leaders")
		return
	}

	leaders, err := h.officerService.Leaders(r.Context(), affiliateID)
	if err != nil {
		h.handleError(w, r, err, "retrieve leaders")
		return
	}
	h.respondWithData(w, http.StatusOK, leaders, "")
}
