package handler

import (
	"net/http"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
)

const membersPerPage = 15

type MemberHandler struct {
	Responder
	memberService *service.MemberService
}

func NewMemberHandler(memberService *service.MemberService, rs Responder) *MemberHandler {
	return &MemberHandler{Responder: rs, memberService: memberService}
}

// List handles GET /members.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.MemberFilter{Search: strings.TrimSpace(query.Get("search"))}

	var err error
	if filter.AffiliateID, err = queryUUID(query, "affiliate_id"); err != nil {
		h.handleError(w, r, err, "list members")
		return
	}
	if raw := strings.TrimSpace(query.Get("status")); raw != "" {
		status := model.MemberStatus(strings.ToLower(raw))
		switch status {
		case model.MemberActive, model.MemberInactive, model.MemberRetired:
			filter.Status = &status
		default:
			h.handleError(w, r, domain.FieldError("status", "must be one of: active inactive retired"), "list members")
			return
		}
	}

	page, err := h.memberService.List(r.Context(), filter, repository.ParsePageRequest(query, membersPerPage))
	if err != nil {
		h.handleError(w, r, err, "list members")
		return
	}
	respondWithPage(h.Responder, w, page)
}
