package handler

import (
	"net/http"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
)

const domainsPerPage = 20

// DomainHandler serves the email domain blocklist.
type DomainHandler struct {
	Responder
	domainService *service.DomainService
}

func NewDomainHandler(domainService *service.DomainService, rs Responder) *DomainHandler {
	return &DomainHandler{
		Responder:     rs,
		domainService: domainService,
	}
}

// List handles GET /domains.
func (h *DomainHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := repository.DomainFilter{Search: strings.TrimSpace(query.Get("search"))}

	if raw := strings.ToLower(strings.TrimSpace(query.Get("type"))); raw != "" {
		t := model.DomainType(raw)
		if t != model.DomainTypeDomain && t != model.DomainTypeTLD {
			h.handleError(w, r, domain.FieldError("type", "must be one of: domain tld"), "list domains")
			return
		}
		filter.Type = &t
	}

	var err error
	if filter.AffiliateID, err = queryUUID(query, "affiliate_id"); err != nil {
		h.handleError(w, r, err, "list domains")
		return
	}
	if filter.IsBlacklisted, err = queryBool(query, "is_blacklisted"); err != nil {
		h.handleError(w, r, err, "list domains")
		return
	}
	global, err := queryBool(query, "global")
	if err != nil {
		h.handleError(w, r, err, "list domains")
		return
	}
	filter.Global = global != nil && *global

	page, err := h.domainService.List(r.Context(), filter, repository.ParsePageRequest(query, domainsPerPage))
	if err != nil {
		h.handleError(w, r, err, "list domains")
		return
	}
	respondWithPage(h.Responder, w, page)
}

// Create handles POST /domains.
func (h *DomainHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input service.CreateDomainInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "create domain")
		return
	}

	d, err := h.domainService.Create(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err, "create domain")
		return
	}
	h.respondWithData(w, http.StatusCreated, d, "Domain created")
}

// Block handles POST /domains/block.
func (h *DomainHandler) Block(w http.ResponseWriter, r *http.Request) {
	var input service.BlockDomainsInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "block domains")
		return
	}

	blocked, err := h.domainService.Block(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err, "block domains")
		return
	}
	h.respondWithData(w, http.StatusOK, blocked, "Domains blocked")
}

// Delete handles DELETE /domains.
func (h *DomainHandler) Delete(w http.ResponseWriter, r *http.Request) {
	var input service.DeleteDomainsInput
	if err := decodeJSON(r, &input); err != nil {
		h.handleError(w, r, err, "delete domains")
		return
	}

	deleted, err := h.domainService.Delete(r.Context(), input)
	if err != nil {
		h.handleError(w, r, err, "delete domains")
		return
	}
	h.respondWithData(w, http.StatusOK, map[string]int64{"deleted": deleted}, "Domains deleted")
}
