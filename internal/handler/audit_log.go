package handler

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	"github.com/dangerclosesec/orgadmin/internal/service"
	"github.com/go-chi/chi/v5"
)

const auditLogsPerPage = 15

// AuditLogHandler serves the activity log read endpoints.
type AuditLogHandler struct {
	Responder
	auditService *service.AuditService
}

func NewAuditLogHandler(auditService *service.AuditService, rs Responder) *AuditLogHandler {
	return &AuditLogHandler{
		Responder:    rs,
		auditService: auditService,
	}
}

// GetAuditLogs handles GET /audit/logs.
func (h *AuditLogHandler) GetAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := parseActivityLogFilter(query)
	if err != nil {
		h.handleError(w, r, err, "retrieve activity logs")
		return
	}

	page, err := h.auditService.GetAuditLogs(r.Context(), filter, repository.ParsePageRequest(query, auditLogsPerPage))
	if err != nil {
		h.handleError(w, r, err, "retrieve activity logs")
		return
	}
	respondWithPage(h.Responder, w, page)
}

// GetAuditLog handles GET /audit/logs/{id}.
func (h *AuditLogHandler) GetAuditLog(w http.ResponseWriter, r *http.Request) {
	id, err := pathUUID(chi.URLParam(r, "id"), "id")
	if err != nil {
		h.handleError(w, r, err, "retrieve activity log")
		return
	}

	log, err := h.auditService.GetAuditLogByID(r.Context(), id)
	if err != nil {
		h.handleError(w, r, err, "retrieve activity log")
		return
	}
	h.respondWithData(w, http.StatusOK, log, "")
}

// ExportAuditLogs handles GET /audit/logs/export. Every matching row is
// exported regardless of per_page.
func (h *AuditLogHandler) ExportAuditLogs(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter, err := parseActivityLogFilter(query)
	if err != nil {
		h.handleError(w, r, err, "export activity logs")
		return
	}

	page := repository.ParsePageRequest(query, auditLogsPerPage)
	page.All = true

	data, err := h.auditService.ExportAuditLogs(r.Context(), filter, page)
	if err != nil {
		h.handleError(w, r, err, "export activity logs")
		return
	}

	filename := "activity-logs-" + time.Now().UTC().Format("20060102-150405") + ".xlsx"
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// parseActivityLogFilter reads search, action, audit_type, affiliate (or
// affiliate_id), user_id, subject_type with subject_id, date_from and date_to.
func parseActivityLogFilter(query url.Values) (repository.ActivityLogFilter, error) {
	filter := repository.ActivityLogFilter{
		Search:  strings.TrimSpace(query.Get("search")),
		Actions: repository.SplitList(query["action"]...),
	}

	kinds, err := repository.ParseAuditTypes(query["audit_type"])
	if err != nil {
		return filter, err
	}
	filter.Kinds = kinds

	if filter.AffiliateID, err = queryUUID(query, "affiliate", "affiliate_id"); err != nil {
		return filter, err
	}
	if filter.ActorID, err = queryUUID(query, "user_id"); err != nil {
		return filter, err
	}
	if filter.DateFrom, err = queryDate(query, "date_from", false); err != nil {
		return filter, err
	}
	if filter.DateTo, err = queryDate(query, "date_to", true); err != nil {
		return filter, err
	}

	subjectID, err := queryUUID(query, "subject_id")
	if err != nil {
		return filter, err
	}
	if raw := query.Get("subject_type"); raw != "" && subjectID != nil {
		kind, err := model.ParseAuditableKind(raw)
		if err != nil {
			return filter, domain.FieldError("subject_type", "is invalid")
		}
		filter.Subject = &model.Auditable{Kind: kind, ID: *subjectID}
	}
	return filter, nil
}
