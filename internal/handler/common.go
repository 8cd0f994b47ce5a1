package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/audit"
	"github.com/dangerclosesec/orgadmin/internal/domain"
	"github.com/dangerclosesec/orgadmin/internal/middleware"
	"github.com/dangerclosesec/orgadmin/internal/repository"
	chmw "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// Response is the envelope of every JSON response.
type Response struct {
	Success bool                 `json:"success"`
	Data    interface{}          `json:"data,omitempty"`
	Message string               `json:"message,omitempty"`
	Meta    *repository.PageMeta `json:"meta,omitempty"`
	Errors  map[string]string    `json:"errors,omitempty"`
	Error   string               `json:"error,omitempty"`
}

// Responder renders envelopes. With Debug set, 500 responses carry the raw
// error text.
type Responder struct {
	Debug bool
}

func (rs Responder) respondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("Failed to encode response", "error", err)
	}
}

func (rs Responder) respondWithData(w http.ResponseWriter, code int, data interface{}, message string) {
	rs.respondWithJSON(w, code, Response{Success: true, Data: data, Message: message})
}

func respondWithPage[T any](rs Responder, w http.ResponseWriter, page *repository.Page[T]) {
	rs.respondWithJSON(w, http.StatusOK, Response{Success: true, Data: page.Data, Meta: &page.Meta})
}

func (rs Responder) respondWithError(w http.ResponseWriter, code int, message string) {
	rs.respondWithJSON(w, code, Response{Success: false, Message: message})
}

// handleError maps err onto a status code and failure envelope. Only
// unexpected errors are logged.
func (rs Responder) handleError(w http.ResponseWriter, r *http.Request, err error, action string) {
	resp := Response{Success: false}
	code := http.StatusInternalServerError

	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		code = http.StatusUnprocessableEntity
		resp.Message = "The given data was invalid"
		resp.Errors = ve.Fields
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrRoleNotAssignable),
		errors.Is(err, domain.ErrDomainBlocked),
		errors.Is(err, domain.ErrOfficerNotActive):
		code = http.StatusUnprocessableEntity
		resp.Message = err.Error()
	case errors.Is(err, domain.ErrNotFound):
		code = http.StatusNotFound
		resp.Message = capitalize(err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		code = http.StatusUnauthorized
		resp.Message = "Unauthenticated"
	case errors.Is(err, domain.ErrForbidden):
		code = http.StatusForbidden
		resp.Message = "You do not have permission to perform this action"
	case errors.Is(err, domain.ErrConflict):
		code = http.StatusConflict
		resp.Message = capitalize(err.Error())
	default:
		slog.ErrorContext(r.Context(), "Failed to "+action, "error", err, "requestID", chmw.GetReqID(r.Context()))
		resp.Message = "Failed to " + action
		if rs.Debug {
			resp.Error = err.Error()
		}
	}

	rs.respondWithJSON(w, code, resp)
}

// decodeJSON reads the request body into v. Unknown fields are ignored.
func decodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return domain.FieldError("body", "must be valid JSON")
	}
	return nil
}

// actorFrom builds the audit actor of the authenticated request.
func actorFrom(r *http.Request) (audit.Actor, error) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		return audit.Actor{}, domain.ErrUnauthorized
	}
	return audit.Actor{
		UserID:  userID,
		Request: audit.MetadataFromContext(r.Context()),
	}, nil
}

// Query parameter helpers. Malformed values are reported as field errors
// so that a typo never silently widens a listing.

func queryUUID(values url.Values, keys ...string) (*uuid.UUID, error) {
	for _, key := range keys {
		raw := strings.TrimSpace(values.Get(key))
		if raw == "" {
			continue
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, domain.FieldError(key, "must be a valid UUID")
		}
		return &id, nil
	}
	return nil, nil
}

func queryBool(values url.Values, key string) (*bool, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domain.FieldError(key, "must be true or false")
	}
	return &b, nil
}

func queryDate(values url.Values, key string, endOfDay bool) (*time.Time, error) {
	raw := strings.TrimSpace(values.Get(key))
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, domain.FieldError(key, "must be a date")
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return &t, nil
}

func pathUUID(raw, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, domain.FieldError(field, "must be a valid UUID")
	}
	return id, nil
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
