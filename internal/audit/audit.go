// Package audit describes activity log entries and the request provenance
// captured with them.
package audit

//go:generate mockgen -typed -source=./audit.go -destination=../mocks/mock_recorder.go -package=mocks Recorder

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/dangerclosesec/orgadmin/internal/model"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
)

// RequestMetadata is the provenance of the request that caused a mutation.
// Unknown values are nil.
type RequestMetadata struct {
	IP        *string
	UserAgent *string
	RequestID *string
}

// Actor is the authenticated user performing a mutation.
type Actor struct {
	UserID  uuid.UUID
	Request RequestMetadata
}

// Entry is one mutation to record. OldValues and NewValues are keyed by the
// same subject label.
type Entry struct {
	Actor        Actor
	AffiliateID  *uuid.UUID
	Action       string
	Subject      model.Auditable
	SubjectLabel string
	OldValues    map[string]interface{}
	NewValues    map[string]interface{}
}

// Recorder persists entries. Implementations must write through the
// transaction carried by ctx so that a rollback discards the entry.
type Recorder interface {
	Record(ctx context.Context, entry Entry) (*model.ActivityLog, error)
}

// MetadataFromRequest reads the client address, user agent and request id.
func MetadataFromRequest(r *http.Request) RequestMetadata {
	if r == nil {
		return RequestMetadata{}
	}

	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	return RequestMetadata{
		IP:        optional(ip),
		UserAgent: optional(r.UserAgent()),
		RequestID: optional(middleware.GetReqID(r.Context())),
	}
}

type metadataKey struct{}

// WithMetadata stores request metadata in ctx.
func WithMetadata(ctx context.Context, md RequestMetadata) context.Context {
	return context.WithValue(ctx, metadataKey{}, md)
}

// MetadataFromContext returns the metadata stored by WithMetadata, or empty
// metadata.
func MetadataFromContext(ctx context.Context) RequestMetadata {
	md, _ := ctx.Value(metadataKey{}).(RequestMetadata)
	return md
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
