package middleware

import (
	"net/http"

	"github.com/dangerclosesec/orgadmin/internal/audit"
)

// AuditMetadata captures request provenance for activity logs.
func AuditMetadata(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := audit.WithMetadata(r.Context(), audit.MetadataFromRequest(r))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
