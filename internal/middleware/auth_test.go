package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dangerclosesec/orgadmin/internal/auth"
	"github.com/dangerclosesec/orgadmin/internal/middleware"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubChecker struct {
	allowed bool
	err     error
	slugs   []string
}

func (s *stubChecker) HasAnyRole(ctx context.Context, userID uuid.UUID, slugs ...string) (bool, error) {
	s.slugs = slugs
	return s.allowed, s.err
}

func echoUser(w http.ResponseWriter, r *http.Request) {
	id, _ := middleware.UserIDFromContext(r.Context())
	w.Write([]byte(id.String()))
}

func TestAuthMiddleware(t *testing.T) {
	tm := auth.NewTokenManager("test_secret", time.Hour)
	userID := uuid.New()
	token, err := tm.Generate(userID, "member@example.org")
	require.NoError(t, err)

	handler := middleware.AuthMiddleware(tm)(http.HandlerFunc(echoUser))

	tests := []struct {
		name     string
		prepare  func(r *http.Request)
		wantCode int
	}{
		{
			name:     "no credentials",
			prepare:  func(r *http.Request) {},
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bearer header",
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer "+token) },
			wantCode: http.StatusOK,
		},
		{
			name: "relayed cookie",
			prepare: func(r *http.Request) {
				r.AddCookie(&http.Cookie{Name: middleware.TokenCookie, Value: token})
			},
			wantCode: http.StatusOK,
		},
		{
			name:     "malformed header",
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Token "+token) },
			wantCode: http.StatusUnauthorized,
		},
		{
			name:     "bad token",
			prepare:  func(r *http.Request) { r.Header.Set("Authorization", "Bearer nope") },
			wantCode: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.prepare(req)
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode == http.StatusOK {
				assert.Equal(t, userID.String(), rec.Body.String())
			} else {
				assert.Contains(t, rec.Body.String(), `"success":false`)
			}
		})
	}
}

func TestRequireRoles(t *testing.T) {
	userID := uuid.New()
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })

	serve := func(checker middleware.RoleChecker, withUser bool) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if withUser {
			req = req.WithContext(middleware.WithUserID(req.Context(), userID))
		}
		rec := httptest.NewRecorder()
		middleware.RequireRoles(checker, "national-admin", "super-admin")(ok).ServeHTTP(rec, req)
		return rec
	}

	t.Run("allowed", func(t *testing.T) {
		checker := &stubChecker{allowed: true}
		rec := serve(checker, true)
		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, []string{"national-admin", "super-admin"}, checker.slugs)
	})

	t.Run("forbidden", func(t *testing.T) {
		rec := serve(&stubChecker{}, true)
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("unauthenticated", func(t *testing.T) {
		rec := serve(&stubChecker{allowed: true}, false)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("checker failure", func(t *testing.T) {
		rec := serve(&stubChecker{err: errors.New("db down")}, true)
		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "db down")
	})
}
