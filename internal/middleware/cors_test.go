package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/middleware"
	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	request := func(origin string) *http.Request {
		req := httptest.NewRequest(http.MethodGet, "/api/roles", nil)
		req.Header.Set("Origin", origin)
		return req
	}

	t.Run("no origins configured", func(t *testing.T) {
		rec := httptest.NewRecorder()
		middleware.CORS(nil)(ok).ServeHTTP(rec, request("https://evil.example.com"))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("listed origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		middleware.CORS([]string{"https://admin.example.org"})(ok).ServeHTTP(rec, request("https://admin.example.org"))

		assert.Equal(t, "https://admin.example.org", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("unlisted origin", func(t *testing.T) {
		rec := httptest.NewRecorder()
		middleware.CORS([]string{"https://admin.example.org"})(ok).ServeHTTP(rec, request("https://evil.example.com"))

		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})
}
