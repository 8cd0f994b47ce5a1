package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dangerclosesec/orgadmin/internal/handler"
	"github.com/dangerclosesec/orgadmin/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// envelope mirrors handler.Response with raw data for per-test decoding.
type envelope struct {
	Success bool              `json:"success"`
	Data    json.RawMessage   `json:"data"`
	Message string            `json:"message"`
	Meta    *json.RawMessage  `json:"meta"`
	Errors  map[string]string `json:"errors"`
	Error   string            `json:"error"`
}

type call struct {
	method  string
	pattern string
	target  string
	body    io.Reader
	headers map[string]string
	userID  uuid.UUID
}

// serve routes one request through chi so URL params resolve as in production.
func serve(t *testing.T, h http.HandlerFunc, c call) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	r := chi.NewRouter()
	r.Method(c.method, c.pattern, h)

	req := httptest.NewRequest(c.method, c.target, c.body)
	for k, v := range c.headers {
		req.Header.Set(k, v)
	}
	if c.userID != uuid.Nil {
		req = req.WithContext(middleware.WithUserID(req.Context(), c.userID))
	}

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	var env envelope
	if rec.Header().Get("Content-Type") == "application/json" {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	}
	return rec, env
}

var rs = handler.Responder{}
