package handler

import (
	"context"
	"net/http"
	"time"
)

// Pinger reports whether a backing dependency is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// PingFunc adapts a function to Pinger.
type PingFunc func(ctx context.Context) error

func (f PingFunc) PingContext(ctx context.Context) error { return f(ctx) }

type HealthHandler struct {
	Responder
	checks map[string]Pinger
}

func NewHealthHandler(checks map[string]Pinger, rs Responder) *HealthHandler {
	return &HealthHandler{Responder: rs, checks: checks}
}

// Health handles GET /health. Any failing check turns the response into a 503.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	status := map[string]string{}
	healthy := true
	for name, check := range h.checks {
		if err := check.PingContext(ctx); err != nil {
			status[name] = "unavailable"
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	if !healthy {
		h.respondWithJSON(w, http.StatusServiceUnavailable, Response{Success: false, Message: "unhealthy", Data: status})
		return
	}
	h.respondWithJSON(w, http.StatusOK, Response{Success: true, Message: "healthy", Data: status})
}
