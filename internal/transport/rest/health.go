package rest

import (
	"context"
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"
)

const pingTimeout = 3 * time.Second

// dbPinger defines the minimal interface for DB health checks.
type dbPinger interface {
	Ping(ctx context.Context) error
}

// breakerState reports the state of the mail circuit breaker.
type breakerState interface {
	State() gobreaker.State
}

// HealthHandler serves the probe endpoints.
type HealthHandler struct {
	db      dbPinger
	mail    breakerState
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler. mail may be nil when delivery is
// not guarded by a breaker.
func NewHealthHandler(db dbPinger, mail breakerState, version string) *HealthHandler {
	return &HealthHandler{db: db, mail: mail, version: version, now: time.Now}
}

// HealthResponse is the JSON body of every probe.
type HealthResponse struct {
	Status     string                `json:"status"`
	Version    string                `json:"version,omitempty"`
	Components map[string]CompStatus `json:"components,omitempty"`
	Timestamp  time.Time             `json:"timestamp"`
}

// CompStatus is the status of one dependency.
type CompStatus struct {
	Status  string `json:"status"`
	Latency string `json:"latency,omitempty"`
}

// Live answers 200 while the process serves HTTP.
func (h *HealthHandler) Live(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Ready answers 200 when the database answers a ping and 503 otherwise.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.db.Ping(ctx); err != nil {
		writeJSON(w, http.StatusServiceUnavailable, HealthResponse{Status: "down", Timestamp: h.now()})
		return
	}
	writeJSON(w, http.StatusOK, HealthResponse{Status: "ok", Timestamp: h.now()})
}

// Health reports every dependency. A down database answers 503; an open mail
// breaker only degrades the status since reads keep working.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	resp := HealthResponse{
		Status:     "ok",
		Version:    h.version,
		Components: make(map[string]CompStatus, 2),
	}

	start := time.Now()
	if err := h.db.Ping(ctx); err != nil {
		resp.Components["database"] = CompStatus{Status: "down"}
		resp.Status = "down"
	} else {
		resp.Components["database"] = CompStatus{Status: "ok", Latency: time.Since(start).String()}
	}

	if h.mail != nil {
		switch h.mail.State() {
		case gobreaker.StateClosed:
			resp.Components["mail"] = CompStatus{Status: "ok"}
		case gobreaker.StateHalfOpen:
			resp.Components["mail"] = CompStatus{Status: "recovering"}
		case gobreaker.StateOpen:
			resp.Components["mail"] = CompStatus{Status: "down"}
			if resp.Status == "ok" {
				resp.Status = "degraded"
			}
		}
	}

	status := http.StatusOK
	if resp.Status == "down" {
		status = http.StatusServiceUnavailable
	}
	resp.Timestamp = h.now()
	writeJSON(w, status, resp)
}
