package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/sbilibin2017/bookmarker/internal/logger"
)

//go:generate mockgen -source=health.go -destination=health_mock.go -package=handlers

const readyzTimeout = 2 * time.Second

// Pinger checks that the database is reachable.
type Pinger interface {
	PingContext(ctx context.Context) error
}

// BuildInfo identifies the running binary.
type BuildInfo struct {
	Version   string
	Commit    string
	BuildDate string
}

// HealthzResponse reports liveness
// swagger:model HealthzResponse
type HealthzResponse struct {
	Status        string `json:"status"`
	UptimeSeconds int64  `json:"uptime_seconds"`
	Version       string `json:"version,omitempty"`
	Commit        string `json:"commit,omitempty"`
	BuildDate     string `json:"build_date,omitempty"`
}

// ReadyzResponse reports readiness
// swagger:model ReadyzResponse
type ReadyzResponse struct {
	Ready bool `json:"ready"`
}

// NewHealthzHandler returns a liveness probe.
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthzResponse
// @Router /healthz [get]
func NewHealthzHandler(info BuildInfo, started time.Time) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "no-store")
		writeJSON(w, http.StatusOK, HealthzResponse{
			Status:        "ok",
			UptimeSeconds: int64(time.Since(started).Seconds()),
			Version:       info.Version,
			Commit:        info.Commit,
			BuildDate:     info.BuildDate,
		})
	}
}

// NewReadyzHandler returns a readiness probe backed by a database ping.
// @Summary Readiness probe
// @Tags health
// @Produce json
// @Success 200 {object} handlers.ReadyzResponse
// @Failure 503 {object} handlers.ReadyzResponse
// @Router /readyz [get]
func NewReadyzHandler(db Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readyzTimeout)
		defer cancel()

		w.Header().Set("Cache-Control", "no-store")
		if err := db.PingContext(ctx); err != nil {
			logger.Log.Warnw("database not ready", "err", err)
			writeJSON(w, http.StatusServiceUnavailable, ReadyzResponse{Ready: false})
			return
		}
		writeJSON(w, http.StatusOK, ReadyzResponse{Ready: true})
	}
}
