package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"atelier/internal/db"
	applog "atelier/internal/log"
)

const (
	databaseOK          = "ok"
	databaseDisabled    = "disabled"
	databaseUnavailable = "unavailable"
)

type healthResponse struct {
	Status   string    `json:"status"`
	Time     time.Time `json:"time"`
	Database string    `json:"database"`
}

// Health is a readiness handler suitable for infrastructure probes. It pings
// the database when one is configured.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	applog.Debug(r.Context(), "health check requested", "method", r.Method)
	resp := healthResponse{
		Status:   "ok",
		Time:     time.Now().UTC(),
		Database: databaseDisabled,
	}
	code := http.StatusOK

	if h.database != nil {
		if err := db.Ping(r.Context(), h.database); err != nil {
			applog.Error(r.Context(), "database ping failed", "error", err)
			resp.Status = "degraded"
			resp.Database = databaseUnavailable
			code = http.StatusServiceUnavailable
		} else {
			resp.Database = databaseOK
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		applog.Error(r.Context(), "failed to encode health response", "error", err)
		return
	}
	applog.Debug(r.Context(), "health check responded", "status", resp.Status)
}
