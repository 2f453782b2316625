package handler

import (
	"context"
	"net/http"

	"github.com/hackathon/starter-api/internal/domain"
)

// Pinger is satisfied by *db.Prober.
type Pinger interface {
	Ping(ctx context.Context) domain.ProbeResult
}

// DBHandler exposes the database connectivity probe.
type DBHandler struct {
	prober Pinger
}

func NewDBHandler(prober Pinger) *DBHandler {
	return &DBHandler{prober: prober}
}

// Ping handles GET /api/db/ping
//
// The outcome is carried in the body; the status is 200 even when the
// database is unreachable.
//
// @Summary  Database connectivity probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.ProbeResult
// @Router   /api/db/ping [get]
func (h *DBHandler) Ping(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.prober.Ping(r.Context()))
}
