package handler

import "net/http"

// HealthResponse is the body of GET /api/health.
type HealthResponse struct {
	Status string `json:"status"`
}

// HealthHandler answers liveness checks without touching any dependency.
type HealthHandler struct {
	resp HealthResponse
}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{resp: HealthResponse{Status: "ok"}}
}

// Health handles GET /api/health
//
// @Summary  Liveness check
// @Tags     system
// @Produce  json
// @Success  200  {object}  HealthResponse
// @Router   /api/health [get]
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.resp)
}
