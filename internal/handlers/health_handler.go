package handlers

import (
	"net/http"

	"transfer-backend/internal/health"
	"transfer-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(c *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: c}
}

// Check is the liveness probe. The process answering at all is the
// signal; dependency state belongs to readiness.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Ready is the readiness probe; it reports dependency state and
// returns 503 while the database is unreachable.
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.RespondJSON(w, code, status)
}
