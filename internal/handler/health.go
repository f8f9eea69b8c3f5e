package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Honoris27/Arena-of-Legends-sub000/internal/logger"
)

const readinessTimeout = 2 * time.Second

// HealthResponse represents the response for health endpoints
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// Pinger is a storage backend that can report whether it is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// HandleHealthz provides a basic liveness check
// @Summary Liveness check
// @Description Returns OK if the service is running
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func HandleHealthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}

// HandleReadyz reports ready once every backing store answers a ping
// @Summary Readiness check
// @Description Returns OK if the service is ready to accept traffic (storage reachable)
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /readyz [get]
func HandleReadyz(deps ...Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
		defer cancel()

		for _, dep := range deps {
			if err := dep.Ping(ctx); err != nil {
				logger.FromContext(r.Context()).Error(LogMsgReadinessFailed, "error", err)
				respondJSON(w, http.StatusServiceUnavailable, HealthResponse{
					Status:  "unavailable",
					Message: "storage connection failed",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
