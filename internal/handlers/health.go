package handlers

import (
	"encoding/json"
	"net/http"
	"time"
)

// HealthResponse represents the health check payload
// swagger:model HealthResponse
type HealthResponse struct {
	// Service status
	// example: ok
	Status string `json:"status"`

	// Service name
	// example: quizforge
	Service string `json:"service"`

	// Server time
	Time time.Time `json:"time"`
}

// NewHealthHandler returns an HTTP handler for the health check.
// @Summary Health check
// @Description Reports that the service is up.
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse "Service status"
// @Router /api/health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(HealthResponse{
			Status:  "ok",
			Service: "quizforge",
			Time:    time.Now(),
		})
	}
}
