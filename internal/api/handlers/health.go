package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/JoshFink/commish/internal/pkg/schedule"
)

// HealthHandler handles health check endpoints
type HealthHandler struct {
	startTime time.Time
	version   string
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{
		startTime: time.Now(),
		version:   version,
	}
}

// SimpleHealthResponse represents a simple health check response
type SimpleHealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// DetailedHealthResponse carries version, uptime, and season state.
type DetailedHealthResponse struct {
	Status          string    `json:"status"`
	Version         string    `json:"version"`
	UptimeSeconds   int64     `json:"uptime_seconds"`
	Timestamp       time.Time `json:"timestamp"`
	CurrentWeek     int       `json:"current_week"`
	RecapWindowOpen bool      `json:"recap_window_open"`
}

// Health returns simple liveness check
// GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, SimpleHealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
	})
}

// Detailed returns uptime and the season clock
// GET /api/health/detailed
func (h *HealthHandler) Detailed(c *gin.Context) {
	now := time.Now()
	windowOpen, _ := schedule.RecapWindowOpen(now)
	c.JSON(http.StatusOK, DetailedHealthResponse{
		Status:          "healthy",
		Version:         h.version,
		UptimeSeconds:   int64(time.Since(h.startTime).Seconds()),
		Timestamp:       now,
		CurrentWeek:     schedule.CurrentWeek(now),
		RecapWindowOpen: windowOpen,
	})
}
