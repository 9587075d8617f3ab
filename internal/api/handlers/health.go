package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"template-service-backend/internal/database"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint
const Version = "1.0.0"

// DatabaseCheckTimeout bounds each database check
const DatabaseCheckTimeout = 2 * time.Second

var errNoDatabase = errors.New("no database connection")

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db *gorm.DB
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(db *gorm.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

// ReadinessResponse lists the checks a ready instance has passed
type ReadinessResponse struct {
	Ready     bool              `json:"ready"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Health returns the health status of the application
// @Summary Health check
// @Description Report whether the template store answers queries
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services:  map[string]string{"database": "healthy"},
	}

	if err := h.pingDatabase(c); err != nil {
		response.Status = "unhealthy"
		response.Services["database"] = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}

	c.JSON(http.StatusOK, response)
}

// Ready reports whether the instance can serve template operations: the
// database answers and every template table has been migrated.
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} ReadinessResponse "Application is ready"
// @Failure 503 {object} ReadinessResponse "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	response := ReadinessResponse{
		Ready:     true,
		Timestamp: time.Now(),
		Checks:    map[string]string{"database": "ready", "schema": "ready"},
	}

	if err := h.pingDatabase(c); err != nil {
		response.Ready = false
		response.Checks["database"] = "not ready: " + err.Error()
		response.Checks["schema"] = "unknown"
	} else if missing := h.missingTables(c); len(missing) > 0 {
		response.Ready = false
		response.Checks["schema"] = fmt.Sprintf("not ready: missing tables %v", missing)
	}

	status := http.StatusOK
	if !response.Ready {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, response)
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errNoDatabase
	}
	ctx, cancel := context.WithTimeout(ctx, DatabaseCheckTimeout)
	defer cancel()
	var one int
	return h.db.WithContext(ctx).Raw("SELECT 1").Scan(&one).Error
}

func (h *HealthHandler) missingTables(ctx context.Context) []string {
	ctx, cancel := context.WithTimeout(ctx, DatabaseCheckTimeout)
	defer cancel()
	migrator := h.db.WithContext(ctx).Migrator()

	var missing []string
	for _, model := range database.Models() {
		if !migrator.HasTable(model) {
			stmt := &gorm.Statement{DB: h.db}
			if err := stmt.Parse(model); err == nil {
				missing = append(missing, stmt.Schema.Table)
			} else {
				missing = append(missing, fmt.Sprintf("%T", model))
			}
		}
	}
	return missing
}
