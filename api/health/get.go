package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports service and database status. Answers 503 when the database cannot be reached.
// @Tags         system
// @Produce      json
// @Success      200 {object} types.HealthResponse
// @Failure      503 {object} types.HealthResponse
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		dbStatus := getDatabaseStatus(deps)

		status, code := "healthy", http.StatusOK
		if dbStatus["status"] == "unhealthy" {
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		c.JSON(code, types.HealthResponse{
			Status:    status,
			Timestamp: time.Now().UTC().Format(time.RFC3339),
			Database:  dbStatus,
		})
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) map[string]string {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return map[string]string{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return map[string]string{"status": "unhealthy", "error": err.Error()}
	}

	return map[string]string{"status": "connected"}
}
