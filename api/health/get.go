package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/services/cache"
)

// Get handles health check requests
// @Summary      Health check
// @Description  Reports database connectivity and page cache statistics
// @Tags         system
// @Produce      json
// @Success      200 {object} types.HealthResponse "Service healthy"
// @Failure      503 {object} types.HealthResponse "A dependency is unhealthy"
// @Router       /health [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := http.StatusOK
		response := types.HealthResponse{
			BaseResponse: types.BaseResponse{Status: "healthy", Message: "All systems operational"},
			Timestamp:    time.Now().UTC().Format(time.RFC3339),
			Services:     map[string]interface{}{},
		}

		dbStatus := getDatabaseStatus(deps)
		response.Services["database"] = dbStatus
		if dbStatus["status"] == "unhealthy" {
			status = http.StatusServiceUnavailable
			response.Status = "unhealthy"
			response.Message = "Database unavailable"
		}

		response.Services["cache"] = getCacheStatus(deps)

		c.JSON(status, response)
	}
}

// getDatabaseStatus returns the database connection status
func getDatabaseStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.DB == nil || deps.DB.DB == nil {
		return gin.H{"status": "not configured"}
	}

	if err := deps.DB.HealthCheck(); err != nil {
		return gin.H{"status": "unhealthy", "error": err.Error()}
	}

	return gin.H{"status": "healthy"}
}

// getCacheStatus returns page cache statistics when the store keeps them
func getCacheStatus(deps *types.Dependencies) gin.H {
	if deps == nil || deps.PageCache == nil {
		return gin.H{"status": "not configured"}
	}

	provider, ok := deps.PageCache.(cache.StatsProvider)
	if !ok {
		return gin.H{"status": "healthy"}
	}
	return gin.H{"status": "healthy", "stats": provider.Stats()}
}
