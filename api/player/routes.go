package player

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
)

// RegisterRoutes registers player routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/player - Current playback state
	router.GET("", Get(deps))
}
