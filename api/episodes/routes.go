package episodes

import (
	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
)

// RegisterPageRoutes registers the HTML episode pages. pageMiddleware
// wraps only the page itself, not the play action.
func RegisterPageRoutes(router gin.IRouter, deps *types.Dependencies, pageMiddleware ...gin.HandlerFunc) {
	// GET /episodes/:slug - Rendered episode page, generated on first request
	router.GET("/episodes/:slug", append(pageMiddleware, GetPage(deps))...)

	// POST /episodes/:slug/play - Hand the episode to the player
	router.POST("/episodes/:slug/play", PostPlay(deps))
}

// RegisterRoutes registers episode API routes
func RegisterRoutes(router *gin.RouterGroup, deps *types.Dependencies) {
	// GET /api/v1/episodes/paths - Pages generated ahead of time
	router.GET("/paths", GetPaths(deps))

	// GET /api/v1/episodes/:slug - Page props of one episode
	router.GET("/:slug", GetProps(deps))

	// POST /api/v1/episodes/:slug/revalidate - Drop the cached page
	router.POST("/:slug/revalidate", PostRevalidate(deps))
}
