package api

import (
	"bytes"
	"errors"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/killallgit/podcastr/api/episodes"
	"github.com/killallgit/podcastr/api/health"
	"github.com/killallgit/podcastr/api/middleware"
	"github.com/killallgit/podcastr/api/player"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/api/version"
	_ "github.com/killallgit/podcastr/docs/swagger"
	"github.com/killallgit/podcastr/internal/render"
	"github.com/killallgit/podcastr/pkg/config"
)

// RegisterRoutes registers all page and API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies, cfg *config.Config, rateLimiters *sync.Map, cleanupStop chan struct{}, cleanupInitialized *sync.Once) error {
	if cfg == nil {
		return errors.New("config is nil")
	}
	if deps == nil {
		deps = &types.Dependencies{}
	}

	// Register public routes (no rate limiting)
	health.RegisterRoutes(engine, deps)
	version.RegisterRoutes(engine, deps)

	// Images referenced by the page templates
	assets := http.FS(render.Assets())
	engine.StaticFileFS("/arrow-left.svg", "arrow-left.svg", assets)
	engine.StaticFileFS("/play.svg", "play.svg", assets)

	// Register Swagger documentation route
	engine.GET("/docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/docs/index.html")
	})
	docsGroup := engine.Group("/docs")
	docsGroup.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Setup 404 handler
	engine.NoRoute(NotFoundHandler(deps))

	limit := func() gin.HandlerFunc {
		rl := cfg.Security.RateLimiting
		if !rl.Enabled {
			return func(c *gin.Context) { c.Next() }
		}
		return PerClientRateLimit(rateLimiters, cleanupStop, cleanupInitialized, rl.RPS, rl.Burst)
	}

	// Episode pages, cacheable by shared caches for the revalidation window
	pages := engine.Group("")
	pages.Use(limit())
	episodes.RegisterPageRoutes(pages, deps, middleware.PageCache(middleware.CacheConfig{
		SharedMaxAge: cfg.Cache.Revalidate,
		Enabled:      true,
	}))

	// API v1 routes
	v1 := engine.Group("/api/v1")
	v1.Use(limit())

	episodes.RegisterRoutes(v1.Group("/episodes"), deps)
	player.RegisterRoutes(v1.Group("/player"), deps)

	return nil
}

// NotFoundHandler handles 404 errors, as a page for browsers and JSON
// for everything else
func NotFoundHandler(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps != nil && deps.Renderer != nil && !types.WantsJSON(c) {
			var buf bytes.Buffer
			if err := deps.Renderer.RenderError(&buf, http.StatusNotFound, "Página não encontrada"); err == nil {
				c.Data(http.StatusNotFound, "text/html; charset=utf-8", buf.Bytes())
				return
			}
		}

		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "The requested endpoint was not found",
			"path":    c.Request.URL.Path,
		})
	}
}
