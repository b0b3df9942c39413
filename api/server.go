package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcastr/api/types"
	"github.com/killallgit/podcastr/internal/database"
	"github.com/killallgit/podcastr/pkg/config"
)

// Server represents the HTTP server
type Server struct {
	engine             *gin.Engine
	httpServer         *http.Server
	cfg                *config.Config
	rateLimiters       *sync.Map
	cleanupInitialized sync.Once
	cleanupStop        chan struct{}
	stopOnce           sync.Once

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(cfg *config.Config) *Server {
	engine := gin.New()
	engine.Use(Recovery())

	return &Server{
		engine:       engine,
		cfg:          cfg,
		rateLimiters: &sync.Map{},
		cleanupStop:  make(chan struct{}),
		httpServer: &http.Server{
			Addr:           fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			Handler:        engine,
			ReadTimeout:    cfg.Server.ReadTimeout,
			WriteTimeout:   cfg.Server.WriteTimeout,
			IdleTimeout:    cfg.Server.ReadTimeout,
			MaxHeaderBytes: cfg.Server.MaxHeaderBytes,
		},
	}
}

// SetDatabase sets the database connection
func (s *Server) SetDatabase(db *database.DB) {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}
	s.dependencies.DB = db
}

// SetDependencies sets all handler dependencies
func (s *Server) SetDependencies(deps *types.Dependencies) {
	s.dependencies = deps
}

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr returns the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	if s.dependencies == nil {
		s.dependencies = &types.Dependencies{}
	}

	s.setupMiddleware()

	return s.setupRoutes()
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	s.engine.Use(RequestLogger())

	if s.cfg.Security.EnableCORS {
		s.engine.Use(CORS(s.cfg.Security.CORSOrigins...))
	}

	maxBody := s.cfg.Security.MaxBodyBytes
	if maxBody <= 0 {
		maxBody = 1024 * 1024
	}
	s.engine.Use(RequestSizeLimitWithSize(maxBody))
}

// setupRoutes delegates to the main route registration
func (s *Server) setupRoutes() error {
	return RegisterRoutes(s.engine, s.dependencies, s.cfg, s.rateLimiters, s.cleanupStop, &s.cleanupInitialized)
}

// Start starts the HTTP server. It returns nil after a graceful shutdown.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() {
		// Stop the page cache sweeper if the store has one
		if s.dependencies != nil && s.dependencies.PageCache != nil {
			s.dependencies.PageCache.Stop()
		}

		// Stop the rate limiter cleanup goroutine
		close(s.cleanupStop)
	})

	return s.httpServer.Shutdown(ctx)
}
