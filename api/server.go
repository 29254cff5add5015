package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/pkg/config"
	"github.com/killallgit/podcast-api/pkg/logging"
	"github.com/sirupsen/logrus"
)

// Server represents the HTTP server
type Server struct {
	engine      *gin.Engine
	httpServer  *http.Server
	cfg         *config.Config
	rateLimiter *RateLimiter
	logger      *logrus.Logger

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a server listening on cfg.Server.Host:Port. Call
// Initialize before Start.
func NewServer(cfg *config.Config, deps *types.Dependencies) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())

	logger := logrus.StandardLogger()
	if deps != nil && deps.Logger != nil {
		logger = deps.Logger
	}

	return &Server{
		engine:       engine,
		cfg:          cfg,
		logger:       logger,
		dependencies: deps,
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

// Engine returns the Gin engine for testing
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Addr is the listen address
func (s *Server) Addr() string {
	return s.httpServer.Addr
}

// Initialize sets up middleware and routes
func (s *Server) Initialize() error {
	s.setupMiddleware()

	if s.cfg.RateLimiting.Enabled {
		s.rateLimiter = NewRateLimiter(s.cfg.RateLimiting.RPS, s.cfg.RateLimiting.Burst)
	}

	return RegisterRoutes(s.engine, s.dependencies, s.rateLimiter)
}

// setupMiddleware configures global middleware
func (s *Server) setupMiddleware() {
	if s.cfg.Security.EnableRequestID {
		s.engine.Use(RequestID())
	}
	s.engine.Use(logging.Middleware(s.logger))

	if s.cfg.Security.EnableCORS {
		s.engine.Use(CORS(s.cfg.Security))
	}

	s.engine.Use(RequestSizeLimit(s.cfg.Server.MaxBodyBytes))
}

// Start starts the HTTP server. It returns nil once the server is shut down.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	if s.rateLimiter != nil {
		s.rateLimiter.Stop()
	}
	return s.httpServer.Shutdown(ctx)
}
