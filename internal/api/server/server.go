package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/houndmaster/houndmaster/internal/analysis"
	"github.com/houndmaster/houndmaster/internal/api/middleware"
	"github.com/houndmaster/houndmaster/internal/api/rest"
	"github.com/houndmaster/houndmaster/internal/listing"
	"github.com/houndmaster/houndmaster/internal/logger"
	"github.com/houndmaster/houndmaster/internal/verification"
)

// Config holds the server configuration
type Config struct {
	Debug        bool
	Host         string
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

// Server wraps the HTTP server
type Server struct {
	config       Config
	listings     listing.Fetcher
	verification verification.Service
	coordinator  analysis.Coordinator
	httpServer   *http.Server
}

// New creates a new API server
func New(cfg Config, listings listing.Fetcher, verificationSvc verification.Service, coordinator analysis.Coordinator) *Server {
	return &Server{
		config:       cfg,
		listings:     listings,
		verification: verificationSvc,
		coordinator:  coordinator,
	}
}

// Start initializes and starts the HTTP server
func (s *Server) Start() error {
	if s.config.Debug {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Recovery())
	router.Use(middleware.Logger())
	router.Use(middleware.SetupCORS())

	restHandler := rest.NewHandler(s.listings, s.verification, s.coordinator)
	rest.SetupRoutes(router, restHandler)

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.httpServer = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	logger.Info("Starting API server",
		zap.String("address", addr),
	)

	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	logger.Info("Shutting down API server")

	if s.httpServer != nil {
		if err := s.httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}
	}

	return nil
}
