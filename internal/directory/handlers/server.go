// Package handlers provides the HTTP layer of the directory backend:
// the gin server lifecycle, route registration, request DTOs and the
// translation of service errors into the JSON response envelope.
package handlers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Server wraps the gin engine and the underlying http.Server.
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server
	logger     *zap.Logger
	endpoint   string
}

// NewServer constructs the HTTP server with recovery, request logging
// and CORS middleware installed.
func NewServer(port int, corsOrigins []string, logger *zap.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(requestLogger(logger))

	corsConfig := cors.DefaultConfig()
	if len(corsOrigins) > 0 {
		corsConfig.AllowOrigins = corsOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	engine.Use(cors.New(corsConfig))

	endpoint := fmt.Sprintf(":%d", port)
	return &Server{
		engine: engine,
		httpServer: &http.Server{
			Addr:    endpoint,
			Handler: engine,
		},
		logger:   logger,
		endpoint: endpoint,
	}
}

// Engine exposes the router for route registration.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// ServeUploads exposes a directory read-only under the given URL prefix,
// for the disk-backed asset store.
func (s *Server) ServeUploads(prefix, root string) {
	s.engine.Static(prefix, root)
}

// Start runs the HTTP server, returning on the first serve error.
func (s *Server) Start() error {
	s.logger.Info("Starting HTTP server", zap.String("endpoint", s.endpoint))
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP serve error: %w", err)
	}
	return nil
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() {
	s.logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("HTTP server shutdown error", zap.Error(err))
	}

	s.logger.Info("Server stopped")
}

func requestLogger(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		logger.Info("HTTP request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}
