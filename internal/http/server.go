// Package http provides HTTP server implementation and request handlers.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	authHTTP "github.com/allisson/inventory/internal/auth/http"
	customerHTTP "github.com/allisson/inventory/internal/customer/http"
	productHTTP "github.com/allisson/inventory/internal/product/http"
	userHTTP "github.com/allisson/inventory/internal/user/http"
)

// RouteConfig holds the handlers and middleware mounted under /v1.
//
// Nil middleware entries are skipped, so rate limiting and CORS can be
// toggled off via configuration without special cases here.
type RouteConfig struct {
	AuthHandler     *authHTTP.AuthHandler
	UserHandler     *userHTTP.UserHandler
	ProductHandler  *productHTTP.ProductHandler
	CustomerHandler *customerHTTP.CustomerHandler

	AuthMiddleware    gin.HandlerFunc
	LoginRateLimit    gin.HandlerFunc
	RateLimit         gin.HandlerFunc
	CORSMiddleware    gin.HandlerFunc
	MetricsMiddleware gin.HandlerFunc
}

// Server represents the API HTTP server.
type Server struct {
	server *http.Server
	router *gin.Engine
	db     *sql.DB
	logger *slog.Logger
}

// NewServer creates a new HTTP server with the base middleware chain and
// health endpoints registered. API routes are mounted via RegisterRoutes.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(logger))

	server := &Server{
		router: router,
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			Handler:      router,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}

	router.GET("/health", server.healthHandler)
	router.GET("/ready", server.readinessHandler)

	return server
}

// RegisterRoutes mounts the API routes under /v1.
//
// Login and logout are public; login additionally goes through the per-IP
// rate limiter. Everything else requires authentication and goes through
// the per-user rate limiter.
func (s *Server) RegisterRoutes(cfg RouteConfig) {
	if cfg.CORSMiddleware != nil {
		s.router.Use(cfg.CORSMiddleware)
	}
	if cfg.MetricsMiddleware != nil {
		s.router.Use(cfg.MetricsMiddleware)
	}

	v1 := s.router.Group("/v1")

	auth := v1.Group("/auth")
	if cfg.LoginRateLimit != nil {
		auth.POST("/login", cfg.LoginRateLimit, cfg.AuthHandler.LoginHandler)
	} else {
		auth.POST("/login", cfg.AuthHandler.LoginHandler)
	}
	auth.POST("/logout", cfg.AuthHandler.LogoutHandler)

	protected := v1.Group("")
	protected.Use(cfg.AuthMiddleware)
	if cfg.RateLimit != nil {
		protected.Use(cfg.RateLimit)
	}

	protected.GET("/auth/me", cfg.AuthHandler.MeHandler)

	users := protected.Group("/users")
	users.POST("", cfg.UserHandler.CreateHandler)
	users.GET("", cfg.UserHandler.ListHandler)
	users.GET("/:id", cfg.UserHandler.GetHandler)
	users.PUT("/:id", cfg.UserHandler.UpdateHandler)
	users.DELETE("/:id", cfg.UserHandler.DeleteHandler)

	products := protected.Group("/products")
	products.POST("", cfg.ProductHandler.CreateHandler)
	products.GET("", cfg.ProductHandler.ListHandler)
	products.GET("/:id", cfg.ProductHandler.GetHandler)
	products.PUT("/:id", cfg.ProductHandler.UpdateHandler)
	products.DELETE("/:id", cfg.ProductHandler.DeleteHandler)

	customers := protected.Group("/customers")
	customers.POST("", cfg.CustomerHandler.CreateHandler)
	customers.GET("", cfg.CustomerHandler.ListHandler)
	customers.GET("/:id", cfg.CustomerHandler.GetHandler)
	customers.PUT("/:id", cfg.CustomerHandler.UpdateHandler)
	customers.DELETE("/:id", cfg.CustomerHandler.DeleteHandler)
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// healthHandler reports process liveness.
func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports whether the server can serve traffic.
// The database is pinged with a short timeout; any failure reports 503.
func (s *Server) readinessHandler(c *gin.Context) {
	components := gin.H{}
	ready := true

	if s.db == nil {
		components["database"] = "error"
		ready = false
	} else {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := s.db.PingContext(ctx); err != nil {
			s.logger.Error("readiness check failed",
				slog.String("error", err.Error()))
			components["database"] = "error"
			ready = false
		} else {
			components["database"] = "ok"
		}
	}

	if !ready {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": components,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": components,
	})
}

// Start starts the HTTP server.
func (s *Server) Start(ctx context.Context) error {
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start http server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}
