// Package http provides the HTTP API server, its middleware and the metrics server.
package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/allisson/mynumber/internal/config"
	apperrors "github.com/allisson/mynumber/internal/errors"
	"github.com/allisson/mynumber/internal/httputil"
	"github.com/allisson/mynumber/internal/metrics"
	mynumberHTTP "github.com/allisson/mynumber/internal/mynumber/http"
)

// Server represents the HTTP API server.
type Server struct {
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
	ready  atomic.Bool

	// ctx bounds background work started by middleware; cancel runs on Shutdown.
	ctx    context.Context
	cancel context.CancelFunc
}

// NewServer creates a new HTTP server. SetupRouter must be called before Start.
func NewServer(host string, port int, logger *slog.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		server: &http.Server{
			Addr:              fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:       15 * time.Second,
			ReadHeaderTimeout: 5 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
		logger: logger,
		ctx:    ctx,
		cancel: cancel,
	}
}

// SetupRouter builds the gin engine with middleware and all routes.
// metricsProvider may be nil when metrics are disabled.
func (s *Server) SetupRouter(
	cfg *config.Config,
	myNumberHandler *mynumberHTTP.MyNumberHandler,
	metricsProvider *metrics.Provider,
) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	if metricsProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(metricsProvider.MeterProvider(), cfg.MetricsNamespace))
	}

	router.NoRoute(s.notFoundHandler)
	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")
	if cfg.RateLimitEnabled {
		v1.Use(RateLimitMiddleware(s.ctx, cfg.RateLimitRequestsPerSec, cfg.RateLimitBurst, s.logger))
	}

	mynumber := v1.Group("/mynumber")
	{
		mynumber.POST("/verify", myNumberHandler.VerifyHandler)
		mynumber.POST("/check-digit", myNumberHandler.CheckDigitHandler)
		mynumber.POST("/complete", myNumberHandler.CompleteHandler)
		mynumber.GET("/generate", myNumberHandler.GenerateHandler)
		mynumber.POST("/parse", myNumberHandler.ParseHandler)
		mynumber.POST("/format", myNumberHandler.FormatHandler)
		mynumber.POST("/range", myNumberHandler.RangeHandler)
	}

	s.router = router
	s.server.Handler = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.server.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return errors.New("router is not set up")
	}

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))
	s.ready.Store(true)

	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.ready.Store(false)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown marks the server not ready and drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	s.ready.Store(false)
	s.cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler answers 503 before Start and after Shutdown.
func (s *Server) readinessHandler(c *gin.Context) {
	if !s.ready.Load() {
		httputil.HandleErrorGin(c, apperrors.Wrap(apperrors.ErrUnavailable, "server is not serving"), nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}

func (s *Server) notFoundHandler(c *gin.Context) {
	httputil.HandleErrorGin(c, apperrors.Wrapf(apperrors.ErrNotFound, "route %s", c.Request.URL.Path), nil)
}
