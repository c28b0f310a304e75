// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/allisson/mynumber/internal/config"
	"github.com/allisson/mynumber/internal/errors"
	"github.com/allisson/mynumber/internal/http"
	"github.com/allisson/mynumber/internal/metrics"
	mynumberHTTP "github.com/allisson/mynumber/internal/mynumber/http"
	mynumberUseCase "github.com/allisson/mynumber/internal/mynumber/usecase"
)

// Container holds all application dependencies and provides methods to access them.
// Components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Use Cases
	myNumberUseCase mynumberUseCase.MyNumberUseCase

	// Handlers
	myNumberHandler *mynumberHTTP.MyNumberHandler

	// Servers
	httpServer    *http.Server
	metricsServer *http.MetricsServer

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	myNumberUseCaseInit sync.Once
	myNumberHandlerInit sync.Once
	httpServerInit      sync.Once
	metricsServerInit   sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		initErrors: make(map[string]error),
	}
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// Logger returns the configured logger instance.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// lazy runs init once under key and replays the stored error on later calls.
func (c *Container) lazy(once *sync.Once, key string, init func() error) error {
	once.Do(func() {
		if err := init(); err != nil {
			c.mu.Lock()
			c.initErrors[key] = err
			c.mu.Unlock()
		}
	})
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.initErrors[key]
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	err := c.lazy(&c.metricsProviderInit, "metricsProvider", func() error {
		if !c.config.MetricsEnabled {
			return nil
		}
		provider, err := metrics.NewProvider(c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create metrics provider: %w", err)
		}
		c.metricsProvider = provider
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder. A no-op recorder is returned when
// metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	err := c.lazy(&c.businessMetricsInit, "businessMetrics", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
		}
		if provider == nil {
			c.businessMetrics = metrics.NewNoOpBusinessMetrics()
			return nil
		}
		businessMetrics, err := metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
		if err != nil {
			return fmt.Errorf("failed to create business metrics: %w", err)
		}
		c.businessMetrics = businessMetrics
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.businessMetrics, nil
}

// MyNumberUseCase returns the My Number use case, instrumented when metrics are enabled.
func (c *Container) MyNumberUseCase() (mynumberUseCase.MyNumberUseCase, error) {
	err := c.lazy(&c.myNumberUseCaseInit, "myNumberUseCase", func() error {
		baseUseCase := mynumberUseCase.NewMyNumberUseCase()
		if !c.config.MetricsEnabled {
			c.myNumberUseCase = baseUseCase
			return nil
		}
		businessMetrics, err := c.BusinessMetrics()
		if err != nil {
			return fmt.Errorf("failed to get business metrics for mynumber use case: %w", err)
		}
		c.myNumberUseCase = mynumberUseCase.NewMyNumberUseCaseWithMetrics(baseUseCase, businessMetrics)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.myNumberUseCase, nil
}

// MyNumberHandler returns the HTTP handler for the My Number routes.
func (c *Container) MyNumberHandler() (*mynumberHTTP.MyNumberHandler, error) {
	err := c.lazy(&c.myNumberHandlerInit, "myNumberHandler", func() error {
		useCase, err := c.MyNumberUseCase()
		if err != nil {
			return fmt.Errorf("failed to get mynumber use case for handler: %w", err)
		}
		c.myNumberHandler = mynumberHTTP.NewMyNumberHandler(
			useCase,
			c.config.GenerateMaxCount,
			c.config.RangeMaxResults,
			c.Logger(),
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.myNumberHandler, nil
}

// HTTPServer returns the API server with its router configured.
func (c *Container) HTTPServer() (*http.Server, error) {
	err := c.lazy(&c.httpServerInit, "httpServer", func() error {
		handler, err := c.MyNumberHandler()
		if err != nil {
			return fmt.Errorf("failed to get mynumber handler for http server: %w", err)
		}
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for http server: %w", err)
		}

		server := http.NewServer(c.config.ServerHost, c.config.ServerPort, c.Logger())
		server.SetupRouter(c.config, handler, provider)
		c.httpServer = server
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.httpServer, nil
}

// MetricsServer returns the Prometheus metrics server, or nil when metrics are disabled.
func (c *Container) MetricsServer() (*http.MetricsServer, error) {
	err := c.lazy(&c.metricsServerInit, "metricsServer", func() error {
		provider, err := c.MetricsProvider()
		if err != nil {
			return fmt.Errorf("failed to get metrics provider for metrics server: %w", err)
		}
		if provider == nil {
			return nil
		}
		c.metricsServer = http.NewMetricsServer(
			c.config.ServerHost,
			c.config.MetricsPort,
			c.Logger(),
			provider,
		)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return c.metricsServer, nil
}

// Shutdown releases the resources held by initialized components. Servers are stopped by
// their owners, so only the metrics provider is flushed here.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	return errors.Join(shutdownErrors...)
}

// initLogger creates a JSON logger on stderr so that command output on stdout stays clean.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	})

	return slog.New(handler)
}
