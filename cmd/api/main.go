package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/dafibh/loanboard/loanboard-backend/internal/config"
	"github.com/dafibh/loanboard/loanboard-backend/internal/handler"
	"github.com/dafibh/loanboard/loanboard-backend/internal/middleware"
	"github.com/dafibh/loanboard/loanboard-backend/internal/repository/backend"
	"github.com/dafibh/loanboard/loanboard-backend/internal/service"
	"github.com/dafibh/loanboard/loanboard-backend/internal/websocket"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// @title Loanboard API
// @version 1.0
// @description Customer loan dashboard: repayment progress, status classification and payment recording.
// @BasePath /api/v1
func main() {
	// Initialize zerolog
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	if os.Getenv("ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	// Loan backend
	client := backend.NewClient(cfg.Backend.URL, cfg.Backend.Timeout)
	customerRepo := backend.NewCustomerRepository(client)
	paymentRepo := backend.NewPaymentRepository(client)
	log.Info().Str("backend_url", cfg.Backend.URL).Dur("timeout", cfg.Backend.Timeout).Msg("Using loan backend")

	// Realtime hub
	hub := websocket.NewHub()

	// Initialize services
	dashboardService := service.NewDashboardService(customerRepo, paymentRepo, service.NewCustomerStore())
	dashboardService.SetEventPublisher(hub)

	refreshWorker := service.NewRefreshWorker(dashboardService, log.Logger, service.RefreshWorkerConfig{
		Interval: cfg.RefreshInterval,
	})

	rateLimiter := middleware.NewRateLimiterWithConfig(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
	defer rateLimiter.Stop()

	// Initialize handlers
	dashboardHandler := handler.NewDashboardHandler(dashboardService)
	customerHandler := handler.NewCustomerHandler(dashboardService)
	wsHandler := handler.NewWebSocketHandler(hub, cfg.CORSOrigins)
	docsHandler := handler.NewOpenAPIHandler(handler.Server{
		URL:         "http://localhost:" + cfg.Port,
		Description: "Local Development",
	})

	// Create Echo instance
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Request ID middleware
	e.Use(echomiddleware.RequestID())

	// CORS middleware
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       86400,
	}))

	// Security headers middleware (helmet-like)
	e.Use(echomiddleware.SecureWithConfig(echomiddleware.SecureConfig{
		XSSProtection:      "1; mode=block",
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		HSTSMaxAge:         31536000,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}))

	// Request logging middleware with zerolog
	e.Use(zerologMiddleware())

	// Prometheus request metrics
	e.Use(middleware.MetricsMiddleware())

	// Recovery middleware
	e.Use(echomiddleware.Recover())

	// Health check endpoint
	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":            "ok",
			"websocket_clients": hub.TotalClientCount(),
		})
	})

	// Prometheus scrape endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Register API routes
	handler.RegisterRoutes(e, rateLimiter, dashboardHandler, customerHandler, wsHandler, docsHandler)

	// Background reload
	workerCtx, stopWorker := context.WithCancel(context.Background())
	defer stopWorker()
	refreshWorker.Start(workerCtx)

	// Start server in goroutine
	go func() {
		log.Info().Str("port", cfg.Port).Msg("Starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("Server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("Shutting down server...")

	refreshWorker.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatal().Err(err).Msg("Server forced to shutdown")
	}

	log.Info().Msg("Server exited")
}

// zerologMiddleware returns a middleware that logs requests using zerolog
func zerologMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()

			event := log.Info()
			if res.Status >= http.StatusInternalServerError {
				event = log.Warn()
			}
			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("route", c.Path()).
				Int("status", res.Status).
				Dur("latency", time.Since(start)).
				Str("request_id", res.Header().Get(echo.HeaderXRequestID)).
				Msg("request")

			return nil
		}
	}
}
