package handler

import (
	"github.com/dafibh/loanboard/loanboard-backend/internal/middleware"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RegisterRoutes sets up all API routes
func RegisterRoutes(e *echo.Echo, rateLimiter *middleware.RateLimiter, dashboardHandler *DashboardHandler, customerHandler *CustomerHandler, wsHandler *WebSocketHandler, docs *OpenAPIHandler) {
	// API version 1
	api := e.Group("/api/v1")
	api.Use(middleware.RateLimitMiddleware(rateLimiter))

	// Dashboard routes
	dashboard := api.Group("/dashboard")
	dashboard.GET("", dashboardHandler.GetDashboard)
	dashboard.POST("/reload", dashboardHandler.Reload)

	// Customer routes
	customers := api.Group("/customers")
	customers.POST("", customerHandler.CreateCustomer)
	customers.GET("/:id", customerHandler.GetCustomer)
	customers.POST("/:id/payments", customerHandler.CreatePayment)

	// Realtime events
	e.GET("/ws", wsHandler.HandleWS)

	// API docs
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	e.GET("/openapi.json", docs.ServeOpenAPI3Spec)
}
