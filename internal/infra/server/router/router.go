// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/owner-portal/backend/internal/integration/entrypoint/controller"
	"github.com/owner-portal/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine              *gin.Engine
	healthController    *controller.HealthController
	dashboardController *controller.DashboardController
	simulateRateLimiter *middleware.RateLimiter
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	dashboardController *controller.DashboardController,
	simulateRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:    healthController,
		dashboardController: dashboardController,
		simulateRateLimiter: simulateRateLimiter,
		authMiddleware:      authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")

	// Dashboard routes (require authentication)
	if r.dashboardController == nil || r.authMiddleware == nil {
		return
	}

	properties := v1.Group("/properties")
	properties.Use(r.authMiddleware.Authenticate())
	{
		properties.GET("", r.dashboardController.ListProperties)
		properties.GET("/:id/forecast", r.dashboardController.GetForecast)
		properties.GET("/:id/performance", r.dashboardController.GetPerformance)
		properties.GET("/:id/occupancy", r.dashboardController.GetOccupancy)
		properties.GET("/:id/projection", r.dashboardController.GetProjection)
	}

	forecast := v1.Group("/forecast")
	forecast.Use(r.authMiddleware.Authenticate())
	{
		simulate := []gin.HandlerFunc{r.dashboardController.SimulateForecast}
		if r.simulateRateLimiter != nil {
			simulate = append([]gin.HandlerFunc{r.simulateRateLimiter.Middleware()}, simulate...)
		}
		forecast.POST("/simulate", simulate...)
	}
}
