package router

import (
	"github.com/gin-gonic/gin"

	"github.com/rentfolio/backend/internal/integration/entrypoint/controller"
	"github.com/rentfolio/backend/internal/integration/entrypoint/middleware"
)

// Router wires HTTP routes to their controllers.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	authController        *controller.AuthController
	propertyController    *controller.PropertyController
	transactionController *controller.TransactionController
	documentController    *controller.DocumentController
	reportController      *controller.ReportController
	analyticsController   *controller.AnalyticsController
	usageController       *controller.UsageController
	authMiddleware        *middleware.AuthMiddleware
	loginRateLimiter      *middleware.RateLimiter
}

// NewRouter creates a new router instance.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	propertyController *controller.PropertyController,
	transactionController *controller.TransactionController,
	documentController *controller.DocumentController,
	reportController *controller.ReportController,
	analyticsController *controller.AnalyticsController,
	usageController *controller.UsageController,
	authMiddleware *middleware.AuthMiddleware,
	loginRateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		healthController:      healthController,
		authController:        authController,
		propertyController:    propertyController,
		transactionController: transactionController,
		documentController:    documentController,
		reportController:      reportController,
		analyticsController:   analyticsController,
		usageController:       usageController,
		authMiddleware:        authMiddleware,
		loginRateLimiter:      loginRateLimiter,
	}
}

// Setup configures the gin engine and registers all routes.
func (r *Router) Setup(environment string) {
	switch environment {
	case "production":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}

	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()
}

// Engine returns the underlying gin engine.
func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func (r *Router) setupHealthRoutes() {
	if r.healthController == nil {
		return
	}
	r.engine.GET("/health", r.healthController.Check)
}

func (r *Router) setupAPIRoutes() {
	api := r.engine.Group("/api/v1")

	if r.authController != nil {
		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", r.authController.Register)
			if r.loginRateLimiter != nil {
				authGroup.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			} else {
				authGroup.POST("/login", r.authController.Login)
			}
			authGroup.POST("/refresh", r.authController.Refresh)
			authGroup.POST("/logout", r.authController.Logout)
		}
	}

	if r.authMiddleware == nil {
		return
	}
	authenticated := api.Group("")
	authenticated.Use(r.authMiddleware.Authenticate())

	if r.propertyController != nil {
		properties := authenticated.Group("/properties")
		{
			properties.POST("", r.propertyController.Create)
			properties.GET("", r.propertyController.List)
			properties.GET("/:id", r.propertyController.Get)
			properties.PATCH("/:id", r.propertyController.Update)
			properties.DELETE("/:id", r.propertyController.Delete)
		}
	}

	if r.transactionController != nil {
		transactions := authenticated.Group("/transactions")
		{
			transactions.POST("", r.transactionController.Create)
			transactions.GET("", r.transactionController.List)
			transactions.PATCH("/:id", r.transactionController.Update)
			transactions.DELETE("/:id", r.transactionController.Delete)
		}
	}

	if r.documentController != nil {
		documents := authenticated.Group("/documents")
		{
			documents.POST("", r.documentController.Register)
			documents.GET("", r.documentController.List)
		}
	}

	if r.reportController != nil {
		reports := authenticated.Group("/reports")
		{
			reports.GET("/profit-loss", r.reportController.ProfitLoss)
			reports.GET("/tax", r.reportController.Tax)
			reports.GET("/cash-flow", r.reportController.CashFlow)
			reports.GET("/income-statement", r.reportController.IncomeStatement)
		}
	}

	if r.analyticsController != nil {
		analyticsGroup := authenticated.Group("/analytics")
		{
			analyticsGroup.GET("/overview", r.analyticsController.Overview)
			analyticsGroup.GET("/trends", r.analyticsController.Trends)
			analyticsGroup.GET("/performance", r.analyticsController.Performance)
			analyticsGroup.GET("/snapshots", r.analyticsController.Snapshots)
			analyticsGroup.GET("/analyses", r.analyticsController.Analyses)
			analyticsGroup.POST("/analyses", r.analyticsController.GenerateAnalysis)
		}
	}

	if r.usageController != nil {
		authenticated.GET("/usage/limits", r.usageController.Limits)
	}
}
