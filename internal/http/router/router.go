package router

import (
	"designmentor.app/api/internal/http/handler"
	"designmentor.app/api/internal/http/middleware"
	"designmentor.app/api/internal/service"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	DashboardURL string
	IsProduction bool
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.DashboardURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler, services.Auth())

	v1 := router.Group("/api/v1")
	v1.Use(middleware.RequireAuth(services.Auth()))
	{
		projectHandler := handler.NewProjectHandler(services.Projects())
		analysisHandler := handler.NewAnalysisHandler(services.Analysis())

		ProjectRouter(v1.Group("/projects"), projectHandler, analysisHandler)
		SuggestionRouter(v1.Group("/suggestions"), analysisHandler)
	}
}
