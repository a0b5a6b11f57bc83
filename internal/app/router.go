package app

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"skillport_backend/docs"
	"skillport_backend/internal/config"
	"skillport_backend/internal/middleware"
	"skillport_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	api.Use(middleware.SessionMiddleware(cfg.Session))
	{
		api.GET("/health", c.health.HealthCheck)

		// 自我测评
		assessment := api.Group("/assessment")
		{
			assessment.GET("/questions", c.assessment.GetQuestions)
			assessment.POST("/submit", c.assessment.Submit)
			assessment.GET("/results", c.assessment.GetResults)
			assessment.GET("/analytics", c.assessment.GetAnalytics)
		}

		// 学习路径
		learningPath := api.Group("/learning-path")
		{
			learningPath.GET("", c.learningPath.GetLearningPath)
			learningPath.GET("/recommendations", c.learningPath.GetRecommendations)
		}

		// 社区
		api.GET("/community/feed", c.community.GetFeed)

		// AI助手
		api.POST("/chat", c.chat.Chat)
		api.POST("/chat/stream", c.chat.ChatStream)
	}
}
