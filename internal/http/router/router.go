package router

import (
	"afriverse.co/editorial/internal/http/handler"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	StudioURL    string
	IsProduction bool
	CronSecret   string
}

func SetupRoutes(router *gin.Engine, services *service.Services, cfg RouterConfig) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	authHandler := handler.NewAuthHandler(services.Auth(), cfg.StudioURL, cfg.IsProduction)
	AuthRouter(router.Group("/auth"), authHandler)

	v1 := router.Group("/api/v1")
	{
		postHandler := handler.NewPostHandler(services.Posts())
		reviewHandler := handler.NewReviewHandler(services.Workflow(), services.Posts())
		publishHandler := handler.NewPublishHandler(services.Workflow(), services.Publisher(), cfg.CronSecret, cfg.IsProduction)
		PostRouter(v1.Group("/posts"), postHandler, reviewHandler, publishHandler, services.Auth())

		ReviewRouter(v1.Group("/reviews"), reviewHandler, services.Auth())

		userHandler := handler.NewUserHandler(services.Users())
		UserRouter(v1.Group("/users"), userHandler, services.Auth())

		PublishingRouter(v1.Group("/publishing"), publishHandler)
	}
}
