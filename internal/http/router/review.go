package router

import (
	"afriverse.co/editorial/internal/http/handler"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

func ReviewRouter(rg *gin.RouterGroup, h *handler.ReviewHandler, authService service.AuthService) {
	rg.Use(middleware.RequireAuth(authService))
	rg.Use(middleware.RequireRole(model.RoleEditor))

	rg.GET("/queue", h.Queue)
}
