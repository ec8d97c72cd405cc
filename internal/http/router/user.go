package router

import (
	"afriverse.co/editorial/internal/http/handler"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

func UserRouter(rg *gin.RouterGroup, h *handler.UserHandler, authService service.AuthService) {
	rg.Use(middleware.RequireAuth(authService))

	rg.GET("/:id", h.Get)
	rg.GET("/staff", h.ListStaff)

	admin := rg.Group("")
	admin.Use(middleware.RequireRole(model.RoleAdmin))
	{
		admin.PUT("/:id/role", h.SetRole)
	}
}
