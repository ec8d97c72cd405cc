package router

import (
	"afriverse.co/editorial/internal/http/handler"
	"github.com/gin-gonic/gin"
)

func AuthRouter(rg *gin.RouterGroup, h *handler.AuthHandler) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.POST("/exchange", h.Exchange)
	rg.POST("/logout", h.Logout)
	rg.GET("/me", h.Me)
}
