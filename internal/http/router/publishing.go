package router

import (
	"afriverse.co/editorial/internal/http/handler"
	"github.com/gin-gonic/gin"
)

// PublishingRouter exposes the sweep for external schedulers. It is
// secret-guarded rather than session-guarded.
func PublishingRouter(rg *gin.RouterGroup, h *handler.PublishHandler) {
	rg.Use(h.RequireCronSecret())

	rg.POST("/sweep", h.Sweep)
}
