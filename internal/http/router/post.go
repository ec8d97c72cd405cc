package router

import (
	"afriverse.co/editorial/internal/http/handler"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

// PostRouter wires post CRUD plus every workflow action that hangs off
// a post. Reads are optional-auth so published content stays public;
// everything that writes requires a session.
func PostRouter(
	rg *gin.RouterGroup,
	posts *handler.PostHandler,
	reviews *handler.ReviewHandler,
	publish *handler.PublishHandler,
	authService service.AuthService,
) {
	public := rg.Group("")
	public.Use(middleware.OptionalAuth(authService))
	{
		public.GET("", posts.ListByStatus)
		public.GET("/:id", posts.Get)
		public.GET("/slug/:slug", posts.GetBySlug)
	}

	authed := rg.Group("")
	authed.Use(middleware.RequireAuth(authService))
	{
		authed.POST("", posts.Create)
		authed.GET("/mine", posts.ListMine)
		authed.PUT("/:id", posts.Update)
		authed.DELETE("/:id", posts.Delete)
		authed.GET("/:id/activity", posts.Activity)

		authed.POST("/:id/submit", reviews.Submit)
		authed.POST("/:id/resubmit", reviews.Resubmit)
		authed.GET("/:id/feedback", reviews.ListFeedback)
		authed.POST("/:id/feedback", reviews.AddFeedback)

		authed.POST("/:id/publish", publish.Publish)
		authed.POST("/:id/schedule", publish.Schedule)
		authed.POST("/:id/archive", publish.Archive)

		editorial := authed.Group("")
		editorial.Use(middleware.RequireRole(model.RoleEditor))
		{
			editorial.POST("/:id/claim", reviews.Claim)
			editorial.POST("/:id/decision", reviews.Decide)
			editorial.POST("/:id/unpublish", publish.Unpublish)
		}
	}
}
