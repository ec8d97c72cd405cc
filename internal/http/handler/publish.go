package handler

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"afriverse.co/editorial/internal/http/dto"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

// PublishHandler covers the publication half of the workflow plus the
// cron-triggered scheduled sweep.
type PublishHandler struct {
	workflowService  service.WorkflowService
	publisherService service.PublisherService
	cronSecret       string
	isProduction     bool
}

func NewPublishHandler(
	workflowService service.WorkflowService,
	publisherService service.PublisherService,
	cronSecret string,
	isProduction bool,
) *PublishHandler {
	return &PublishHandler{
		workflowService:  workflowService,
		publisherService: publisherService,
		cronSecret:       cronSecret,
		isProduction:     isProduction,
	}
}

// Publish makes the post live immediately.
func (h *PublishHandler) Publish(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.workflowService.Publish(ctx, actor, postID)
	if err != nil {
		respondError(c, err, "publish post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Unpublish pulls a live or scheduled post back to approved.
func (h *PublishHandler) Unpublish(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.workflowService.Unpublish(ctx, actor, postID)
	if err != nil {
		respondError(c, err, "unpublish post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Schedule queues an approved post for publication at a future time.
func (h *PublishHandler) Schedule(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ScheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: scheduled_at is required"})
		return
	}

	post, err := h.workflowService.Schedule(ctx, actor, postID, req.ScheduledAt)
	if err != nil {
		respondError(c, err, "schedule post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Archive retires a post permanently.
func (h *PublishHandler) Archive(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.workflowService.Archive(ctx, actor, postID)
	if err != nil {
		respondError(c, err, "archive post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Sweep runs the scheduled-publishing sweep. Meant to be hit by an
// external cron; the worker ticker covers deployments without one.
func (h *PublishHandler) Sweep(c *gin.Context) {
	ctx := c.Request.Context()

	result, err := h.publisherService.RunScheduledSweep(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "scheduled sweep failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "sweep failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// RequireCronSecret guards the sweep endpoint with a bearer secret. In
// development an unset secret leaves the endpoint open for manual runs.
func (h *PublishHandler) RequireCronSecret() gin.HandlerFunc {
	return func(c *gin.Context) {
		if h.cronSecret == "" {
			if h.isProduction {
				c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "cron endpoint not configured"})
				return
			}
			c.Next()
			return
		}

		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		if subtle.ConstantTimeCompare([]byte(token), []byte(h.cronSecret)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid or missing cron secret"})
			return
		}

		c.Next()
	}
}
