package handler

import (
	"net/http"

	"afriverse.co/editorial/internal/http/dto"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes the review-pipeline half of the workflow:
// submission, claiming, feedback and decisions.
type ReviewHandler struct {
	workflowService service.WorkflowService
	postService     service.PostService
}

func NewReviewHandler(workflowService service.WorkflowService, postService service.PostService) *ReviewHandler {
	return &ReviewHandler{
		workflowService: workflowService,
		postService:     postService,
	}
}

// Submit hands a draft to the review queue.
func (h *ReviewHandler) Submit(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	// The body is optional; submitting with no payload uses the
	// default priority and no note.
	var req dto.SubmitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
	}

	post, err := h.workflowService.Submit(ctx, actor, postID, service.SubmitInput{
		Priority: model.Priority(req.Priority),
		Note:     req.Note,
	})
	if err != nil {
		respondError(c, err, "submit post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Claim assigns the pending review to the caller. Exactly one reviewer
// wins when several claim at once.
func (h *ReviewHandler) Claim(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	review, err := h.workflowService.Claim(ctx, actor, postID)
	if err != nil {
		respondError(c, err, "claim review")
		return
	}

	c.JSON(http.StatusOK, dto.ToReviewResponse(review))
}

// Resubmit returns a changes_requested post to the queue, keeping the
// original reviewer attached.
func (h *ReviewHandler) Resubmit(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.ResubmitRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
			return
		}
	}

	post, err := h.workflowService.Resubmit(ctx, actor, postID, req.Note)
	if err != nil {
		respondError(c, err, "resubmit post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Decide records the reviewer's verdict: approve or request changes.
func (h *ReviewHandler) Decide(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.DecisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	post, err := h.workflowService.Decide(ctx, actor, postID, service.Decision(req.Decision), req.Note)
	if err != nil {
		respondError(c, err, "record decision")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// AddFeedback appends a feedback item to the post's review thread.
func (h *ReviewHandler) AddFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.AddFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	feedback, err := h.workflowService.AddFeedback(ctx, actor, postID, service.AddFeedbackInput{
		Type:     model.FeedbackType(req.Type),
		Body:     req.Body,
		Internal: req.Internal,
	})
	if err != nil {
		respondError(c, err, "add feedback")
		return
	}

	c.JSON(http.StatusCreated, dto.ToFeedbackResponse(feedback))
}

// ListFeedback returns the feedback thread. Authors see the public
// thread; editorial staff also see internal notes.
func (h *ReviewHandler) ListFeedback(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	items, err := h.workflowService.ListFeedback(ctx, actor, postID)
	if err != nil {
		respondError(c, err, "list feedback")
		return
	}

	c.JSON(http.StatusOK, gin.H{"feedback": dto.ToFeedbackResponses(items)})
}

// Queue lists posts waiting for a reviewer.
func (h *ReviewHandler) Queue(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	posts, err := h.postService.ListByStatus(ctx, actor, model.PostStatusPendingReview)
	if err != nil {
		respondError(c, err, "list review queue")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": dto.ToPostResponses(posts)})
}
