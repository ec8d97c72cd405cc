package handler

import (
	"net/http"

	"afriverse.co/editorial/internal/http/dto"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

type PostHandler struct {
	postService service.PostService
}

func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create opens a new draft owned by the caller.
func (h *PostHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	post, err := h.postService.CreateDraft(ctx, actor, service.CreateDraftInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Body:     req.Body,
	})
	if err != nil {
		respondError(c, err, "create draft")
		return
	}

	c.JSON(http.StatusCreated, dto.ToPostResponse(post))
}

// Update replaces the content of an editable post.
func (h *PostHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	post, err := h.postService.UpdateDraft(ctx, actor, postID, service.UpdateDraftInput{
		Title:    req.Title,
		Excerpt:  req.Excerpt,
		Category: req.Category,
		Body:     req.Body,
	})
	if err != nil {
		respondError(c, err, "update post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// Delete removes a draft. Posts that entered the pipeline are archived,
// never deleted.
func (h *PostHandler) Delete(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := h.postService.DeleteDraft(ctx, actor, postID); err != nil {
		respondError(c, err, "delete draft")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "draft deleted"})
}

func (h *PostHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	post, err := h.postService.Get(ctx, actor, postID)
	if err != nil {
		respondError(c, err, "get post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

func (h *PostHandler) GetBySlug(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
		return
	}

	post, err := h.postService.GetBySlug(ctx, actor, slug)
	if err != nil {
		respondError(c, err, "get post")
		return
	}

	c.JSON(http.StatusOK, dto.ToPostResponse(post))
}

// ListMine lists the caller's own posts across all statuses.
func (h *PostHandler) ListMine(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	posts, err := h.postService.ListMine(ctx, actor)
	if err != nil {
		respondError(c, err, "list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": dto.ToPostResponses(posts)})
}

// ListByStatus lists posts in a given status. Statuses other than
// published are editorial-only; the service enforces that.
func (h *PostHandler) ListByStatus(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	status := model.PostStatus(c.Query("status"))
	if status == "" {
		status = model.PostStatusPublished
	}
	if !status.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status"})
		return
	}

	posts, err := h.postService.ListByStatus(ctx, actor, status)
	if err != nil {
		respondError(c, err, "list posts")
		return
	}

	c.JSON(http.StatusOK, gin.H{"posts": dto.ToPostResponses(posts)})
}

// Activity returns the audit trail for a post.
func (h *PostHandler) Activity(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	postID, ok := pathID(c, "id")
	if !ok {
		return
	}

	entries, err := h.postService.Activity(ctx, actor, postID)
	if err != nil {
		respondError(c, err, "list activity")
		return
	}

	c.JSON(http.StatusOK, gin.H{"activity": dto.ToActivityResponses(entries)})
}
