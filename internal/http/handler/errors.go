package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"afriverse.co/editorial/internal/service"
	"afriverse.co/editorial/internal/store"
	"afriverse.co/editorial/internal/workflow"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgconn"
)

// respondError maps service-layer errors onto HTTP responses. Every
// handler funnels its non-binding errors through here so status codes
// stay consistent across routes.
func respondError(c *gin.Context, err error, action string) {
	ctx := c.Request.Context()

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":  "validation failed",
			"fields": validationErr.Fields,
		})
		return
	}

	var transitionErr *workflow.InvalidTransitionError
	if errors.As(err, &transitionErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": transitionErr.Error(),
			"code":  "invalid_transition",
		})
		return
	}

	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, service.ErrAlreadyClaimed):
		c.JSON(http.StatusBadRequest, gin.H{"error": "post is no longer pending review", "code": "already_claimed"})
	case errors.Is(err, service.ErrNotEditable):
		c.JSON(http.StatusBadRequest, gin.H{"error": "post is no longer editable", "code": "not_editable"})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, service.ErrNotReviewer):
		c.JSON(http.StatusForbidden, gin.H{"error": "another reviewer owns this review", "code": "not_reviewer"})
	case errors.Is(err, service.ErrOwnPost):
		c.JSON(http.StatusForbidden, gin.H{"error": "cannot review your own post", "code": "own_post"})
	case isUniqueViolation(err):
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
	default:
		slog.ErrorContext(ctx, "failed to "+action, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to " + action})
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name})
		return 0, false
	}
	return id, true
}
