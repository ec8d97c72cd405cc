package handler

import (
	"net/http"

	"afriverse.co/editorial/internal/http/dto"
	"afriverse.co/editorial/internal/http/middleware"
	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	userService service.UserService
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

func (h *UserHandler) Get(c *gin.Context) {
	ctx := c.Request.Context()

	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	user, err := h.userService.Get(ctx, userID)
	if err != nil {
		respondError(c, err, "get user")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// SetRole changes a user's role. Admins only, and never above the
// caller's own level.
func (h *UserHandler) SetRole(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	userID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req dto.SetRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	user, err := h.userService.SetRole(ctx, actor, userID, model.Role(req.Role))
	if err != nil {
		respondError(c, err, "set role")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// ListStaff lists editorial staff, optionally filtered by role.
func (h *UserHandler) ListStaff(c *gin.Context) {
	ctx := c.Request.Context()
	actor := middleware.Actor(c)

	if roleParam := c.Query("role"); roleParam != "" {
		role := model.Role(roleParam)
		if !role.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid role"})
			return
		}

		users, err := h.userService.ListByRole(ctx, actor, role)
		if err != nil {
			respondError(c, err, "list users")
			return
		}

		c.JSON(http.StatusOK, gin.H{"users": dto.ToUserResponses(users)})
		return
	}

	users, err := h.userService.ListEditorialStaff(ctx)
	if err != nil {
		respondError(c, err, "list users")
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": dto.ToUserResponses(users)})
}
