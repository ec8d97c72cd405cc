package middleware

import (
	"net/http"
	"strconv"

	"afriverse.co/editorial/internal/model"
	"afriverse.co/editorial/internal/service"
	"github.com/gin-gonic/gin"
)

const (
	// SessionCookieName is shared with the auth handler.
	SessionCookieName = "afriverse_session"
	sessionIDHeader   = "X-Session-ID"
	actorKey          = "actor"
)

// RequireAuth resolves the session to an actor and aborts with 401 when
// there is none.
func RequireAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := resolveActor(c, authService)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "not authenticated"})
			return
		}
		c.Set(actorKey, actor)
		c.Next()
	}
}

// OptionalAuth resolves the actor when a valid session is present and
// continues anonymously when it is not. Used on public read routes
// where visibility still widens for authors and editors.
func OptionalAuth(authService service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor, ok := resolveActor(c, authService); ok {
			c.Set(actorKey, actor)
		}
		c.Next()
	}
}

// RequireRole aborts with 403 unless the actor holds at least the given
// role. Must run after RequireAuth.
func RequireRole(min model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := Actor(c)
		if actor == nil || !actor.Role.AtLeast(min) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "insufficient role"})
			return
		}
		c.Next()
	}
}

// Actor returns the authenticated actor, or nil on optional-auth routes
// with no session.
func Actor(c *gin.Context) *model.Actor {
	v, ok := c.Get(actorKey)
	if !ok {
		return nil
	}
	actor, _ := v.(*model.Actor)
	return actor
}

func resolveActor(c *gin.Context, authService service.AuthService) (*model.Actor, bool) {
	sessionID, err := sessionIDFrom(c)
	if err != nil || sessionID <= 0 {
		return nil, false
	}

	user, err := authService.ValidateSession(c.Request.Context(), sessionID)
	if err != nil {
		return nil, false
	}

	return &model.Actor{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}, true
}

func sessionIDFrom(c *gin.Context) (int64, error) {
	if header := c.GetHeader(sessionIDHeader); header != "" {
		return strconv.ParseInt(header, 10, 64)
	}
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return 0, err
	}
	return strconv.ParseInt(cookie, 10, 64)
}
