package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys set by RequireRole for downstream handlers.
const (
	ContextRole = "auth.role"
	ContextName = "auth.name"
)

// RequireRole returns gin middleware that gates a route on the given role.
// The session cookie is checked and the resulting Decision consumed here:
// unauthorized requests are redirected to the login page and aborted.
func (s *Service) RequireRole(required Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, _ := c.Cookie(SessionCookie)

		decision := s.Check(token, required)
		if !decision.Authorized {
			c.Redirect(http.StatusSeeOther, "/login")
			c.Abort()
			return
		}

		c.Set(ContextRole, decision.Role)
		c.Set(ContextName, decision.Name)
		c.Next()
	}
}
