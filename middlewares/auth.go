package middlewares

import (
	"github.com/aaryaa4/civic-connectt/pkg/resp"
	"github.com/aaryaa4/civic-connectt/services"

	"github.com/gin-gonic/gin"
)

// TokenAuth validates the bearer token and resolves the subject user. The
// token travels as a form field on POSTs and a query param on GETs — that is
// the contract existing clients were built against, so no Authorization
// header here.
func TokenAuth(auth *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.PostForm("token")
		if token == "" {
			token = c.Query("token")
		}
		if token == "" {
			resp.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		user, role, err := auth.ResolveToken(token)
		if err != nil {
			resp.Unauthorized(c, "Could not validate credentials")
			c.Abort()
			return
		}

		c.Set("currentUser", user)
		c.Set("role", role)
		c.Next()
	}
}
