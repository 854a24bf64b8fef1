package utils

import (
	"github.com/aaryaa4/civic-connectt/entity"

	"github.com/gin-gonic/gin"
)

// CurrentUser returns the user resolved by the auth middleware, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	if v, ok := c.Get("currentUser"); ok {
		if u, ok := v.(*entity.User); ok {
			return u
		}
	}
	return nil
}

// CurrentRole returns the effective role for this request. Depending on
// configuration it comes from the stored user row or from the token claim.
func CurrentRole(c *gin.Context) string {
	if v, ok := c.Get("role"); ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
