package controllers

import (
	"errors"
	"net/http"

	"github.com/aaryaa4/civic-connectt/pkg/resp"
	"github.com/aaryaa4/civic-connectt/services"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// POST /token
// Form: email, password, user_type (user|admin)
func (a *AuthController) Token(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	userType := c.PostForm("user_type")

	token, user, err := a.auth.Login(email, password, userType)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNotAdmin):
			resp.Forbidden(c, err.Error())
		case errors.Is(err, services.ErrInvalidCredentials):
			resp.Unauthorized(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user_role":    user.Role,
	})
}

// POST /register
// Form: email, full_name, password. Errors re-render the form inline;
// success redirects to the login page.
func (a *AuthController) Register(c *gin.Context) {
	email := c.PostForm("email")
	fullName := c.PostForm("full_name")
	password := c.PostForm("password")

	if _, err := a.auth.Register(email, fullName, password); err != nil {
		msg := "Something went wrong. Please try again."
		if errors.Is(err, services.ErrReservedEmail) || errors.Is(err, services.ErrEmailTaken) {
			msg = err.Error()
		}
		c.HTML(http.StatusOK, "register.html", gin.H{"error": msg})
		return
	}

	c.Redirect(http.StatusSeeOther, "/login")
}
