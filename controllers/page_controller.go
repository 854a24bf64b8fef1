package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageController serves the server-rendered pages. The admin page is plain
// HTML too — the data behind it is what the API role-gates.
type PageController struct{}

func NewPageController() *PageController { return &PageController{} }

func (p *PageController) Index(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", nil)
}

func (p *PageController) Login(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", nil)
}

func (p *PageController) Register(c *gin.Context) {
	c.HTML(http.StatusOK, "register.html", nil)
}

func (p *PageController) Dashboard(c *gin.Context) {
	c.HTML(http.StatusOK, "user_dashboard.html", nil)
}

func (p *PageController) Admin(c *gin.Context) {
	c.HTML(http.StatusOK, "admin_dashboard.html", nil)
}
