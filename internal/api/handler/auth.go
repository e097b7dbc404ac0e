package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/auth"
)

// ShowLogin renders the login form.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"UserDisplayName": h.Cfg.UserName,
	})
}

// Login checks the submitted credential pair and opens a session. A miss is
// a normal negative result: the form is redisplayed with an inline error.
func (h *Handler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	role, ok := h.Auth.Login(username, password)
	if !ok {
		c.HTML(http.StatusOK, "login.html", gin.H{
			"UserDisplayName": h.Cfg.UserName,
			"Error":           "Invalid credentials",
		})
		return
	}

	token, err := h.Auth.IssueToken(role)
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to create session")
		return
	}

	c.SetCookie(auth.SessionCookie, token, int(auth.SessionTTL.Seconds()), "/", "", false, true)
	c.Redirect(http.StatusSeeOther, role.LandingPath())
}

// Logout clears the session unconditionally and goes home.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie(auth.SessionCookie, "", -1, "/", "", false, true)
	c.Redirect(http.StatusSeeOther, "/")
}
