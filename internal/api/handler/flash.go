package handler

import "github.com/gin-gonic/gin"

// flashCookie holds one message across a single redirect, read-and-clear.
const flashCookie = "grievance_flash"

func setFlash(c *gin.Context, msg string) {
	c.SetCookie(flashCookie, msg, 300, "/", "", false, true)
}

// popFlash returns the pending flash message, clearing it so it shows once.
func popFlash(c *gin.Context) string {
	msg, err := c.Cookie(flashCookie)
	if err != nil || msg == "" {
		return ""
	}
	c.SetCookie(flashCookie, "", -1, "/", "", false, true)
	return msg
}
