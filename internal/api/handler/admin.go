package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

// Dashboard lists every grievance with all fields for the admin.
func (h *Handler) Dashboard(c *gin.Context) {
	grievances, err := h.Store.ListGrievances()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load grievances")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"AdminDisplayName": h.Cfg.AdminName,
		"Grievances":       grievances,
	})
}

// Respond overwrites the response text of a grievance. A nonexistent id
// updates zero rows and is a silent no-op.
func (h *Handler) Respond(c *gin.Context) {
	id, ok := grievanceID(c)
	if !ok {
		return
	}

	if err := h.Store.SetResponse(id, c.PostForm("response")); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save response")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

// Resolve marks a grievance resolved. Resolving twice is harmless.
func (h *Handler) Resolve(c *gin.Context) {
	id, ok := grievanceID(c)
	if !ok {
		return
	}

	if err := h.Store.MarkResolved(id); err != nil {
		c.String(http.StatusInternalServerError, "Failed to resolve grievance")
		return
	}

	c.Redirect(http.StatusSeeOther, "/dashboard")
}

func grievanceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "No such grievance")
		return 0, false
	}
	return uint(id), true
}
