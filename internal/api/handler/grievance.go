package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/models"
)

// ShowSubmit renders the empty submission form.
func (h *Handler) ShowSubmit(c *gin.Context) {
	c.HTML(http.StatusOK, "submit.html", gin.H{})
}

// Submit inserts a new grievance and kicks off the best-effort notification.
// Validation is presence-only; anything non-empty is stored verbatim.
func (h *Handler) Submit(c *gin.Context) {
	title := c.PostForm("title")
	description := c.PostForm("description")
	mood := c.PostForm("mood")
	priority := c.PostForm("priority")

	if title == "" || description == "" || mood == "" || priority == "" {
		c.HTML(http.StatusBadRequest, "submit.html", gin.H{
			"Error": "All fields are required.",
		})
		return
	}

	g := &models.Grievance{
		Title:       title,
		Description: description,
		Mood:        mood,
		Priority:    priority,
	}

	if err := h.Store.CreateGrievance(g); err != nil {
		c.String(http.StatusInternalServerError, "Failed to save grievance")
		return
	}

	// Fire and forget: the insert is committed, the response must not wait
	// on the mail relay.
	go h.Notify.Dispatch(g)

	setFlash(c, fmt.Sprintf("Grievance submitted! %s has been notified 💌", h.Cfg.AdminName))
	c.Redirect(http.StatusSeeOther, "/thankyou")
}

// ThankYou renders the confirmation page after a submission.
func (h *Handler) ThankYou(c *gin.Context) {
	c.HTML(http.StatusOK, "thankyou.html", gin.H{
		"UserDisplayName":  h.Cfg.UserName,
		"AdminDisplayName": h.Cfg.AdminName,
		"Flash":            popFlash(c),
	})
}

// MyGrievances lists every grievance, newest first. There is no submitter
// column, so the listing is global by design.
func (h *Handler) MyGrievances(c *gin.Context) {
	grievances, err := h.Store.ListGrievances()
	if err != nil {
		c.String(http.StatusInternalServerError, "Failed to load grievances")
		return
	}

	c.HTML(http.StatusOK, "my_grievances.html", gin.H{
		"Grievances": grievances,
	})
}
