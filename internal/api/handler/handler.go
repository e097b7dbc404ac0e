// Package handler wires the HTTP surface of the portal: public pages, the
// end-user submission flow and the admin review flow.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/auth"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/config"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/notify"
	"github.com/AdityaVermayc/Ruu-girlf-portal/internal/storage"
)

// Handler carries the dependencies the route handlers need.
type Handler struct {
	Store  storage.Storage
	Auth   *auth.Service
	Notify *notify.Dispatcher
	Cfg    *config.Config
}

func NewHandler(store storage.Storage, authSvc *auth.Service, dispatcher *notify.Dispatcher, cfg *config.Config) *Handler {
	return &Handler{
		Store:  store,
		Auth:   authSvc,
		Notify: dispatcher,
		Cfg:    cfg,
	}
}

// RegisterRoutes attaches every route, with the role gate composed in front
// of the guarded ones.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/", h.Home)
	r.GET("/login", h.ShowLogin)
	r.POST("/login", h.Login)
	r.GET("/logout", h.Logout)
	r.GET("/healthz", h.Health)

	asUser := h.Auth.RequireRole(auth.RoleUser)
	r.GET("/submit", asUser, h.ShowSubmit)
	r.POST("/submit", asUser, h.Submit)
	r.GET("/thankyou", asUser, h.ThankYou)
	r.GET("/my_grievances", asUser, h.MyGrievances)

	asAdmin := h.Auth.RequireRole(auth.RoleAdmin)
	r.GET("/dashboard", asAdmin, h.Dashboard)
	r.POST("/respond/:id", asAdmin, h.Respond)
	r.GET("/resolve/:id", asAdmin, h.Resolve)
}

// Home renders the landing page.
func (h *Handler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, "home.html", gin.H{
		"UserDisplayName": h.Cfg.UserName,
	})
}

// Health is a liveness probe for the deployment platform.
func (h *Handler) Health(c *gin.Context) {
	c.String(http.StatusOK, "ok")
}
