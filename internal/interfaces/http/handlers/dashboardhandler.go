package handlers

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"authpanel/internal/interfaces/admin"
	"authpanel/internal/interfaces/http/middleware"
	"authpanel/internal/shared/logger"
)

// DashboardHandler renders the admin landing page from the widgets and
// pages plugins registered on the site.
type DashboardHandler struct {
	site   *admin.Site
	logger logger.Interface
}

func NewDashboardHandler(site *admin.Site, logger logger.Interface) *DashboardHandler {
	return &DashboardHandler{site: site, logger: logger}
}

type renderedWidget struct {
	Icon  string
	Title string
	HTML  template.HTML
}

// Dashboard renders every registered widget. A widget that fails to render
// is logged and skipped so one broken plugin cannot take the page down.
func (h *DashboardHandler) Dashboard(c *gin.Context) {
	widgets := h.site.Widgets()
	rendered := make([]renderedWidget, 0, len(widgets))
	for _, w := range widgets {
		html, err := w.Render(c.Request.Context())
		if err != nil {
			h.logger.Warnw("widget failed to render", "widget", w.ID, "error", err)
			continue
		}
		rendered = append(rendered, renderedWidget{Icon: w.Icon, Title: w.Title, HTML: html})
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"Title":    "Dashboard",
		"Username": middleware.CurrentUsername(c),
		"Widgets":  rendered,
		"Pages":    h.site.Pages(),
	})
}
