// Package admin is the small host registry of the panel: plugins register
// pages and dashboard widgets, the router mounts what got registered.
package admin

import (
	"context"
	"html/template"
	"sort"
	"sync"

	"github.com/gin-gonic/gin"
)

// Page is an admin page contributed by a plugin. Permission is a
// "resource.action" string enforced by the permission gate; empty means
// any authenticated user.
type Page struct {
	ID         string
	Title      string
	Icon       string
	Path       string
	NavSection string
	NavOrder   int
	Permission string
	Handler    gin.HandlerFunc

	// Events are extra POST endpoints mounted under the page path.
	Events map[string]gin.HandlerFunc
}

// Widget is a dashboard block contributed by a plugin.
type Widget struct {
	ID     string
	Title  string
	Icon   string
	Order  int
	Render func(ctx context.Context) (template.HTML, error)
}

// Plugin contributes pages and widgets to the site.
type Plugin interface {
	Name() string
	Register(site *Site)
}

// Site collects the registered pages and widgets.
type Site struct {
	mu      sync.RWMutex
	pages   []Page
	widgets []Widget
}

func NewSite() *Site {
	return &Site{}
}

// Install runs a plugin's registration.
func (s *Site) Install(p Plugin) {
	p.Register(s)
}

func (s *Site) RegisterPage(page Page) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pages = append(s.pages, page)
}

func (s *Site) RegisterWidget(widget Widget) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.widgets = append(s.widgets, widget)
}

// Pages returns the registered pages ordered by nav section, then order.
func (s *Site) Pages() []Page {
	s.mu.RLock()
	defer s.mu.RUnlock()

	pages := make([]Page, len(s.pages))
	copy(pages, s.pages)
	sort.SliceStable(pages, func(i, j int) bool {
		if pages[i].NavSection != pages[j].NavSection {
			return pages[i].NavSection < pages[j].NavSection
		}
		return pages[i].NavOrder < pages[j].NavOrder
	})
	return pages
}

// Widgets returns the registered widgets in display order.
func (s *Site) Widgets() []Widget {
	s.mu.RLock()
	defer s.mu.RUnlock()

	widgets := make([]Widget, len(s.widgets))
	copy(widgets, s.widgets)
	sort.SliceStable(widgets, func(i, j int) bool {
		return widgets[i].Order < widgets[j].Order
	})
	return widgets
}
