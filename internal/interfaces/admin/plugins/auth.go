// Package plugins holds the admin-site plugins shipped with the panel.
package plugins

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/gin-gonic/gin"

	"authpanel/internal/application/admin/dto"
	"authpanel/internal/domain/provider"
	"authpanel/internal/interfaces/admin"
	"authpanel/internal/interfaces/http/handlers"
)

// AuthSummaryExecutor computes the dashboard authentication counters.
type AuthSummaryExecutor interface {
	Execute(ctx context.Context) (*dto.AuthSummary, error)
}

// AuthPlugin contributes the authentication pages and the summary widget
// to the admin site: the provider status page, the linked-account listing
// and the dashboard counters.
type AuthPlugin struct {
	summaryUseCase AuthSummaryExecutor
	providers      *handlers.ProviderHandler
	accounts       *handlers.AccountHandler
	registry       *provider.Registry
	templates      *template.Template
}

func NewAuthPlugin(
	summaryUseCase AuthSummaryExecutor,
	providers *handlers.ProviderHandler,
	accounts *handlers.AccountHandler,
	registry *provider.Registry,
	templates *template.Template,
) *AuthPlugin {
	return &AuthPlugin{
		summaryUseCase: summaryUseCase,
		providers:      providers,
		accounts:       accounts,
		registry:       registry,
		templates:      templates,
	}
}

func (p *AuthPlugin) Name() string {
	return "auth"
}

// Register mounts the widget and pages. The account listing only appears
// when social login is enabled; the provider page always shows, so admins
// can see why social login is off.
func (p *AuthPlugin) Register(site *admin.Site) {
	site.RegisterWidget(admin.Widget{
		ID:     "auth_summary",
		Title:  "Authentication",
		Icon:   "🔑",
		Order:  10,
		Render: p.renderSummary,
	})

	site.RegisterPage(admin.Page{
		ID:         "auth_providers",
		Title:      "OAuth providers",
		Icon:       "🔌",
		Path:       "/admin/auth/providers/",
		NavSection: "Authentication",
		NavOrder:   10,
		Permission: "admin.providers.view",
		Handler:    p.providers.Providers,
	})

	if !p.registry.Enabled() {
		return
	}

	site.RegisterPage(admin.Page{
		ID:         "auth_accounts",
		Title:      "Linked accounts",
		Icon:       "👥",
		Path:       handlers.AccountsPath,
		NavSection: "Authentication",
		NavOrder:   20,
		Permission: "admin.accounts.view",
		Handler:    p.accounts.List,
		Events: map[string]gin.HandlerFunc{
			"search": p.accounts.SearchEvent,
			"sort":   p.accounts.SortEvent,
			"filter": p.accounts.FilterEvent,
			"page":   p.accounts.PageEvent,
		},
	})
}

// renderSummary executes the widget template against fresh counters.
func (p *AuthPlugin) renderSummary(ctx context.Context) (template.HTML, error) {
	summary, err := p.summaryUseCase.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to build auth summary: %w", err)
	}

	var buf bytes.Buffer
	if err := p.templates.ExecuteTemplate(&buf, "widget_authsummary", summary); err != nil {
		return "", fmt.Errorf("failed to render auth summary widget: %w", err)
	}
	return template.HTML(buf.String()), nil
}
