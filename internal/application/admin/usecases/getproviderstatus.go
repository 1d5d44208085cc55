package usecases

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"authpanel/internal/application/admin/dto"
	"authpanel/internal/application/markdown"
	"authpanel/internal/domain/provider"
	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/domain/user"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

type GetProviderStatusQuery struct {
	// Scheme and Host of the current request, used to build callback URLs.
	Scheme string
	Host   string
}

// linkStats carries the per-provider link figures. A failed lookup leaves
// the zero value in place so one broken provider cannot blank the page.
type linkStats struct {
	linkedAccounts int64
	lastLinkedAt   *time.Time
	activeUsers    int64
}

// GetProviderStatusUseCase builds the providers page: a site-wide adoption
// overview plus one status report per registered provider, from
// configuration, link statistics and static vendor reference data.
type GetProviderStatusUseCase struct {
	registry *provider.Registry
	userRepo user.Repository
	linkRepo socialaccount.Repository
	markdown *markdown.Service
	logger   logger.Interface
}

func NewGetProviderStatusUseCase(
	registry *provider.Registry,
	userRepo user.Repository,
	linkRepo socialaccount.Repository,
	markdownSvc *markdown.Service,
	logger logger.Interface,
) *GetProviderStatusUseCase {
	return &GetProviderStatusUseCase{
		registry: registry,
		userRepo: userRepo,
		linkRepo: linkRepo,
		markdown: markdownSvc,
		logger:   logger,
	}
}

func (uc *GetProviderStatusUseCase) Execute(ctx context.Context, query GetProviderStatusQuery) (*dto.ProviderStatusPage, error) {
	page := &dto.ProviderStatusPage{Reports: []dto.ProviderStatusReport{}}

	// Integration off means a zeroed page, never an error.
	if !uc.registry.Enabled() {
		return page, nil
	}

	page.Overview = uc.buildOverview(ctx)

	providers := uc.registry.Providers()
	for _, p := range providers {
		page.Reports = append(page.Reports, uc.buildReport(ctx, p, query))
	}

	return page, nil
}

// buildOverview gathers the site-wide figures heading the page. A failed
// count is logged and leaves its zero in place.
func (uc *GetProviderStatusUseCase) buildOverview(ctx context.Context) dto.ProviderOverview {
	var overview dto.ProviderOverview

	if n, err := uc.userRepo.Count(ctx); err != nil {
		uc.logger.Warnw("failed to count users", "error", err)
	} else {
		overview.TotalUsers = n
	}
	if n, err := uc.linkRepo.Count(ctx); err != nil {
		uc.logger.Warnw("failed to count social account links", "error", err)
	} else {
		overview.LinkedAccounts = n
	}
	if n, err := uc.linkRepo.CountDistinctUsers(ctx); err != nil {
		uc.logger.Warnw("failed to count linked users", "error", err)
	} else {
		overview.LinkedUsers = n
	}

	if overview.TotalUsers > 0 {
		ratio := float64(overview.LinkedUsers) / float64(overview.TotalUsers)
		overview.AdoptionRate = math.Round(ratio*1000) / 10
	}
	return overview
}

func (uc *GetProviderStatusUseCase) buildReport(ctx context.Context, p provider.Provider, query GetProviderStatusQuery) dto.ProviderStatusReport {
	cfg := uc.registry.Config(p.ID)
	stats := uc.collectLinkStats(ctx, p.ID)
	ref := provider.ReferenceFor(p.ID)

	clientID := cfg.App.ClientID
	hasSecret := cfg.App.Secret != ""

	// Scope belongs at the provider level. A scope list found only inside
	// the app credentials block still takes effect but gets flagged.
	scopes := cfg.Scope
	scopeMisplaced := false
	if len(scopes) == 0 && len(cfg.App.Scope) > 0 {
		scopes = cfg.App.Scope
		scopeMisplaced = true
	}

	icon := p.Icon
	if icon == "" {
		icon = provider.DefaultIcon(p.ID)
	}

	guideHTML, err := uc.markdown.Render(ref.SetupGuide)
	if err != nil {
		uc.logger.Warnw("failed to render setup guide", "provider", p.ID, "error", err)
	}

	return dto.ProviderStatusReport{
		ID:   p.ID,
		Name: p.Name,
		Icon: icon,

		Configured:     clientID != "" && hasSecret,
		MaskedClientID: utils.MaskClientID(clientID),
		HasSecret:      hasSecret,
		CallbackURL:    fmt.Sprintf("%s://%s/accounts/%s/login/callback/", query.Scheme, query.Host, p.ID),

		Scopes:         scopes,
		ScopeMisplaced: scopeMisplaced,
		ExtraSettings:  cfg.Extra,

		LinkedAccounts: stats.linkedAccounts,
		LastLinkedAt:   stats.lastLinkedAt,
		ActiveUsers:    stats.activeUsers,

		RecommendedScopes: ref.RecommendedScopes,
		ConsoleURL:        ref.ConsoleURL,
		ConsoleLabel:      ref.ConsoleLabel,
		SetupGuideHTML:    guideHTML,

		Checklist: []dto.ChecklistItem{
			{Label: "OAuth client id configured", Done: clientID != ""},
			{Label: "Client secret configured", Done: hasSecret},
			{Label: "Scopes configured", Done: len(scopes) > 0},
		},
		ConfigSnippet: buildConfigSnippet(p.ID, scopes, ref.RecommendedScopes),
	}
}

// collectLinkStats gathers the link figures for one provider. Any query
// failure is logged and leaves zeros; the rest of the report still renders.
func (uc *GetProviderStatusUseCase) collectLinkStats(ctx context.Context, providerID string) linkStats {
	var stats linkStats

	count, err := uc.linkRepo.CountByProvider(ctx, providerID)
	if err != nil {
		uc.logger.Warnw("failed to count provider links", "provider", providerID, "error", err)
		return stats
	}
	stats.linkedAccounts = count

	last, err := uc.linkRepo.LastLinkedAt(ctx, providerID)
	if err != nil {
		uc.logger.Warnw("failed to get last link time", "provider", providerID, "error", err)
		return stats
	}
	stats.lastLinkedAt = last

	active, err := uc.linkRepo.CountActiveUsersSince(ctx, providerID, time.Now().Add(-constants.ActiveUserWindow))
	if err != nil {
		uc.logger.Warnw("failed to count active users", "provider", providerID, "error", err)
		return stats
	}
	stats.activeUsers = active

	return stats
}

type snippetApp struct {
	ClientID string `yaml:"client_id"`
	Secret   string `yaml:"secret"`
}

type snippetProvider struct {
	App   snippetApp `yaml:"app"`
	Scope []string   `yaml:"scope,omitempty"`
}

// buildConfigSnippet generates the YAML block an operator can paste into
// the config file, with upper-cased env-var placeholders for credentials
// and the effective scopes (falling back to the recommended ones).
func buildConfigSnippet(providerID string, scopes, recommended []string) string {
	envPrefix := strings.ToUpper(strings.ReplaceAll(providerID, "-", "_"))

	snippetScopes := scopes
	if len(snippetScopes) == 0 {
		snippetScopes = recommended
	}

	doc := map[string]any{
		"oauth": map[string]any{
			"providers": map[string]snippetProvider{
				providerID: {
					App: snippetApp{
						ClientID: fmt.Sprintf("${%s_CLIENT_ID}", envPrefix),
						Secret:   fmt.Sprintf("${%s_CLIENT_SECRET}", envPrefix),
					},
					Scope: snippetScopes,
				},
			},
		},
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return ""
	}
	return string(out)
}
