// Package provider holds the identity-provider registry: the set of
// social-login providers the panel knows how to describe, plus static
// reference data about each vendor.
package provider

import (
	"strings"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"authpanel/internal/shared/config"
)

// Provider describes one registered identity-provider plugin.
type Provider struct {
	ID       string
	Name     string
	Icon     string
	Endpoint oauth2.Endpoint
}

// builtins is the registration order of the shipped provider plugins.
var builtins = []Provider{
	{ID: "github", Name: "GitHub", Icon: "GH", Endpoint: endpoints.GitHub},
	{ID: "google", Name: "Google", Icon: "G", Endpoint: endpoints.Google},
	{ID: "gitlab", Name: "GitLab", Icon: "GL", Endpoint: endpoints.GitLab},
	{ID: "microsoft", Name: "Microsoft", Icon: "MS", Endpoint: endpoints.Microsoft},
	{ID: "twitter", Name: "Twitter", Icon: "X", Endpoint: endpoints.X},
	{ID: "facebook", Name: "Facebook", Icon: "FB", Endpoint: endpoints.Facebook},
}

// DefaultIcon derives an icon glyph for providers without a shipped one.
func DefaultIcon(id string) string {
	if len(id) >= 2 {
		return strings.ToUpper(id[:2])
	}
	return strings.ToUpper(id)
}

// Registry enumerates the configured provider plugins. The capability flag
// is resolved once at construction: when social login is disabled the
// registry behaves as empty everywhere, never as an error.
type Registry struct {
	enabled   bool
	providers []Provider
	configs   map[string]config.ProviderConfig
}

// NewRegistry builds the registry from process configuration.
func NewRegistry(cfg config.OAuthConfig) *Registry {
	return &Registry{
		enabled:   cfg.Enabled,
		providers: builtins,
		configs:   cfg.Providers,
	}
}

// NewDisabledRegistry builds a registry behaving as if the social-login
// integration were absent.
func NewDisabledRegistry() *Registry {
	return &Registry{}
}

// Enabled reports whether the social-login integration is available.
func (r *Registry) Enabled() bool {
	return r != nil && r.enabled && len(r.providers) > 0
}

// Providers returns the registered plugins in registration order.
// A disabled registry returns nil.
func (r *Registry) Providers() []Provider {
	if !r.Enabled() {
		return nil
	}
	return r.providers
}

// Get looks up a registered plugin by id.
func (r *Registry) Get(id string) (Provider, bool) {
	for _, p := range r.Providers() {
		if p.ID == id {
			return p, true
		}
	}
	return Provider{}, false
}

// Config returns the configuration block for a provider id. Unconfigured
// providers yield the zero block.
func (r *Registry) Config(id string) config.ProviderConfig {
	if r == nil || r.configs == nil {
		return config.ProviderConfig{}
	}
	return r.configs[id]
}
