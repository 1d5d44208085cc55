package dto

import (
	"html/template"
	"time"
)

// ProviderOverview heads the providers page with site-wide adoption
// figures.
type ProviderOverview struct {
	TotalUsers     int64
	LinkedAccounts int64
	LinkedUsers    int64
	// AdoptionRate is the share of users holding at least one link, as a
	// percentage rounded to one decimal.
	AdoptionRate float64
}

// ProviderStatusPage bundles the overview with the per-provider reports.
type ProviderStatusPage struct {
	Overview ProviderOverview
	Reports  []ProviderStatusReport
}

// ChecklistItem is one setup step with its completion state. Completion
// reflects configuration only, never secret values.
type ChecklistItem struct {
	Label string
	Done  bool
}

// ProviderStatusReport is the per-provider row of the providers page,
// recomputed fresh on every render.
type ProviderStatusReport struct {
	ID   string
	Name string
	Icon string

	Configured     bool
	MaskedClientID string
	HasSecret      bool
	CallbackURL    string

	Scopes         []string
	ScopeMisplaced bool
	ExtraSettings  map[string]any

	LinkedAccounts int64
	LastLinkedAt   *time.Time
	ActiveUsers    int64

	RecommendedScopes []string
	ConsoleURL        string
	ConsoleLabel      string
	SetupGuideHTML    template.HTML

	Checklist     []ChecklistItem
	ConfigSnippet string
}
