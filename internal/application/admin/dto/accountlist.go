package dto

import "time"

// AccountRow is one row of the linked-account listing.
type AccountRow struct {
	ID       uint
	Username string
	Email    string
	Provider string
	UID      string
	LinkedAt time.Time
}

// ProviderOption is a filter dropdown entry.
type ProviderOption struct {
	ID    string
	Label string
}

// Pagination describes the current listing page.
type Pagination struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	HasPrev    bool
	HasNext    bool
}

// AccountListResult is the recomputed listing for the current UI state.
type AccountListResult struct {
	Rows       []AccountRow
	Pagination Pagination
	Providers  []ProviderOption
}
