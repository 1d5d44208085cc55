package handlers

import (
	"context"

	"authpanel/internal/application/admin/dto"
	adminUsecases "authpanel/internal/application/admin/usecases"
)

// ProviderStatusExecutor builds the providers page with its adoption
// overview and per-provider status reports.
type ProviderStatusExecutor interface {
	Execute(ctx context.Context, query adminUsecases.GetProviderStatusQuery) (*dto.ProviderStatusPage, error)
}

// AccountListExecutor recomputes the linked-account listing.
type AccountListExecutor interface {
	Execute(ctx context.Context, query adminUsecases.ListSocialAccountsQuery) (*dto.AccountListResult, error)
}
