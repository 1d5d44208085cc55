package usecases

import (
	"context"
	"fmt"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"authpanel/internal/application/admin/dto"
	"authpanel/internal/domain/provider"
	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

type ListSocialAccountsQuery struct {
	Provider string
	Search   string
	// OrderBy carries a leading "-" for descending, empty for default order.
	OrderBy string
	Page    int
}

// ListSocialAccountsUseCase recomputes the linked-account listing for the
// current UI state at the fixed page size.
type ListSocialAccountsUseCase struct {
	linkRepo socialaccount.Repository
	registry *provider.Registry
	titler   cases.Caser
	logger   logger.Interface
}

func NewListSocialAccountsUseCase(
	linkRepo socialaccount.Repository,
	registry *provider.Registry,
	logger logger.Interface,
) *ListSocialAccountsUseCase {
	return &ListSocialAccountsUseCase{
		linkRepo: linkRepo,
		registry: registry,
		titler:   cases.Title(language.English),
		logger:   logger,
	}
}

func (uc *ListSocialAccountsUseCase) Execute(ctx context.Context, query ListSocialAccountsQuery) (*dto.AccountListResult, error) {
	page := query.Page
	if page < 1 {
		page = constants.DefaultPage
	}

	filter := socialaccount.ListFilter{
		Provider: query.Provider,
		Search:   query.Search,
		OrderBy:  query.OrderBy,
		Page:     page,
		PageSize: constants.AccountListPageSize,
	}

	rows, total, err := uc.linkRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list social accounts", "error", err)
		return nil, fmt.Errorf("failed to list social accounts: %w", err)
	}

	accountRows := make([]dto.AccountRow, 0, len(rows))
	for _, row := range rows {
		accountRows = append(accountRows, dto.AccountRow{
			ID:       row.ID,
			Username: row.Username,
			Email:    row.Email,
			Provider: row.Provider,
			UID:      row.UID,
			LinkedAt: row.LinkedAt,
		})
	}

	totalPages := utils.TotalPages(total, constants.AccountListPageSize)

	return &dto.AccountListResult{
		Rows: accountRows,
		Pagination: dto.Pagination{
			Page:       page,
			PageSize:   constants.AccountListPageSize,
			Total:      total,
			TotalPages: totalPages,
			HasPrev:    page > 1,
			HasNext:    page < totalPages,
		},
		Providers: uc.providerOptions(ctx),
	}, nil
}

// providerOptions lists the providers present in the link table for the
// filter dropdown. Registered providers keep their display name; unknown
// ones get a title-cased label. Failures degrade to an empty dropdown.
func (uc *ListSocialAccountsUseCase) providerOptions(ctx context.Context) []dto.ProviderOption {
	ids, err := uc.linkRepo.DistinctProviders(ctx)
	if err != nil {
		uc.logger.Warnw("failed to list providers for filter", "error", err)
		return nil
	}

	options := make([]dto.ProviderOption, 0, len(ids))
	for _, id := range ids {
		label := uc.titler.String(id)
		if p, ok := uc.registry.Get(id); ok {
			label = p.Name
		}
		options = append(options, dto.ProviderOption{ID: id, Label: label})
	}
	return options
}
