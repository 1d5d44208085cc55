package usecases

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"authpanel/internal/domain/provider"
	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/shared/config"
	"authpanel/internal/shared/logger"
)

func TestListSocialAccounts_Pagination(t *testing.T) {
	links := newFakeLinkRepo()
	for i := 0; i < 30; i++ {
		links.rows = append(links.rows, socialaccount.Row{
			ID:       uint(i + 1),
			Username: "user",
			Provider: "github",
			UID:      "uid",
			LinkedAt: time.Now(),
		})
	}

	uc := NewListSocialAccountsUseCase(links, provider.NewRegistry(config.OAuthConfig{Enabled: true}), logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListSocialAccountsQuery{Page: 1})
	require.NoError(t, err)
	assert.Len(t, result.Rows, 25)
	assert.EqualValues(t, 30, result.Pagination.Total)
	assert.Equal(t, 2, result.Pagination.TotalPages)
	assert.False(t, result.Pagination.HasPrev)
	assert.True(t, result.Pagination.HasNext)

	result, err = uc.Execute(context.Background(), ListSocialAccountsQuery{Page: 2})
	require.NoError(t, err)
	assert.Len(t, result.Rows, 5)
	assert.True(t, result.Pagination.HasPrev)
	assert.False(t, result.Pagination.HasNext)
}

func TestListSocialAccounts_DefaultsInvalidPage(t *testing.T) {
	uc := NewListSocialAccountsUseCase(newFakeLinkRepo(), provider.NewRegistry(config.OAuthConfig{Enabled: true}), logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListSocialAccountsQuery{Page: 0})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Pagination.Page)
	assert.Equal(t, 25, result.Pagination.PageSize)
}

func TestListSocialAccounts_ProviderOptions(t *testing.T) {
	links := newFakeLinkRepo()
	links.providers = []string{"github", "homebrew-idp"}

	uc := NewListSocialAccountsUseCase(links, provider.NewRegistry(config.OAuthConfig{Enabled: true}), logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListSocialAccountsQuery{Page: 1})
	require.NoError(t, err)
	require.Len(t, result.Providers, 2)

	// Registered providers keep their display name, unknown ones get a
	// title-cased label.
	assert.Equal(t, "GitHub", result.Providers[0].Label)
	assert.Equal(t, "Homebrew-Idp", result.Providers[1].Label)
}

func TestListSocialAccounts_ListFailureSurfaces(t *testing.T) {
	links := newFakeLinkRepo()
	links.listErr = errors.New("db down")

	uc := NewListSocialAccountsUseCase(links, provider.NewRegistry(config.OAuthConfig{Enabled: true}), logger.NewLogger())

	result, err := uc.Execute(context.Background(), ListSocialAccountsQuery{Page: 1})
	assert.Nil(t, result)
	assert.Error(t, err)
}
