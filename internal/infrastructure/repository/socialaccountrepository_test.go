package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/domain/user"
	"authpanel/internal/infrastructure/persistence/models"
	"authpanel/internal/shared/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{}, &models.SocialAccountLinkModel{})
	require.NoError(t, err)

	return db
}

func createTestUser(t *testing.T, repo user.Repository, username, email string) *user.User {
	u, err := user.NewUser(username, email)
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), u))
	return u
}

func createTestLink(t *testing.T, repo socialaccount.Repository, userID uint, provider, uid string) *socialaccount.Link {
	link, err := socialaccount.NewLink(userID, provider, uid, []byte(`{"id":"`+uid+`"}`))
	require.NoError(t, err)
	require.NoError(t, repo.Create(context.Background(), link))
	return link
}

func TestSocialAccountRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	users := NewUserRepository(db, log)
	repo := NewSocialAccountRepository(db, log)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice", "alice@example.com")
	link := createTestLink(t, repo, alice.ID(), "github", "gh-1001")
	assert.NotZero(t, link.ID())

	found, err := repo.GetByProviderAndUID(ctx, "github", "gh-1001")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, alice.ID(), found.UserID())
	assert.JSONEq(t, `{"id":"gh-1001"}`, string(found.RawProfile()))

	absent, err := repo.GetByProviderAndUID(ctx, "github", "nope")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestSocialAccountRepository_DuplicateProviderUID(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	users := NewUserRepository(db, log)
	repo := NewSocialAccountRepository(db, log)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice", "alice@example.com")
	bob := createTestUser(t, users, "bob", "bob@example.com")

	createTestLink(t, repo, alice.ID(), "github", "gh-1")

	dup, err := socialaccount.NewLink(bob.ID(), "github", "gh-1", nil)
	require.NoError(t, err)
	assert.Error(t, repo.Create(ctx, dup))

	// Same uid under a different provider is fine.
	other, err := socialaccount.NewLink(bob.ID(), "google", "gh-1", nil)
	require.NoError(t, err)
	assert.NoError(t, repo.Create(ctx, other))
}

func TestSocialAccountRepository_List(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	users := NewUserRepository(db, log)
	repo := NewSocialAccountRepository(db, log)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice", "alice@example.com")
	bob := createTestUser(t, users, "bob", "bob@corp.test")
	carol := createTestUser(t, users, "carol", "carol@example.com")

	createTestLink(t, repo, alice.ID(), "github", "gh-100")
	createTestLink(t, repo, bob.ID(), "github", "gh-200")
	createTestLink(t, repo, bob.ID(), "google", "g-300")
	createTestLink(t, repo, carol.ID(), "gitlab", "gl-400")

	t.Run("unfiltered returns everything", func(t *testing.T) {
		rows, total, err := repo.List(ctx, socialaccount.ListFilter{Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		assert.Len(t, rows, 4)
	})

	t.Run("provider filter", func(t *testing.T) {
		rows, total, err := repo.List(ctx, socialaccount.ListFilter{Provider: "github", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, row := range rows {
			assert.Equal(t, "github", row.Provider)
		}
	})

	t.Run("search is case-insensitive across username email and uid", func(t *testing.T) {
		rows, total, err := repo.List(ctx, socialaccount.ListFilter{Search: "BOB", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, row := range rows {
			assert.Equal(t, "bob", row.Username)
		}

		rows, total, err = repo.List(ctx, socialaccount.ListFilter{Search: "gl-4", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
		assert.Equal(t, "carol", rows[0].Username)

		// bob owns two links, both surface on an email match.
		rows, total, err = repo.List(ctx, socialaccount.ListFilter{Search: "corp.test", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 2, total)
		for _, row := range rows {
			assert.Equal(t, "bob", row.Username)
		}
	})

	t.Run("search and provider combine", func(t *testing.T) {
		_, total, err := repo.List(ctx, socialaccount.ListFilter{Provider: "github", Search: "bob", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 1, total)
	})

	t.Run("ascending and descending order by username", func(t *testing.T) {
		rows, _, err := repo.List(ctx, socialaccount.ListFilter{OrderBy: "username", Page: 1, PageSize: 25})
		require.NoError(t, err)
		require.Len(t, rows, 4)
		assert.Equal(t, "alice", rows[0].Username)
		assert.Equal(t, "carol", rows[3].Username)

		rows, _, err = repo.List(ctx, socialaccount.ListFilter{OrderBy: "-username", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.Equal(t, "carol", rows[0].Username)
	})

	t.Run("unknown sort key is ignored", func(t *testing.T) {
		rows, _, err := repo.List(ctx, socialaccount.ListFilter{OrderBy: "drop table", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.Len(t, rows, 4)
	})

	t.Run("pagination", func(t *testing.T) {
		rows, total, err := repo.List(ctx, socialaccount.ListFilter{OrderBy: "id", Page: 2, PageSize: 3})
		require.NoError(t, err)
		assert.EqualValues(t, 4, total)
		assert.Len(t, rows, 1)
	})

	t.Run("no match", func(t *testing.T) {
		rows, total, err := repo.List(ctx, socialaccount.ListFilter{Search: "zzz", Page: 1, PageSize: 25})
		require.NoError(t, err)
		assert.EqualValues(t, 0, total)
		assert.Empty(t, rows)
	})
}

func TestSocialAccountRepository_Stats(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	users := NewUserRepository(db, log)
	repo := NewSocialAccountRepository(db, log)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice", "alice@example.com")
	bob := createTestUser(t, users, "bob", "bob@example.com")

	alice.RecordLogin(time.Now())
	require.NoError(t, users.Update(ctx, alice))

	createTestLink(t, repo, alice.ID(), "github", "gh-1")
	createTestLink(t, repo, alice.ID(), "google", "g-1")
	createTestLink(t, repo, bob.ID(), "github", "gh-2")

	count, err := repo.CountByProvider(ctx, "github")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	count, err = repo.CountByProvider(ctx, "gitlab")
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// Age one github link so the lookup has to pick the newer of two rows.
	older := time.Now().Add(-48 * time.Hour).UTC()
	require.NoError(t, db.Model(&models.SocialAccountLinkModel{}).
		Where("uid = ?", "gh-1").
		Update("created_at", older).Error)

	last, err := repo.LastLinkedAt(ctx, "github")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.WithinDuration(t, time.Now(), *last, time.Minute)

	last, err = repo.LastLinkedAt(ctx, "gitlab")
	require.NoError(t, err)
	assert.Nil(t, last)

	active, err := repo.CountActiveUsersSince(ctx, "github", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	active, err = repo.CountActiveUsersSince(ctx, "google", time.Now().Add(-time.Hour))
	require.NoError(t, err)
	assert.EqualValues(t, 1, active)

	distinct, err := repo.CountDistinctUsers(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, distinct)

	providers, err := repo.DistinctProviders(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"github", "google"}, providers)
}

func TestSocialAccountRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	log := logger.NewLogger()
	users := NewUserRepository(db, log)
	repo := NewSocialAccountRepository(db, log)
	ctx := context.Background()

	alice := createTestUser(t, users, "alice", "alice@example.com")
	link := createTestLink(t, repo, alice.ID(), "github", "gh-1")

	require.NoError(t, repo.Delete(ctx, link.ID()))

	found, err := repo.GetByProviderAndUID(ctx, "github", "gh-1")
	require.NoError(t, err)
	assert.Nil(t, found)

	assert.Error(t, repo.Delete(ctx, link.ID()))
}
