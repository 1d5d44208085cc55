package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"

	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/infrastructure/persistence/mappers"
	"authpanel/internal/infrastructure/persistence/models"
	"authpanel/internal/shared/constants"
	"authpanel/internal/shared/logger"
)

// allowedLinkOrderByFields maps listing sort keys to SQL expressions.
// The whitelist prevents ORDER BY injection from query parameters.
var allowedLinkOrderByFields = map[string]string{
	"id":        "links.id",
	"username":  "users.username",
	"email":     "users.email",
	"provider":  "links.provider",
	"uid":       "links.uid",
	"linked_at": "links.created_at",
}

// SocialAccountRepository implements the social account link repository on GORM.
type SocialAccountRepository struct {
	db     *gorm.DB
	mapper mappers.SocialAccountMapper
	logger logger.Interface
}

// NewSocialAccountRepository creates a new social account repository
func NewSocialAccountRepository(db *gorm.DB, logger logger.Interface) socialaccount.Repository {
	return &SocialAccountRepository{
		db:     db,
		mapper: mappers.NewSocialAccountMapper(),
		logger: logger,
	}
}

// Create creates a new link
func (r *SocialAccountRepository) Create(ctx context.Context, link *socialaccount.Link) error {
	model := r.mapper.ToModel(link)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		r.logger.Errorw("failed to create social account link", "provider", model.Provider, "error", err)
		return fmt.Errorf("failed to create social account link: %w", err)
	}

	link.SetID(model.ID)
	return nil
}

// GetByProviderAndUID retrieves a link by its unique (provider, uid) pair.
// Returns nil, nil when absent.
func (r *SocialAccountRepository) GetByProviderAndUID(ctx context.Context, provider, uid string) (*socialaccount.Link, error) {
	var model models.SocialAccountLinkModel

	if err := r.db.WithContext(ctx).
		Where("provider = ? AND uid = ?", provider, uid).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		r.logger.Errorw("failed to get social account link", "provider", provider, "error", err)
		return nil, fmt.Errorf("failed to get social account link: %w", err)
	}

	return r.mapper.ToDomain(&model), nil
}

// GetByUserID retrieves every link owned by a user
func (r *SocialAccountRepository) GetByUserID(ctx context.Context, userID uint) ([]*socialaccount.Link, error) {
	var linkModels []*models.SocialAccountLinkModel

	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&linkModels).Error; err != nil {
		r.logger.Errorw("failed to get social account links by user", "user_id", userID, "error", err)
		return nil, fmt.Errorf("failed to get social account links: %w", err)
	}

	return r.mapper.ToDomainList(linkModels), nil
}

// Delete removes a link by id
func (r *SocialAccountRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.SocialAccountLinkModel{}, id)
	if result.Error != nil {
		r.logger.Errorw("failed to delete social account link", "id", id, "error", result.Error)
		return fmt.Errorf("failed to delete social account link: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// List retrieves a filtered, ordered, paginated page of listing rows joined
// with the owning user. An empty OrderBy leaves the storage order untouched.
func (r *SocialAccountRepository) List(ctx context.Context, filter socialaccount.ListFilter) ([]socialaccount.Row, int64, error) {
	query := r.listQuery(ctx, filter)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		r.logger.Errorw("failed to count social account links", "error", err)
		return nil, 0, fmt.Errorf("failed to count social account links: %w", err)
	}

	if filter.OrderBy != "" {
		field := strings.TrimPrefix(filter.OrderBy, "-")
		column, ok := allowedLinkOrderByFields[field]
		if ok {
			direction := "ASC"
			if strings.HasPrefix(filter.OrderBy, "-") {
				direction = "DESC"
			}
			query = query.Order(fmt.Sprintf("%s %s", column, direction))
		}
	}

	if filter.PageSize > 0 {
		offset := (filter.Page - 1) * filter.PageSize
		if offset < 0 {
			offset = 0
		}
		query = query.Offset(offset).Limit(filter.PageSize)
	}

	var rows []socialaccount.Row
	if err := query.
		Select("links.id AS id, users.username AS username, users.email AS email, links.provider AS provider, links.uid AS uid, links.created_at AS linked_at").
		Scan(&rows).Error; err != nil {
		r.logger.Errorw("failed to list social account links", "error", err)
		return nil, 0, fmt.Errorf("failed to list social account links: %w", err)
	}

	return rows, total, nil
}

// listQuery builds the joined, filtered base query shared by List and its count.
func (r *SocialAccountRepository) listQuery(ctx context.Context, filter socialaccount.ListFilter) *gorm.DB {
	query := r.db.WithContext(ctx).
		Table(constants.TableSocialAccountLinks+" AS links").
		Joins("JOIN " + constants.TableUsers + " AS users ON users.id = links.user_id")

	if filter.Provider != "" {
		query = query.Where("links.provider = ?", filter.Provider)
	}
	if filter.Search != "" {
		needle := "%" + strings.ToLower(filter.Search) + "%"
		query = query.Where(
			"LOWER(users.username) LIKE ? OR LOWER(users.email) LIKE ? OR LOWER(links.uid) LIKE ?",
			needle, needle, needle,
		)
	}
	return query
}

// Count returns the total number of links
func (r *SocialAccountRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SocialAccountLinkModel{}).Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count social account links", "error", err)
		return 0, fmt.Errorf("failed to count social account links: %w", err)
	}
	return count, nil
}

// CountByProvider counts links for one provider
func (r *SocialAccountRepository) CountByProvider(ctx context.Context, provider string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SocialAccountLinkModel{}).
		Where("provider = ?", provider).
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count links by provider", "provider", provider, "error", err)
		return 0, fmt.Errorf("failed to count links by provider: %w", err)
	}
	return count, nil
}

// LastLinkedAt returns the most recent link time for a provider, or nil
// when the provider has no links. Reads the newest row rather than
// MAX(created_at): aggregates erase the declared column type on sqlite
// and come back as strings.
func (r *SocialAccountRepository) LastLinkedAt(ctx context.Context, provider string) (*time.Time, error) {
	var times []time.Time
	if err := r.db.WithContext(ctx).Model(&models.SocialAccountLinkModel{}).
		Where("provider = ?", provider).
		Order("created_at DESC").
		Limit(1).
		Pluck("created_at", &times).Error; err != nil {
		r.logger.Errorw("failed to get last link time", "provider", provider, "error", err)
		return nil, fmt.Errorf("failed to get last link time: %w", err)
	}
	if len(times) == 0 {
		return nil, nil
	}
	return &times[0], nil
}

// CountActiveUsersSince counts distinct users linked to the provider whose
// last login falls at or after the given time.
func (r *SocialAccountRepository) CountActiveUsersSince(ctx context.Context, provider string, since time.Time) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Table(constants.TableSocialAccountLinks+" AS links").
		Joins("JOIN "+constants.TableUsers+" AS users ON users.id = links.user_id").
		Where("links.provider = ?", provider).
		Where("users.last_login_at >= ?", since).
		Distinct("links.user_id").
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count active users", "provider", provider, "error", err)
		return 0, fmt.Errorf("failed to count active users: %w", err)
	}
	return count, nil
}

// CountDistinctUsers counts distinct users holding at least one link
func (r *SocialAccountRepository) CountDistinctUsers(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.SocialAccountLinkModel{}).
		Distinct("user_id").
		Count(&count).Error; err != nil {
		r.logger.Errorw("failed to count distinct linked users", "error", err)
		return 0, fmt.Errorf("failed to count distinct linked users: %w", err)
	}
	return count, nil
}

// DistinctProviders lists the providers present in the link table, ordered
// by provider id.
func (r *SocialAccountRepository) DistinctProviders(ctx context.Context) ([]string, error) {
	var providers []string
	if err := r.db.WithContext(ctx).Model(&models.SocialAccountLinkModel{}).
		Distinct().
		Order("provider ASC").
		Pluck("provider", &providers).Error; err != nil {
		r.logger.Errorw("failed to list distinct providers", "error", err)
		return nil, fmt.Errorf("failed to list distinct providers: %w", err)
	}
	return providers, nil
}
