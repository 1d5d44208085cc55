package mappers

import (
	"authpanel/internal/domain/socialaccount"
	"authpanel/internal/infrastructure/persistence/models"
	"authpanel/internal/shared/mapper"
)

// SocialAccountMapper handles the conversion between provider link entities
// and persistence models.
type SocialAccountMapper interface {
	// ToModel converts a domain entity to a persistence model.
	ToModel(entity *socialaccount.Link) *models.SocialAccountLinkModel

	// ToDomain converts a persistence model to a domain entity.
	ToDomain(model *models.SocialAccountLinkModel) *socialaccount.Link

	// ToDomainList converts multiple persistence models to domain entities.
	ToDomainList(models []*models.SocialAccountLinkModel) []*socialaccount.Link
}

// SocialAccountMapperImpl is the concrete implementation of SocialAccountMapper.
type SocialAccountMapperImpl struct{}

// NewSocialAccountMapper creates a new SocialAccountMapper.
func NewSocialAccountMapper() SocialAccountMapper {
	return &SocialAccountMapperImpl{}
}

// ToModel converts a domain entity to a persistence model.
func (m *SocialAccountMapperImpl) ToModel(entity *socialaccount.Link) *models.SocialAccountLinkModel {
	if entity == nil {
		return nil
	}
	return &models.SocialAccountLinkModel{
		ID:         entity.ID(),
		UserID:     entity.UserID(),
		Provider:   entity.Provider(),
		UID:        entity.UID(),
		RawProfile: entity.RawProfile(),
		CreatedAt:  entity.CreatedAt(),
	}
}

// ToDomain converts a persistence model to a domain entity.
func (m *SocialAccountMapperImpl) ToDomain(model *models.SocialAccountLinkModel) *socialaccount.Link {
	if model == nil {
		return nil
	}
	return socialaccount.ReconstructLink(
		model.ID,
		model.UserID,
		model.Provider,
		model.UID,
		model.RawProfile,
		model.CreatedAt,
	)
}

// ToDomainList converts multiple persistence models to domain entities.
func (m *SocialAccountMapperImpl) ToDomainList(items []*models.SocialAccountLinkModel) []*socialaccount.Link {
	return mapper.MapSlicePtr(items, m.ToDomain)
}
