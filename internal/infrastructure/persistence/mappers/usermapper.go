package mappers

import (
	"authpanel/internal/domain/user"
	"authpanel/internal/infrastructure/persistence/models"
	"authpanel/internal/shared/mapper"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	// ToDomain converts a persistence model to a domain entity
	ToDomain(model *models.UserModel) *user.User

	// ToModel converts a domain entity to a persistence model
	ToModel(entity *user.User) *models.UserModel

	// ToDomainList converts multiple persistence models to domain entities
	ToDomainList(models []*models.UserModel) []*user.User
}

// UserMapperImpl is the concrete implementation of UserMapper
type UserMapperImpl struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &UserMapperImpl{}
}

// ToDomain converts a persistence model to a domain entity
func (m *UserMapperImpl) ToDomain(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}
	return user.Reconstruct(
		model.ID,
		model.Username,
		model.Email,
		model.PasswordHash,
		model.IsStaff,
		model.IsSuperuser,
		model.LastLoginAt,
		model.CreatedAt,
		model.UpdatedAt,
	)
}

// ToModel converts a domain entity to a persistence model
func (m *UserMapperImpl) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}
	return &models.UserModel{
		ID:           entity.ID(),
		Username:     entity.Username(),
		Email:        entity.Email(),
		PasswordHash: entity.PasswordHash(),
		IsStaff:      entity.IsStaff(),
		IsSuperuser:  entity.IsSuperuser(),
		LastLoginAt:  entity.LastLoginAt(),
		CreatedAt:    entity.CreatedAt(),
		UpdatedAt:    entity.UpdatedAt(),
	}
}

// ToDomainList converts multiple persistence models to domain entities
func (m *UserMapperImpl) ToDomainList(items []*models.UserModel) []*user.User {
	return mapper.MapSlicePtr(items, m.ToDomain)
}
