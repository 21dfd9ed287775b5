package mappers

import (
	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/persistence/models"
)

// UserMapper handles the conversion between domain entities and persistence models
type UserMapper interface {
	ToEntity(model *models.UserModel) *user.User
	ToModel(entity *user.User) *models.UserModel
	ToEntities(models []*models.UserModel) []*user.User
}

type userMapper struct{}

// NewUserMapper creates a new user mapper
func NewUserMapper() UserMapper {
	return &userMapper{}
}

func (m *userMapper) ToEntity(model *models.UserModel) *user.User {
	if model == nil {
		return nil
	}

	return &user.User{
		ID:                 model.ID,
		Email:              model.Email,
		FirstName:          model.FirstName,
		LastName:           model.LastName,
		ProfileImageURL:    model.ProfileImageURL,
		PhoneNumber:        model.PhoneNumber,
		Bio:                model.Bio,
		IsLocalAccount:     model.IsLocalAccount,
		PasswordHash:       model.PasswordHash,
		MFACodeHash:        model.MFATokenHash,
		MFACodeExpiresAt:   model.MFATokenExpiresAt,
		MFAAttempts:        model.MFAAttemptCount,
		EmailNotifications: model.EmailNotifications,
		SMSNotifications:   model.SMSNotifications,
		PostCount:          model.PostCount,
		ThreadCount:        model.ThreadCount,
		CreatedAt:          model.CreatedAt,
		UpdatedAt:          model.UpdatedAt,
	}
}

func (m *userMapper) ToModel(entity *user.User) *models.UserModel {
	if entity == nil {
		return nil
	}

	return &models.UserModel{
		ID:                 entity.ID,
		Email:              entity.Email,
		FirstName:          entity.FirstName,
		LastName:           entity.LastName,
		ProfileImageURL:    entity.ProfileImageURL,
		PhoneNumber:        entity.PhoneNumber,
		Bio:                entity.Bio,
		IsLocalAccount:     entity.IsLocalAccount,
		PasswordHash:       entity.PasswordHash,
		MFATokenHash:       entity.MFACodeHash,
		MFATokenExpiresAt:  entity.MFACodeExpiresAt,
		MFAAttemptCount:    entity.MFAAttempts,
		EmailNotifications: entity.EmailNotifications,
		SMSNotifications:   entity.SMSNotifications,
		PostCount:          entity.PostCount,
		ThreadCount:        entity.ThreadCount,
		CreatedAt:          entity.CreatedAt,
		UpdatedAt:          entity.UpdatedAt,
	}
}

func (m *userMapper) ToEntities(modelList []*models.UserModel) []*user.User {
	entities := make([]*user.User, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
