package mappers

import (
	"gorm.io/datatypes"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/persistence/models"
)

// UserIdentityMapper converts between identity link entities and models
type UserIdentityMapper interface {
	ToEntity(model *models.UserIdentityModel) *user.UserIdentity
	ToModel(entity *user.UserIdentity) *models.UserIdentityModel
	ToEntities(models []*models.UserIdentityModel) []*user.UserIdentity
}

type userIdentityMapper struct{}

// NewUserIdentityMapper creates a new identity mapper
func NewUserIdentityMapper() UserIdentityMapper {
	return &userIdentityMapper{}
}

func (m *userIdentityMapper) ToEntity(model *models.UserIdentityModel) *user.UserIdentity {
	if model == nil {
		return nil
	}

	return &user.UserIdentity{
		ID:              model.ID,
		UserID:          model.UserID,
		Provider:        model.Provider,
		ProviderUserID:  model.ProviderUserID,
		ProfileSnapshot: []byte(model.ProfileSnapshot),
		LastLoginAt:     model.LastLoginAt,
		LoginCount:      model.LoginCount,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func (m *userIdentityMapper) ToModel(entity *user.UserIdentity) *models.UserIdentityModel {
	if entity == nil {
		return nil
	}

	return &models.UserIdentityModel{
		ID:              entity.ID,
		UserID:          entity.UserID,
		Provider:        entity.Provider,
		ProviderUserID:  entity.ProviderUserID,
		ProfileSnapshot: datatypes.JSON(entity.ProfileSnapshot),
		LastLoginAt:     entity.LastLoginAt,
		LoginCount:      entity.LoginCount,
		CreatedAt:       entity.CreatedAt,
		UpdatedAt:       entity.UpdatedAt,
	}
}

func (m *userIdentityMapper) ToEntities(modelList []*models.UserIdentityModel) []*user.UserIdentity {
	entities := make([]*user.UserIdentity, 0, len(modelList))
	for _, model := range modelList {
		entities = append(entities, m.ToEntity(model))
	}
	return entities
}
