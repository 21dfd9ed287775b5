package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/persistence/mappers"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/persistence/models"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
)

// UserIdentityRepository implements the user.UserIdentityRepository
// interface using GORM with Model/Mapper separation.
type UserIdentityRepository struct {
	db     *gorm.DB
	mapper mappers.UserIdentityMapper
}

// NewUserIdentityRepository creates a new UserIdentityRepository.
func NewUserIdentityRepository(db *gorm.DB) user.UserIdentityRepository {
	return &UserIdentityRepository{
		db:     db,
		mapper: mappers.NewUserIdentityMapper(),
	}
}

func (r *UserIdentityRepository) Create(ctx context.Context, identity *user.UserIdentity) error {
	model := r.mapper.ToModel(identity)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("identity is already linked")
		}
		return fmt.Errorf("failed to create user identity: %w", err)
	}
	identity.ID = model.ID
	return nil
}

func (r *UserIdentityRepository) GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*user.UserIdentity, error) {
	var model models.UserIdentityModel
	err := r.db.WithContext(ctx).
		Where("provider = ? AND provider_user_id = ?", provider, providerUserID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user identity: %w", err)
	}
	return r.mapper.ToEntity(&model), nil
}

func (r *UserIdentityRepository) GetByUserID(ctx context.Context, userID uint) ([]*user.UserIdentity, error) {
	var identityModels []*models.UserIdentityModel
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&identityModels).Error
	if err != nil {
		return nil, fmt.Errorf("failed to get user identities by user ID: %w", err)
	}
	return r.mapper.ToEntities(identityModels), nil
}

func (r *UserIdentityRepository) Update(ctx context.Context, identity *user.UserIdentity) error {
	model := r.mapper.ToModel(identity)
	result := r.db.WithContext(ctx).Save(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update user identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user identity not found")
	}
	return nil
}

func (r *UserIdentityRepository) Delete(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Delete(&models.UserIdentityModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete user identity: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("user identity not found")
	}
	return nil
}
