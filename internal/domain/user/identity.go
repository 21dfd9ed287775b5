package user

import (
	"context"
	"fmt"
	"time"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
)

// UserIdentity links a canonical user to an account at an external identity
// provider. The (Provider, ProviderUserID) pair is unique; a user may hold
// one identity per provider.
type UserIdentity struct {
	ID             uint
	UserID         uint
	Provider       string
	ProviderUserID string

	// ProfileSnapshot is the normalized claims captured at first login,
	// stored as-is for audit. It is never used to update the user row.
	ProfileSnapshot []byte

	LastLoginAt *time.Time
	LoginCount  uint
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewUserIdentity creates an identity link for a user.
func NewUserIdentity(userID uint, provider, providerUserID string, profileSnapshot []byte) (*UserIdentity, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}
	if providerUserID == "" {
		return nil, fmt.Errorf("provider user ID is required")
	}

	now := biztime.NowUTC()
	return &UserIdentity{
		UserID:          userID,
		Provider:        provider,
		ProviderUserID:  providerUserID,
		ProfileSnapshot: profileSnapshot,
		LoginCount:      1,
		LastLoginAt:     &now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}

// RecordLogin bumps the login counter and timestamp.
func (i *UserIdentity) RecordLogin() {
	i.LoginCount++
	now := biztime.NowUTC()
	i.LastLoginAt = &now
	i.UpdatedAt = now
}

// UserIdentityRepository defines persistence operations for identity links
type UserIdentityRepository interface {
	Create(ctx context.Context, identity *UserIdentity) error
	GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*UserIdentity, error)
	GetByUserID(ctx context.Context, userID uint) ([]*UserIdentity, error)
	Update(ctx context.Context, identity *UserIdentity) error
	Delete(ctx context.Context, id uint) error
}
