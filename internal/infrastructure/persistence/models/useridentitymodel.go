package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
)

// UserIdentityModel represents the database persistence model for links
// between users and external identity providers.
type UserIdentityModel struct {
	ID             uint   `gorm:"primarykey"`
	UserID         uint   `gorm:"not null;index"`
	Provider       string `gorm:"not null;size:50;uniqueIndex:idx_provider_subject"`
	ProviderUserID string `gorm:"not null;size:255;uniqueIndex:idx_provider_subject"`

	// ProfileSnapshot holds the normalized claims captured at first login
	ProfileSnapshot datatypes.JSON

	LastLoginAt *time.Time
	LoginCount  uint `gorm:"default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName specifies the table name for GORM
func (UserIdentityModel) TableName() string {
	return constants.TableUserIdentities
}
