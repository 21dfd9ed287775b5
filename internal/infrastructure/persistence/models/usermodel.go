package models

import (
	"time"

	"gorm.io/gorm"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
)

// UserModel represents the database persistence model for users
// This is the anti-corruption layer between domain and database
type UserModel struct {
	ID              uint    `gorm:"primarykey"`
	Email           *string `gorm:"uniqueIndex;size:255"`
	FirstName       *string `gorm:"size:100"`
	LastName        *string `gorm:"size:100"`
	ProfileImageURL *string `gorm:"size:500"`
	PhoneNumber     *string `gorm:"size:20"`
	Bio             *string `gorm:"size:1000"`

	IsLocalAccount bool    `gorm:"not null;default:false"`
	PasswordHash   *string `gorm:"size:255"`

	MFATokenHash      *string    `gorm:"column:mfa_token_hash;size:255"`
	MFATokenExpiresAt *time.Time `gorm:"column:mfa_token_expires_at"`
	MFAAttemptCount   int        `gorm:"column:mfa_attempt_count;default:0"`

	EmailNotifications bool `gorm:"default:true"`
	SMSNotifications   bool `gorm:"column:sms_notifications;default:false"`

	PostCount   int `gorm:"default:0"`
	ThreadCount int `gorm:"default:0"`

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return constants.TableUsers
}
