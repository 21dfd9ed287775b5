package models

import (
	"time"

	"gorm.io/datatypes"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
)

// SessionModel represents the database persistence model for sessions.
// The payload carries the session body as JSON; user_id is denormalized
// from it so sessions can be bulk-revoked per user.
type SessionModel struct {
	ID        string `gorm:"primarykey;size:64"`
	UserID    uint   `gorm:"not null;index"`
	Payload   datatypes.JSON
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}

// TableName specifies the table name for GORM
func (SessionModel) TableName() string {
	return constants.TableSessions
}
