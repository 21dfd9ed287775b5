package user

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
)

// SessionTTL is the fixed lifetime of a browser session.
const SessionTTL = 7 * 24 * time.Hour

// Session is a server-side login session. The browser holds only the
// opaque ID; everything else stays in the store.
type Session struct {
	ID        string
	UserID    uint
	Provider  string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// NewSession creates a session for a user authenticated via the named
// provider. The ID is 32 random bytes hex-encoded.
func NewSession(userID uint, provider string) (*Session, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if provider == "" {
		return nil, fmt.Errorf("provider is required")
	}

	id, err := generateSessionID()
	if err != nil {
		return nil, fmt.Errorf("failed to generate session ID: %w", err)
	}

	now := biztime.NowUTC()
	return &Session{
		ID:        id,
		UserID:    userID,
		Provider:  provider,
		ExpiresAt: now.Add(SessionTTL),
		CreatedAt: now,
	}, nil
}

// IsExpired reports whether the session is past its expiry.
func (s *Session) IsExpired() bool {
	return biztime.NowUTC().After(s.ExpiresAt)
}

func generateSessionID() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return hex.EncodeToString(b), nil
}

// SessionRepository defines persistence operations for sessions
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error
	GetByID(ctx context.Context, sessionID string) (*Session, error)
	Delete(ctx context.Context, sessionID string) error
	DeleteByUserID(ctx context.Context, userID uint) error
	DeleteExpired(ctx context.Context) error
}
