package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
)

func TestResolveSessionUseCase_Execute_Success(t *testing.T) {
	session, err := user.NewSession(3, constants.ProviderReplit)
	require.NoError(t, err)

	member := user.NewFederatedUser(strPtr("coog@uh.edu"), strPtr("Sam"), strPtr("Cougar"), nil)
	member.ID = 3

	sessionRepo := &mockSessionRepository{
		GetByIDFunc: func(ctx context.Context, sessionID string) (*user.Session, error) {
			return session, nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			assert.Equal(t, uint(3), id)
			return member, nil
		},
	}

	uc := NewResolveSessionUseCase(userRepo, sessionRepo, mockLogger{})

	result, err := uc.Execute(context.Background(), ResolveSessionCommand{SessionID: session.ID})

	require.NoError(t, err)
	assert.Equal(t, uint(3), result.User.ID)
	assert.Equal(t, session.ID, result.Session.ID)
}

func TestResolveSessionUseCase_Execute_ExpiredSessionDeleted(t *testing.T) {
	session, err := user.NewSession(3, constants.ProviderReplit)
	require.NoError(t, err)
	session.ExpiresAt = biztime.NowUTC().Add(-time.Hour)

	var deleted string
	sessionRepo := &mockSessionRepository{
		GetByIDFunc: func(ctx context.Context, sessionID string) (*user.Session, error) {
			return session, nil
		},
		DeleteFunc: func(ctx context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}

	uc := NewResolveSessionUseCase(&mockUserRepository{}, sessionRepo, mockLogger{})

	result, err := uc.Execute(context.Background(), ResolveSessionCommand{SessionID: session.ID})

	assert.Nil(t, result)
	assert.Equal(t, session.ID, deleted)
	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.False(t, authErr.SecurityEvent)
}

func TestResolveSessionUseCase_Execute_StaleUser(t *testing.T) {
	session, err := user.NewSession(99, constants.ProviderReplit)
	require.NoError(t, err)

	var deleted string
	sessionRepo := &mockSessionRepository{
		GetByIDFunc: func(ctx context.Context, sessionID string) (*user.Session, error) {
			return session, nil
		},
		DeleteFunc: func(ctx context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return nil, nil
		},
	}

	uc := NewResolveSessionUseCase(userRepo, sessionRepo, mockLogger{})

	result, err := uc.Execute(context.Background(), ResolveSessionCommand{SessionID: session.ID})

	assert.Nil(t, result)
	assert.Equal(t, session.ID, deleted)
	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.True(t, authErr.SecurityEvent)
}

func TestResolveSessionUseCase_Execute_UnknownOrEmptySession(t *testing.T) {
	uc := NewResolveSessionUseCase(&mockUserRepository{}, &mockSessionRepository{}, mockLogger{})

	for _, sessionID := range []string{"", "missing-session"} {
		result, err := uc.Execute(context.Background(), ResolveSessionCommand{SessionID: sessionID})

		assert.Nil(t, result)
		var authErr *errors.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, errors.ErrorTypeUnauthorized, authErr.Type)
	}
}
