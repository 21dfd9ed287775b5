package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	vo "github.com/jerphayes/Coogsnation-sub000/internal/domain/user/valueobjects"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
)

func localAccount(t *testing.T) *user.User {
	t.Helper()
	email, err := vo.NewEmail("coog@uh.edu")
	require.NoError(t, err)
	u, err := user.NewLocalUser(email, "Sam", "Cougar", "stored-hash")
	require.NoError(t, err)
	u.ID = 5
	return u
}

func TestLoginLocalUseCase_Execute_Success(t *testing.T) {
	account := localAccount(t)

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			assert.Equal(t, "coog@uh.edu", email)
			return account, nil
		},
	}
	hasher := &mockHasher{
		VerifyFunc: func(secret, hash string) error {
			assert.Equal(t, "hunter2pass", secret)
			assert.Equal(t, "stored-hash", hash)
			return nil
		},
	}
	sessionRepo := &mockSessionRepository{}

	uc := NewLoginLocalUseCase(userRepo, sessionRepo, hasher, mockLogger{})

	result, err := uc.Execute(context.Background(), LoginLocalCommand{
		Email:    " Coog@UH.edu ",
		Password: "hunter2pass",
	})

	require.NoError(t, err)
	assert.Equal(t, uint(5), result.User.ID)
	assert.Equal(t, "local", result.Session.Provider)
}

func TestLoginLocalUseCase_Execute_InvalidCredentials(t *testing.T) {
	federated := user.NewFederatedUser(strPtr("fed@uh.edu"), strPtr("Sam"), strPtr("Cougar"), nil)
	federated.ID = 9

	tests := []struct {
		name   string
		lookup func(ctx context.Context, email string) (*user.User, error)
		verify func(secret, hash string) error
		cmd    LoginLocalCommand
	}{
		{
			name:   "unknown email",
			lookup: func(ctx context.Context, email string) (*user.User, error) { return nil, nil },
			cmd:    LoginLocalCommand{Email: "nobody@uh.edu", Password: "whatever1"},
		},
		{
			name:   "federated-only account",
			lookup: func(ctx context.Context, email string) (*user.User, error) { return federated, nil },
			cmd:    LoginLocalCommand{Email: "fed@uh.edu", Password: "whatever1"},
		},
		{
			name: "wrong password",
			lookup: func(ctx context.Context, email string) (*user.User, error) {
				return localAccount(t), nil
			},
			verify: func(secret, hash string) error { return fmt.Errorf("verification failed") },
			cmd:    LoginLocalCommand{Email: "coog@uh.edu", Password: "wrong"},
		},
		{
			name: "empty password",
			cmd:  LoginLocalCommand{Email: "coog@uh.edu"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepository{GetByEmailFunc: tt.lookup}
			hasher := &mockHasher{VerifyFunc: tt.verify}

			uc := NewLoginLocalUseCase(userRepo, &mockSessionRepository{}, hasher, mockLogger{})

			result, err := uc.Execute(context.Background(), tt.cmd)

			assert.Nil(t, result)
			var authErr *errors.AuthError
			require.ErrorAs(t, err, &authErr)
			// One message for every failure mode.
			assert.Equal(t, "Invalid email or password", authErr.Message)
		})
	}
}

func TestLoginLocalUseCase_Execute_RegeneratesSession(t *testing.T) {
	account := localAccount(t)

	var deleted string
	sessionRepo := &mockSessionRepository{
		DeleteFunc: func(ctx context.Context, sessionID string) error {
			deleted = sessionID
			return nil
		},
	}
	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) { return account, nil },
	}

	uc := NewLoginLocalUseCase(userRepo, sessionRepo, &mockHasher{}, mockLogger{})

	result, err := uc.Execute(context.Background(), LoginLocalCommand{
		Email:          "coog@uh.edu",
		Password:       "hunter2pass",
		PriorSessionID: "old-session",
	})

	require.NoError(t, err)
	assert.Equal(t, "old-session", deleted)
	assert.NotEqual(t, "old-session", result.Session.ID)
}
