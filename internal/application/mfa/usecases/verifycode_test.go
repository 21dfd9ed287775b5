package usecases

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
)

func userWithCode(t *testing.T) *user.User {
	t.Helper()
	target := verifiedUser(t)
	require.NoError(t, target.IssueVerificationCode("code-hash", biztime.NowUTC()))
	return target
}

func matchCode(code string) func(secret, hash string) error {
	return func(secret, hash string) error {
		if secret == code && hash == "code-hash" {
			return nil
		}
		return fmt.Errorf("verification failed")
	}
}

func TestVerifyCodeUseCase_Execute_SingleUse(t *testing.T) {
	target := userWithCode(t)

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return target, nil },
	}
	hasher := &mockHasher{VerifyFunc: matchCode("123456")}

	uc := NewVerifyCodeUseCase(userRepo, hasher, mockLogger{})

	result, err := uc.Execute(context.Background(), VerifyCodeCommand{UserID: 4, Code: "123456"})
	require.NoError(t, err)
	assert.True(t, result.Verified)
	assert.Nil(t, target.MFACodeHash)

	// The code is gone; a replay of the same code fails.
	result, err = uc.Execute(context.Background(), VerifyCodeCommand{UserID: 4, Code: "123456"})
	assert.Nil(t, result)
	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
}

func TestVerifyCodeUseCase_Execute_WrongCodeCountsAttempts(t *testing.T) {
	target := userWithCode(t)

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return target, nil },
	}
	hasher := &mockHasher{VerifyFunc: matchCode("123456")}

	uc := NewVerifyCodeUseCase(userRepo, hasher, mockLogger{})

	for i := 1; i < user.MaxVerificationAttempts; i++ {
		_, err := uc.Execute(context.Background(), VerifyCodeCommand{UserID: 4, Code: "000000"})
		var authErr *errors.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "Invalid or expired verification code", authErr.Message)
		assert.Equal(t, i, target.MFAAttempts)
	}

	// The final failed attempt locks and clears the code.
	_, err := uc.Execute(context.Background(), VerifyCodeCommand{UserID: 4, Code: "000000"})
	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Too many attempts, request a new code", authErr.Message)
	assert.Nil(t, target.MFACodeHash)

	// Even the right code is now rejected.
	_, err = uc.Execute(context.Background(), VerifyCodeCommand{UserID: 4, Code: "123456"})
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid or expired verification code", authErr.Message)
}

func TestVerifyCodeUseCase_Execute_ExpiredCodeClearedLazily(t *testing.T) {
	target := userWithCode(t)
	expired := biztime.NowUTC().Add(-time.Minute)
	target.MFACodeExpiresAt = &expired

	updates := 0
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return target, nil },
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updates++
			return nil
		},
	}
	hasher := &mockHasher{VerifyFunc: matchCode("123456")}

	uc := NewVerifyCodeUseCase(userRepo, hasher, mockLogger{})

	result, err := uc.Execute(context.Background(), VerifyCodeCommand{UserID: 4, Code: "123456"})

	assert.Nil(t, result)
	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Nil(t, target.MFACodeHash)
	assert.Equal(t, 1, updates)
}

func TestVerifyCodeUseCase_Execute_NoOutstandingCode(t *testing.T) {
	target := verifiedUser(t)

	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return target, nil },
	}

	uc := NewVerifyCodeUseCase(userRepo, &mockHasher{}, mockLogger{})

	for _, code := range []string{"", "123456"} {
		result, err := uc.Execute(context.Background(), VerifyCodeCommand{UserID: 4, Code: code})
		assert.Nil(t, result)
		var authErr *errors.AuthError
		require.ErrorAs(t, err, &authErr)
		assert.Equal(t, "Invalid or expired verification code", authErr.Message)
	}
}

func TestCancelCodeUseCase_Execute(t *testing.T) {
	target := userWithCode(t)

	updates := 0
	userRepo := &mockUserRepository{
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) { return target, nil },
		UpdateFunc: func(ctx context.Context, u *user.User) error {
			updates++
			return nil
		},
	}

	uc := NewCancelCodeUseCase(userRepo, mockLogger{})

	require.NoError(t, uc.Execute(context.Background(), CancelCodeCommand{UserID: 4}))
	assert.Nil(t, target.MFACodeHash)
	assert.Equal(t, 1, updates)

	// Cancelling again is a no-op, not an error.
	require.NoError(t, uc.Execute(context.Background(), CancelCodeCommand{UserID: 4}))
	assert.Equal(t, 1, updates)
}

func TestCancelCodeUseCase_Execute_UserNotFound(t *testing.T) {
	uc := NewCancelCodeUseCase(&mockUserRepository{}, mockLogger{})

	err := uc.Execute(context.Background(), CancelCodeCommand{UserID: 999})
	assert.True(t, errors.IsNotFoundError(err))
}
