package usecases

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mfausecases "github.com/jerphayes/Coogsnation-sub000/internal/application/mfa/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/notification"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
)

type captureEmailTransport struct {
	sent []notification.EmailMessage
}

func (c *captureEmailTransport) SendEmail(ctx context.Context, msg notification.EmailMessage) error {
	c.sent = append(c.sent, msg)
	return nil
}

func TestRequestPasswordResetUseCase_Execute_DeliversCode(t *testing.T) {
	account := localAccount(t)

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) {
			return account, nil
		},
		GetByIDFunc: func(ctx context.Context, id uint) (*user.User, error) {
			return account, nil
		},
	}
	transport := &captureEmailTransport{}
	requestCode := mfausecases.NewRequestCodeUseCase(
		userRepo, &mockHasher{}, transport, notification.UnconfiguredSMSTransport{}, mockLogger{})

	uc := NewRequestPasswordResetUseCase(userRepo, requestCode, mockLogger{})

	err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: "coog@uh.edu"})

	require.NoError(t, err)
	require.Len(t, transport.sent, 1)
	assert.Contains(t, transport.sent[0].Subject, "password reset")
	assert.NotNil(t, account.MFACodeHash)
}

func TestRequestPasswordResetUseCase_Execute_NonEnumerating(t *testing.T) {
	federated := user.NewFederatedUser(strPtr("fed@uh.edu"), nil, nil, nil)
	federated.ID = 8

	tests := []struct {
		name   string
		lookup func(ctx context.Context, email string) (*user.User, error)
		email  string
	}{
		{
			name:   "unknown email",
			lookup: func(ctx context.Context, email string) (*user.User, error) { return nil, nil },
			email:  "nobody@uh.edu",
		},
		{
			name:   "federated-only account",
			lookup: func(ctx context.Context, email string) (*user.User, error) { return federated, nil },
			email:  "fed@uh.edu",
		},
		{
			name:  "blank email",
			email: "  ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			userRepo := &mockUserRepository{GetByEmailFunc: tt.lookup}
			transport := &captureEmailTransport{}
			requestCode := mfausecases.NewRequestCodeUseCase(
				userRepo, &mockHasher{}, transport, notification.UnconfiguredSMSTransport{}, mockLogger{})

			uc := NewRequestPasswordResetUseCase(userRepo, requestCode, mockLogger{})

			err := uc.Execute(context.Background(), RequestPasswordResetCommand{Email: tt.email})

			// Always the same outcome, nothing delivered.
			require.NoError(t, err)
			assert.Empty(t, transport.sent)
		})
	}
}

func TestResetPasswordUseCase_Execute_Success(t *testing.T) {
	account := localAccount(t)
	require.NoError(t, account.IssueVerificationCode("code-hash", biztime.NowUTC()))

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) { return account, nil },
		GetByIDFunc:    func(ctx context.Context, id uint) (*user.User, error) { return account, nil },
	}
	hasher := &mockHasher{
		VerifyFunc: func(secret, hash string) error {
			if secret == "123456" && hash == "code-hash" {
				return nil
			}
			return fmt.Errorf("verification failed")
		},
		HashFunc: func(secret string) (string, error) { return "new-password-hash", nil },
	}

	var revokedUserID uint
	sessionRepo := &mockSessionRepository{
		DeleteByUserIDFunc: func(ctx context.Context, userID uint) error {
			revokedUserID = userID
			return nil
		},
	}

	verifyCode := mfausecases.NewVerifyCodeUseCase(userRepo, hasher, mockLogger{})
	uc := NewResetPasswordUseCase(userRepo, sessionRepo, verifyCode, hasher, mockLogger{})

	err := uc.Execute(context.Background(), ResetPasswordCommand{
		Email:       "coog@uh.edu",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})

	require.NoError(t, err)
	require.NotNil(t, account.PasswordHash)
	assert.Equal(t, "new-password-hash", *account.PasswordHash)
	assert.Nil(t, account.MFACodeHash)
	assert.Equal(t, account.ID, revokedUserID)
}

func TestResetPasswordUseCase_Execute_WrongCode(t *testing.T) {
	account := localAccount(t)
	require.NoError(t, account.IssueVerificationCode("code-hash", biztime.NowUTC()))

	userRepo := &mockUserRepository{
		GetByEmailFunc: func(ctx context.Context, email string) (*user.User, error) { return account, nil },
		GetByIDFunc:    func(ctx context.Context, id uint) (*user.User, error) { return account, nil },
	}
	hasher := &mockHasher{
		VerifyFunc: func(secret, hash string) error { return fmt.Errorf("verification failed") },
	}

	verifyCode := mfausecases.NewVerifyCodeUseCase(userRepo, hasher, mockLogger{})
	uc := NewResetPasswordUseCase(userRepo, &mockSessionRepository{}, verifyCode, hasher, mockLogger{})

	err := uc.Execute(context.Background(), ResetPasswordCommand{
		Email:       "coog@uh.edu",
		Code:        "000000",
		NewPassword: "brand-new-pass",
	})

	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "stored-hash", *account.PasswordHash)
}

func TestResetPasswordUseCase_Execute_UnknownEmailSameError(t *testing.T) {
	userRepo := &mockUserRepository{}
	verifyCode := mfausecases.NewVerifyCodeUseCase(userRepo, &mockHasher{}, mockLogger{})
	uc := NewResetPasswordUseCase(userRepo, &mockSessionRepository{}, verifyCode, &mockHasher{}, mockLogger{})

	err := uc.Execute(context.Background(), ResetPasswordCommand{
		Email:       "nobody@uh.edu",
		Code:        "123456",
		NewPassword: "brand-new-pass",
	})

	var authErr *errors.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.Equal(t, "Invalid or expired verification code", authErr.Message)
}
