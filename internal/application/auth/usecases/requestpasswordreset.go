package usecases

import (
	"context"
	"fmt"
	"strings"

	mfausecases "github.com/jerphayes/Coogsnation-sub000/internal/application/mfa/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type RequestPasswordResetCommand struct {
	Email string
}

// RequestPasswordResetUseCase starts an MFA-code-based password reset. The
// response is identical whether or not the email maps to a resettable
// account, so the endpoint cannot be used to enumerate accounts.
type RequestPasswordResetUseCase struct {
	userRepo    user.Repository
	requestCode *mfausecases.RequestCodeUseCase
	logger      logger.Interface
}

func NewRequestPasswordResetUseCase(
	userRepo user.Repository,
	requestCode *mfausecases.RequestCodeUseCase,
	logger logger.Interface,
) *RequestPasswordResetUseCase {
	return &RequestPasswordResetUseCase{
		userRepo:    userRepo,
		requestCode: requestCode,
		logger:      logger,
	}
}

func (uc *RequestPasswordResetUseCase) Execute(ctx context.Context, cmd RequestPasswordResetCommand) error {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" {
		return nil
	}

	target, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}

	if target == nil || !target.IsLocalAccount {
		uc.logger.Infow("password reset requested for non-resettable email")
		return nil
	}

	_, err = uc.requestCode.Execute(ctx, mfausecases.RequestCodeCommand{
		UserID:  target.ID,
		Purpose: mfausecases.PurposePasswordReset,
	})
	if err != nil {
		// Delivery problems are not surfaced either; the caller always
		// sees the same acknowledgement.
		uc.logger.Warnw("password reset code issuance failed", "error", err, "user_id", target.ID)
	}

	return nil
}
