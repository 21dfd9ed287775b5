package usecases

import (
	"context"
	"fmt"
	"strings"

	mfausecases "github.com/jerphayes/Coogsnation-sub000/internal/application/mfa/usecases"
	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	apperrors "github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type ResetPasswordCommand struct {
	Email       string
	Code        string
	NewPassword string
}

// ResetPasswordUseCase completes an MFA-code-based password reset. The code
// check runs through the verification usecase, so it consumes the code and
// counts attempts exactly like any other verification. All sessions for the
// account are revoked once the password changes.
type ResetPasswordUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	verifyCode  *mfausecases.VerifyCodeUseCase
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewResetPasswordUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	verifyCode *mfausecases.VerifyCodeUseCase,
	hasher PasswordHasher,
	logger logger.Interface,
) *ResetPasswordUseCase {
	return &ResetPasswordUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		verifyCode:  verifyCode,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *ResetPasswordUseCase) Execute(ctx context.Context, cmd ResetPasswordCommand) error {
	if len(cmd.NewPassword) < minPasswordLength {
		return apperrors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	target, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil || !target.IsLocalAccount {
		// Same error as a wrong code so the endpoint stays non-enumerating.
		return apperrors.NewVerificationCodeError()
	}

	if _, err := uc.verifyCode.Execute(ctx, mfausecases.VerifyCodeCommand{
		UserID: target.ID,
		Code:   cmd.Code,
	}); err != nil {
		return err
	}

	passwordHash, err := uc.hasher.Hash(cmd.NewPassword)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return fmt.Errorf("failed to hash password: %w", err)
	}

	target.PasswordHash = &passwordHash
	target.UpdatedAt = biztime.NowUTC()
	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update password", "error", err, "user_id", target.ID)
		return fmt.Errorf("failed to update password: %w", err)
	}

	if err := uc.sessionRepo.DeleteByUserID(ctx, target.ID); err != nil {
		uc.logger.Warnw("failed to revoke sessions after password reset", "error", err, "user_id", target.ID)
	}

	uc.logger.Infow("password reset completed", "user_id", target.ID)
	return nil
}
