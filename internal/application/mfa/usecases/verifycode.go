package usecases

import (
	"context"
	"fmt"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	apperrors "github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type VerifyCodeCommand struct {
	UserID uint
	Code   string
}

type VerifyCodeResult struct {
	Verified bool
}

// VerifyCodeUseCase checks a submitted verification code against the
// outstanding hash. Codes are single-use: a match clears the stored hash
// immediately. Wrong codes count against the attempt limit, and the limit
// being hit invalidates the code entirely. Every failure mode returns the
// same error so responses do not reveal whether a code is outstanding.
type VerifyCodeUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	logger   logger.Interface
}

func NewVerifyCodeUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	logger logger.Interface,
) *VerifyCodeUseCase {
	return &VerifyCodeUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		logger:   logger,
	}
}

func (uc *VerifyCodeUseCase) Execute(ctx context.Context, cmd VerifyCodeCommand) (*VerifyCodeResult, error) {
	if cmd.Code == "" {
		return nil, apperrors.NewVerificationCodeError()
	}

	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	now := biztime.NowUTC()

	if !target.HasActiveVerificationCode(now) {
		// Expired codes are cleared lazily, the first time they are seen.
		if target.MFACodeHash != nil {
			target.ClearVerificationCode(now)
			if updateErr := uc.userRepo.Update(ctx, target); updateErr != nil {
				uc.logger.Warnw("failed to clear expired code", "error", updateErr, "user_id", target.ID)
			}
		}
		uc.logger.Warnw("verification attempted without active code", "user_id", target.ID)
		return nil, apperrors.NewVerificationCodeError()
	}

	if err := uc.hasher.Verify(cmd.Code, *target.MFACodeHash); err != nil {
		locked := target.RecordFailedVerification(now)
		if updateErr := uc.userRepo.Update(ctx, target); updateErr != nil {
			uc.logger.Errorw("failed to record verification attempt", "error", updateErr, "user_id", target.ID)
			return nil, fmt.Errorf("failed to record verification attempt: %w", updateErr)
		}

		if locked {
			uc.logger.Warnw("verification code locked out", "user_id", target.ID)
			return nil, apperrors.NewVerificationLockedError()
		}
		uc.logger.Warnw("verification code mismatch",
			"user_id", target.ID, "attempts", target.MFAAttempts)
		return nil, apperrors.NewVerificationCodeError()
	}

	target.ClearVerificationCode(now)
	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to clear verified code", "error", err, "user_id", target.ID)
		return nil, fmt.Errorf("failed to clear verified code: %w", err)
	}

	uc.logger.Infow("verification code accepted", "user_id", target.ID)

	return &VerifyCodeResult{Verified: true}, nil
}
