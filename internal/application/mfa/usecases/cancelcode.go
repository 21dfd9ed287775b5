package usecases

import (
	"context"
	"fmt"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	apperrors "github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type CancelCodeCommand struct {
	UserID uint
}

// CancelCodeUseCase discards any outstanding verification code. Cancelling
// when nothing is outstanding is a no-op, not an error.
type CancelCodeUseCase struct {
	userRepo user.Repository
	logger   logger.Interface
}

func NewCancelCodeUseCase(userRepo user.Repository, logger logger.Interface) *CancelCodeUseCase {
	return &CancelCodeUseCase{
		userRepo: userRepo,
		logger:   logger,
	}
}

func (uc *CancelCodeUseCase) Execute(ctx context.Context, cmd CancelCodeCommand) error {
	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return apperrors.NewNotFoundError("User not found")
	}

	if target.MFACodeHash == nil {
		return nil
	}

	target.ClearVerificationCode(biztime.NowUTC())
	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to clear verification code", "error", err, "user_id", target.ID)
		return fmt.Errorf("failed to clear verification code: %w", err)
	}

	uc.logger.Infow("verification code cancelled", "user_id", target.ID)
	return nil
}
