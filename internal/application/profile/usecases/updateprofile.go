package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	vo "github.com/jerphayes/Coogsnation-sub000/internal/domain/user/valueobjects"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	apperrors "github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

// UpdateProfileCommand carries the profile fields to change. Nil pointers
// leave the field untouched; pointers to empty strings clear it.
type UpdateProfileCommand struct {
	UserID uint

	FirstName       *string
	LastName        *string
	Bio             *string
	ProfileImageURL *string
	PhoneNumber     *string

	EmailNotifications *bool
	SMSNotifications   *bool
}

type UpdateProfileResult struct {
	User *user.User
}

// UpdateProfileUseCase applies profile updates after stripping any markup
// from the free-text fields. Phone numbers are normalized to E.164 before
// storage.
type UpdateProfileUseCase struct {
	userRepo  user.Repository
	sanitizer *bluemonday.Policy
	logger    logger.Interface
}

func NewUpdateProfileUseCase(userRepo user.Repository, logger logger.Interface) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{
		userRepo:  userRepo,
		sanitizer: bluemonday.StrictPolicy(),
		logger:    logger,
	}
}

func (uc *UpdateProfileUseCase) Execute(ctx context.Context, cmd UpdateProfileCommand) (*UpdateProfileResult, error) {
	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	now := biztime.NowUTC()

	target.UpdateProfile(
		uc.sanitize(cmd.FirstName),
		uc.sanitize(cmd.LastName),
		uc.sanitize(cmd.Bio),
		uc.sanitize(cmd.ProfileImageURL),
		now,
	)

	if cmd.PhoneNumber != nil {
		if strings.TrimSpace(*cmd.PhoneNumber) == "" {
			target.SetPhoneNumber(nil, now)
		} else {
			phone, err := vo.NewPhone(*cmd.PhoneNumber)
			if err != nil {
				return nil, apperrors.NewValidationError("Invalid phone number", err.Error())
			}
			target.SetPhoneNumber(phone, now)
		}
	}

	if cmd.EmailNotifications != nil || cmd.SMSNotifications != nil {
		emailPref := target.EmailNotifications
		smsPref := target.SMSNotifications
		if cmd.EmailNotifications != nil {
			emailPref = *cmd.EmailNotifications
		}
		if cmd.SMSNotifications != nil {
			smsPref = *cmd.SMSNotifications
		}
		target.SetNotificationPreferences(emailPref, smsPref, now)
	}

	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to update profile", "error", err, "user_id", target.ID)
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	uc.logger.Infow("profile updated", "user_id", target.ID)

	return &UpdateProfileResult{User: target}, nil
}

// sanitize strips markup and trims whitespace, preserving the
// nil-means-unchanged convention.
func (uc *UpdateProfileUseCase) sanitize(s *string) *string {
	if s == nil {
		return nil
	}
	clean := strings.TrimSpace(uc.sanitizer.Sanitize(*s))
	return &clean
}
