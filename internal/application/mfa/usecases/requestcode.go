package usecases

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/notification"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
	apperrors "github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

// PasswordHasher defines the interface for verification code hashing
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) error
}

// Purposes a verification code can be requested for. The purpose only
// shapes the delivery message; the code itself is purpose-agnostic.
const (
	PurposeLogin         = "login"
	PurposePasswordReset = "password_reset"
)

type RequestCodeCommand struct {
	UserID  uint
	Purpose string
}

type RequestCodeResult struct {
	EmailSent bool
	SMSSent   bool
	ExpiresAt time.Time
}

// RequestCodeUseCase issues a verification code and delivers it over every
// channel the user can receive and has consented to. Only the bcrypt hash
// of the code is persisted; the plaintext exists solely inside the outgoing
// message and is never logged.
type RequestCodeUseCase struct {
	userRepo user.Repository
	hasher   PasswordHasher
	email    notification.EmailTransport
	sms      notification.SMSTransport
	logger   logger.Interface
}

func NewRequestCodeUseCase(
	userRepo user.Repository,
	hasher PasswordHasher,
	email notification.EmailTransport,
	sms notification.SMSTransport,
	logger logger.Interface,
) *RequestCodeUseCase {
	return &RequestCodeUseCase{
		userRepo: userRepo,
		hasher:   hasher,
		email:    email,
		sms:      sms,
		logger:   logger,
	}
}

func (uc *RequestCodeUseCase) Execute(ctx context.Context, cmd RequestCodeCommand) (*RequestCodeResult, error) {
	target, err := uc.userRepo.GetByID(ctx, cmd.UserID)
	if err != nil {
		uc.logger.Errorw("failed to get user", "error", err, "user_id", cmd.UserID)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if target == nil {
		return nil, apperrors.NewNotFoundError("User not found")
	}

	// Verification codes are security messages; the notification consent
	// flags only cover non-essential mail and do not gate them.
	wantEmail := target.CanReceiveEmail()
	wantSMS := target.CanReceiveSMS()
	if !wantEmail && !wantSMS {
		return nil, apperrors.NewValidationError("No delivery channel available",
			"add an email address or phone number")
	}

	code, err := generateVerificationCode()
	if err != nil {
		uc.logger.Errorw("failed to generate verification code", "error", err)
		return nil, fmt.Errorf("failed to generate verification code: %w", err)
	}

	codeHash, err := uc.hasher.Hash(code)
	if err != nil {
		uc.logger.Errorw("failed to hash verification code", "error", err)
		return nil, fmt.Errorf("failed to hash verification code: %w", err)
	}

	now := biztime.NowUTC()
	if err := target.IssueVerificationCode(codeHash, now); err != nil {
		return nil, fmt.Errorf("failed to issue verification code: %w", err)
	}
	if err := uc.userRepo.Update(ctx, target); err != nil {
		uc.logger.Errorw("failed to persist verification code", "error", err, "user_id", target.ID)
		return nil, fmt.Errorf("failed to persist verification code: %w", err)
	}

	result := &RequestCodeResult{ExpiresAt: *target.MFACodeExpiresAt}

	// Channels deliver independently; one failing must not abort the other.
	if wantEmail {
		result.EmailSent = uc.deliverEmail(ctx, target, code, cmd.Purpose)
	}
	if wantSMS {
		result.SMSSent = uc.deliverSMS(ctx, target, code)
	}

	if !result.EmailSent && !result.SMSSent {
		uc.logger.Errorw("verification code delivery failed on all channels",
			"user_id", target.ID, "purpose", cmd.Purpose)
		return nil, apperrors.NewInternalError("Failed to deliver verification code")
	}

	uc.logger.Infow("verification code issued",
		"user_id", target.ID,
		"purpose", cmd.Purpose,
		"email_sent", result.EmailSent,
		"sms_sent", result.SMSSent)

	return result, nil
}

func (uc *RequestCodeUseCase) deliverEmail(ctx context.Context, target *user.User, code, purpose string) bool {
	subject := "Your CoogsNation verification code"
	if purpose == PurposePasswordReset {
		subject = "Your CoogsNation password reset code"
	}

	msg := notification.EmailMessage{
		To:       *target.Email,
		Subject:  subject,
		TextBody: fmt.Sprintf("Your verification code is %s. It expires in 10 minutes.", code),
	}

	if err := uc.email.SendEmail(ctx, msg); err != nil {
		if errors.Is(err, notification.ErrNotConfigured) {
			uc.logger.Warnw("email transport not configured", "user_id", target.ID)
		} else {
			uc.logger.Errorw("email delivery failed", "error", err, "user_id", target.ID)
		}
		return false
	}
	return true
}

func (uc *RequestCodeUseCase) deliverSMS(ctx context.Context, target *user.User, code string) bool {
	body := fmt.Sprintf("CoogsNation verification code: %s", code)

	if err := uc.sms.SendSMS(ctx, *target.PhoneNumber, body); err != nil {
		if errors.Is(err, notification.ErrNotConfigured) {
			uc.logger.Warnw("sms transport not configured", "user_id", target.ID)
		} else {
			uc.logger.Errorw("sms delivery failed", "error", err, "user_id", target.ID)
		}
		return false
	}
	return true
}

// generateVerificationCode returns six crypto-random decimal digits,
// zero-padded.
func generateVerificationCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}
