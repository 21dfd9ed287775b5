package usecases

import (
	"context"
	"fmt"
	"strings"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type LoginLocalCommand struct {
	Email    string
	Password string

	// PriorSessionID is destroyed on success so the login lands on a fresh
	// session ID.
	PriorSessionID string
}

type LoginLocalResult struct {
	User    *user.User
	Session *user.Session
}

// LoginLocalUseCase authenticates a password-backed account. Every failure
// path returns the same invalid-credentials error so responses cannot be
// used to enumerate accounts or distinguish federated-only users.
type LoginLocalUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewLoginLocalUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *LoginLocalUseCase {
	return &LoginLocalUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *LoginLocalUseCase) Execute(ctx context.Context, cmd LoginLocalCommand) (*LoginLocalResult, error) {
	email := strings.ToLower(strings.TrimSpace(cmd.Email))
	if email == "" || cmd.Password == "" {
		return nil, errors.NewInvalidCredentialsError()
	}

	existing, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.Errorw("failed to get user by email", "error", err)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if existing == nil || !existing.IsLocalAccount || existing.PasswordHash == nil {
		uc.logger.Warnw("password login rejected", "reason", "no local account")
		return nil, errors.NewInvalidCredentialsError()
	}

	if err := uc.hasher.Verify(cmd.Password, *existing.PasswordHash); err != nil {
		uc.logger.Warnw("password login rejected", "reason", "bad password", "user_id", existing.ID)
		return nil, errors.NewInvalidCredentialsError()
	}

	if cmd.PriorSessionID != "" {
		if err := uc.sessionRepo.Delete(ctx, cmd.PriorSessionID); err != nil {
			uc.logger.Warnw("failed to delete prior session", "error", err)
		}
	}

	session, err := user.NewSession(existing.ID, constants.ProviderLocal)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err, "user_id", existing.ID)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	uc.logger.Infow("password login successful", "user_id", existing.ID)

	return &LoginLocalResult{User: existing, Session: session}, nil
}
