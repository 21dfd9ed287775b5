package usecases

import (
	"context"
	"fmt"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	vo "github.com/jerphayes/Coogsnation-sub000/internal/domain/user/valueobjects"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

// minPasswordLength is the floor for local account passwords.
const minPasswordLength = 8

// PasswordHasher defines the interface for password and code hashing
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, hash string) error
}

type RegisterLocalCommand struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

type RegisterLocalResult struct {
	User    *user.User
	Session *user.Session
}

// RegisterLocalUseCase creates a password-backed account and logs it in.
type RegisterLocalUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	hasher      PasswordHasher
	logger      logger.Interface
}

func NewRegisterLocalUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	hasher PasswordHasher,
	logger logger.Interface,
) *RegisterLocalUseCase {
	return &RegisterLocalUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		hasher:      hasher,
		logger:      logger,
	}
}

func (uc *RegisterLocalUseCase) Execute(ctx context.Context, cmd RegisterLocalCommand) (*RegisterLocalResult, error) {
	email, err := vo.NewEmail(cmd.Email)
	if err != nil {
		return nil, errors.NewValidationError("Invalid email address", err.Error())
	}
	if len(cmd.Password) < minPasswordLength {
		return nil, errors.NewValidationError(
			fmt.Sprintf("Password must be at least %d characters", minPasswordLength))
	}

	exists, err := uc.userRepo.ExistsByEmail(ctx, email.String())
	if err != nil {
		uc.logger.Errorw("failed to check email existence", "error", err)
		return nil, fmt.Errorf("failed to check email existence: %w", err)
	}
	if exists {
		return nil, errors.NewConflictError("An account with this email already exists")
	}

	passwordHash, err := uc.hasher.Hash(cmd.Password)
	if err != nil {
		uc.logger.Errorw("failed to hash password", "error", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	newUser, err := user.NewLocalUser(email, cmd.FirstName, cmd.LastName, passwordHash)
	if err != nil {
		return nil, errors.NewValidationError("Invalid registration data", err.Error())
	}

	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		// Create surfaces duplicate rows as a conflict; pass it through.
		if errors.IsConflictError(err) {
			return nil, err
		}
		uc.logger.Errorw("failed to create user", "error", err)
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	session, err := user.NewSession(newUser.ID, constants.ProviderLocal)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err, "user_id", newUser.ID)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	uc.logger.Infow("local account registered", "user_id", newUser.ID)

	return &RegisterLocalResult{User: newUser, Session: session}, nil
}
