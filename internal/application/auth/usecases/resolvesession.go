package usecases

import (
	"context"
	"fmt"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type ResolveSessionCommand struct {
	SessionID string
}

type ResolveSessionResult struct {
	User    *user.User
	Session *user.Session
}

// ResolveSessionUseCase turns a session cookie into an authenticated user.
// The user row is re-fetched on every call; authorization decisions are
// never made against a cached copy. Expired sessions and sessions pointing
// at deleted users are removed as they are seen, and both cases ask the
// caller to clear the cookie.
type ResolveSessionUseCase struct {
	userRepo    user.Repository
	sessionRepo user.SessionRepository
	logger      logger.Interface
}

func NewResolveSessionUseCase(
	userRepo user.Repository,
	sessionRepo user.SessionRepository,
	logger logger.Interface,
) *ResolveSessionUseCase {
	return &ResolveSessionUseCase{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		logger:      logger,
	}
}

func (uc *ResolveSessionUseCase) Execute(ctx context.Context, cmd ResolveSessionCommand) (*ResolveSessionResult, error) {
	if cmd.SessionID == "" {
		return nil, errors.NewSessionExpiredError()
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		uc.logger.Errorw("failed to load session", "error", err)
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if session == nil {
		return nil, errors.NewSessionExpiredError()
	}

	if session.IsExpired() {
		if delErr := uc.sessionRepo.Delete(ctx, session.ID); delErr != nil {
			uc.logger.Warnw("failed to delete expired session", "error", delErr)
		}
		return nil, errors.NewSessionExpiredError()
	}

	current, err := uc.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		uc.logger.Errorw("failed to load session user", "error", err, "user_id", session.UserID)
		return nil, fmt.Errorf("failed to load session user: %w", err)
	}
	if current == nil {
		uc.logger.Warnw("session references missing user", "user_id", session.UserID)
		if delErr := uc.sessionRepo.Delete(ctx, session.ID); delErr != nil {
			uc.logger.Warnw("failed to delete stale session", "error", delErr)
		}
		return nil, errors.NewStaleSessionError()
	}

	return &ResolveSessionResult{User: current, Session: session}, nil
}
