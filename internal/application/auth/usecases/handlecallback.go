package usecases

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/auth"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type HandleCallbackCommand struct {
	Provider string
	Code     string
	State    string

	// PriorSessionID is the session the browser held before this login, if
	// any. It is destroyed so every login lands on a fresh session ID.
	PriorSessionID string
}

type HandleCallbackResult struct {
	User      *user.User
	Session   *user.Session
	ReturnTo  string
	IsNewUser bool
}

// HandleCallbackUseCase completes a federated login: it redeems the one-time
// state, exchanges the authorization code, resolves the identity onto a
// canonical user, and regenerates the session.
//
// Identity resolution never merges accounts by email: a (provider, subject)
// pair that has not been seen before always creates a new user, even when
// another account carries the same email address.
type HandleCallbackUseCase struct {
	userRepo     user.Repository
	identityRepo user.UserIdentityRepository
	sessionRepo  user.SessionRepository
	providers    *auth.ProviderRegistry
	stateStore   StateStore
	logger       logger.Interface
}

func NewHandleCallbackUseCase(
	userRepo user.Repository,
	identityRepo user.UserIdentityRepository,
	sessionRepo user.SessionRepository,
	providers *auth.ProviderRegistry,
	stateStore StateStore,
	logger logger.Interface,
) *HandleCallbackUseCase {
	return &HandleCallbackUseCase{
		userRepo:     userRepo,
		identityRepo: identityRepo,
		sessionRepo:  sessionRepo,
		providers:    providers,
		stateStore:   stateStore,
		logger:       logger,
	}
}

func (uc *HandleCallbackUseCase) Execute(ctx context.Context, cmd HandleCallbackCommand) (*HandleCallbackResult, error) {
	if cmd.Code == "" {
		return nil, fmt.Errorf("authorization code is missing")
	}
	if cmd.State == "" {
		return nil, fmt.Errorf("state parameter is missing")
	}

	info, err := uc.stateStore.VerifyAndGet(ctx, cmd.State)
	if err != nil {
		uc.logger.Warnw("invalid or expired login state", "error", err, "provider", cmd.Provider)
		return nil, fmt.Errorf("invalid or expired state parameter")
	}

	if info.Provider != cmd.Provider {
		uc.logger.Warnw("state redeemed on wrong provider callback",
			"expected", info.Provider, "got", cmd.Provider)
		return nil, fmt.Errorf("state does not belong to this provider")
	}

	provider, err := uc.providers.Get(cmd.Provider)
	if err != nil {
		return nil, fmt.Errorf("identity provider unavailable: %w", err)
	}

	claims, err := provider.CompleteAuth(ctx, cmd.Code, info.CodeVerifier)
	if err != nil {
		uc.logger.Errorw("failed to complete authorization", "error", err, "provider", cmd.Provider)
		return nil, fmt.Errorf("failed to complete authorization: %w", err)
	}

	resolved, isNewUser, err := uc.resolveIdentity(ctx, cmd.Provider, claims)
	if err != nil {
		return nil, err
	}

	session, err := uc.regenerateSession(ctx, resolved.ID, cmd.Provider, cmd.PriorSessionID)
	if err != nil {
		return nil, err
	}

	uc.logger.Infow("federated login successful",
		"user_id", resolved.ID,
		"provider", cmd.Provider,
		"is_new_user", isNewUser)

	return &HandleCallbackResult{
		User:      resolved,
		Session:   session,
		ReturnTo:  info.ReturnTo,
		IsNewUser: isNewUser,
	}, nil
}

// resolveIdentity maps provider claims onto a canonical user, creating the
// user and the identity link on first sight of a (provider, subject) pair.
func (uc *HandleCallbackUseCase) resolveIdentity(ctx context.Context, providerName string, claims *auth.NormalizedClaims) (*user.User, bool, error) {
	identity, err := uc.identityRepo.GetByProviderAndUserID(ctx, providerName, claims.Subject)
	if err != nil {
		uc.logger.Errorw("failed to look up identity", "error", err, "provider", providerName)
		return nil, false, fmt.Errorf("failed to look up identity: %w", err)
	}

	if identity != nil {
		existing, err := uc.userRepo.GetByID(ctx, identity.UserID)
		if err != nil {
			uc.logger.Errorw("failed to get user", "error", err, "user_id", identity.UserID)
			return nil, false, fmt.Errorf("failed to get user: %w", err)
		}
		if existing == nil {
			uc.logger.Errorw("identity references missing user",
				"provider", providerName, "user_id", identity.UserID)
			return nil, false, fmt.Errorf("identity references missing user %d", identity.UserID)
		}

		identity.RecordLogin()
		if updateErr := uc.identityRepo.Update(ctx, identity); updateErr != nil {
			uc.logger.Warnw("failed to record identity login", "error", updateErr)
		}

		return existing, false, nil
	}

	newUser := user.NewFederatedUser(claims.Email, claims.FirstName, claims.LastName, claims.ProfileImageURL)
	if err := uc.userRepo.Create(ctx, newUser); err != nil {
		uc.logger.Errorw("failed to create user", "error", err, "provider", providerName)
		return nil, false, fmt.Errorf("failed to create user: %w", err)
	}

	snapshot, err := json.Marshal(claims)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode profile snapshot: %w", err)
	}

	newIdentity, err := user.NewUserIdentity(newUser.ID, providerName, claims.Subject, snapshot)
	if err != nil {
		return nil, false, fmt.Errorf("failed to build identity link: %w", err)
	}
	if err := uc.identityRepo.Create(ctx, newIdentity); err != nil {
		uc.logger.Errorw("failed to create identity link", "error", err, "provider", providerName)
		return nil, false, fmt.Errorf("failed to create identity link: %w", err)
	}

	return newUser, true, nil
}

// regenerateSession destroys the prior session, when present, and creates a
// fresh one so login never reuses a pre-auth session ID.
func (uc *HandleCallbackUseCase) regenerateSession(ctx context.Context, userID uint, providerName, priorSessionID string) (*user.Session, error) {
	if priorSessionID != "" {
		if err := uc.sessionRepo.Delete(ctx, priorSessionID); err != nil {
			uc.logger.Warnw("failed to delete prior session", "error", err)
		}
	}

	session, err := user.NewSession(userID, providerName)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		uc.logger.Errorw("failed to persist session", "error", err, "user_id", userID)
		return nil, fmt.Errorf("failed to persist session: %w", err)
	}

	return session, nil
}
