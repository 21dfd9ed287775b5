package usecases

import (
	"context"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/auth"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/constants"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type LogoutCommand struct {
	SessionID string
}

type LogoutResult struct {
	// RedirectURL is where the browser should go after the session is gone:
	// the provider's end-session endpoint when the login came from a
	// provider that has one, the site root otherwise.
	RedirectURL string
}

// LogoutUseCase destroys the server-side session. Logout never fails from
// the browser's point of view; a missing or already-deleted session still
// redirects home.
type LogoutUseCase struct {
	sessionRepo user.SessionRepository
	providers   *auth.ProviderRegistry
	homeURL     string
	logger      logger.Interface
}

func NewLogoutUseCase(
	sessionRepo user.SessionRepository,
	providers *auth.ProviderRegistry,
	homeURL string,
	logger logger.Interface,
) *LogoutUseCase {
	if homeURL == "" {
		homeURL = "/"
	}
	return &LogoutUseCase{
		sessionRepo: sessionRepo,
		providers:   providers,
		homeURL:     homeURL,
		logger:      logger,
	}
}

func (uc *LogoutUseCase) Execute(ctx context.Context, cmd LogoutCommand) (*LogoutResult, error) {
	redirect := uc.homeURL

	if cmd.SessionID == "" {
		return &LogoutResult{RedirectURL: redirect}, nil
	}

	session, err := uc.sessionRepo.GetByID(ctx, cmd.SessionID)
	if err != nil {
		uc.logger.Warnw("failed to load session during logout", "error", err)
	}

	if session != nil {
		if err := uc.sessionRepo.Delete(ctx, session.ID); err != nil {
			uc.logger.Warnw("failed to delete session", "error", err, "user_id", session.UserID)
		} else {
			uc.logger.Infow("session destroyed", "user_id", session.UserID, "provider", session.Provider)
		}

		if session.Provider == constants.ProviderReplit {
			if p, perr := uc.providers.Get(session.Provider); perr == nil {
				if lp, ok := p.(auth.LogoutURLProvider); ok {
					if u := lp.LogoutURL(uc.homeURL); u != "" {
						redirect = u
					}
				}
			}
		}
	}

	return &LogoutResult{RedirectURL: redirect}, nil
}
