package usecases

import (
	"context"
	"fmt"

	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/auth"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/cache"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/errors"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

// StateStore defines the interface for one-time login state storage
type StateStore interface {
	Set(ctx context.Context, state string, info cache.LoginState) error
	VerifyAndGet(ctx context.Context, state string) (*cache.LoginState, error)
}

type InitiateLoginCommand struct {
	Provider string
	ReturnTo string
}

type InitiateLoginResult struct {
	AuthURL string
	State   string
}

// InitiateLoginUseCase starts a federated login: it generates the state,
// asks the provider for an authorization URL, and stashes the PKCE verifier
// plus the sanitized return path until the callback redeems them.
type InitiateLoginUseCase struct {
	providers  *auth.ProviderRegistry
	stateStore StateStore
	logger     logger.Interface
}

func NewInitiateLoginUseCase(
	providers *auth.ProviderRegistry,
	stateStore StateStore,
	logger logger.Interface,
) *InitiateLoginUseCase {
	return &InitiateLoginUseCase{
		providers:  providers,
		stateStore: stateStore,
		logger:     logger,
	}
}

func (uc *InitiateLoginUseCase) Execute(ctx context.Context, cmd InitiateLoginCommand) (*InitiateLoginResult, error) {
	provider, err := uc.providers.Get(cmd.Provider)
	if err != nil {
		uc.logger.Warnw("login requested for unavailable provider", "provider", cmd.Provider)
		return nil, errors.NewProviderNotConfiguredError(cmd.Provider)
	}

	state, err := auth.GenerateState()
	if err != nil {
		uc.logger.Errorw("failed to generate state", "error", err)
		return nil, fmt.Errorf("failed to generate state: %w", err)
	}

	req, err := provider.BeginAuth(ctx, state)
	if err != nil {
		uc.logger.Errorw("failed to begin authorization", "error", err, "provider", cmd.Provider)
		return nil, fmt.Errorf("failed to begin authorization: %w", err)
	}

	returnTo := utils.SanitizeReturnURL(cmd.ReturnTo)
	if returnTo != cmd.ReturnTo && cmd.ReturnTo != "" {
		uc.logger.Warnw("unsafe returnTo rejected", "return_to", cmd.ReturnTo)
	}

	info := cache.LoginState{
		Provider:     cmd.Provider,
		CodeVerifier: req.CodeVerifier,
		ReturnTo:     returnTo,
	}
	if err := uc.stateStore.Set(ctx, state, info); err != nil {
		uc.logger.Errorw("failed to store login state", "error", err, "provider", cmd.Provider)
		return nil, fmt.Errorf("failed to store login state: %w", err)
	}

	uc.logger.Infow("federated login initiated", "provider", cmd.Provider)

	return &InitiateLoginResult{
		AuthURL: req.AuthURL,
		State:   state,
	}, nil
}
