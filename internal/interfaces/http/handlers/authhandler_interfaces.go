package handlers

import (
	"context"

	"github.com/jerphayes/Coogsnation-sub000/internal/application/auth/usecases"
)

// Use case interfaces for AuthHandler - enables unit testing with mocks.

type initiateLoginUseCase interface {
	Execute(ctx context.Context, cmd usecases.InitiateLoginCommand) (*usecases.InitiateLoginResult, error)
}

type handleCallbackUseCase interface {
	Execute(ctx context.Context, cmd usecases.HandleCallbackCommand) (*usecases.HandleCallbackResult, error)
}

type registerLocalUseCase interface {
	Execute(ctx context.Context, cmd usecases.RegisterLocalCommand) (*usecases.RegisterLocalResult, error)
}

type loginLocalUseCase interface {
	Execute(ctx context.Context, cmd usecases.LoginLocalCommand) (*usecases.LoginLocalResult, error)
}

type logoutUseCase interface {
	Execute(ctx context.Context, cmd usecases.LogoutCommand) (*usecases.LogoutResult, error)
}
