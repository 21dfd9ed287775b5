package usecases

import (
	"context"

	"github.com/jerphayes/Coogsnation-sub000/internal/domain/user"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/auth"
	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/cache"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

type mockUserRepository struct {
	CreateFunc        func(ctx context.Context, u *user.User) error
	GetByIDFunc       func(ctx context.Context, id uint) (*user.User, error)
	GetByEmailFunc    func(ctx context.Context, email string) (*user.User, error)
	UpdateFunc        func(ctx context.Context, u *user.User) error
	DeleteFunc        func(ctx context.Context, id uint) error
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
}

func (m *mockUserRepository) Create(ctx context.Context, u *user.User) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) GetByID(ctx context.Context, id uint) (*user.User, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFunc != nil {
		return m.GetByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

type mockIdentityRepository struct {
	CreateFunc                 func(ctx context.Context, identity *user.UserIdentity) error
	GetByProviderAndUserIDFunc func(ctx context.Context, provider, providerUserID string) (*user.UserIdentity, error)
	GetByUserIDFunc            func(ctx context.Context, userID uint) ([]*user.UserIdentity, error)
	UpdateFunc                 func(ctx context.Context, identity *user.UserIdentity) error
	DeleteFunc                 func(ctx context.Context, id uint) error
}

func (m *mockIdentityRepository) Create(ctx context.Context, identity *user.UserIdentity) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, identity)
	}
	return nil
}

func (m *mockIdentityRepository) GetByProviderAndUserID(ctx context.Context, provider, providerUserID string) (*user.UserIdentity, error) {
	if m.GetByProviderAndUserIDFunc != nil {
		return m.GetByProviderAndUserIDFunc(ctx, provider, providerUserID)
	}
	return nil, nil
}

func (m *mockIdentityRepository) GetByUserID(ctx context.Context, userID uint) ([]*user.UserIdentity, error) {
	if m.GetByUserIDFunc != nil {
		return m.GetByUserIDFunc(ctx, userID)
	}
	return nil, nil
}

func (m *mockIdentityRepository) Update(ctx context.Context, identity *user.UserIdentity) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, identity)
	}
	return nil
}

func (m *mockIdentityRepository) Delete(ctx context.Context, id uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

type mockSessionRepository struct {
	CreateFunc         func(ctx context.Context, session *user.Session) error
	GetByIDFunc        func(ctx context.Context, sessionID string) (*user.Session, error)
	DeleteFunc         func(ctx context.Context, sessionID string) error
	DeleteByUserIDFunc func(ctx context.Context, userID uint) error
	DeleteExpiredFunc  func(ctx context.Context) error
}

func (m *mockSessionRepository) Create(ctx context.Context, session *user.Session) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, session)
	}
	return nil
}

func (m *mockSessionRepository) GetByID(ctx context.Context, sessionID string) (*user.Session, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, sessionID)
	}
	return nil, nil
}

func (m *mockSessionRepository) Delete(ctx context.Context, sessionID string) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, sessionID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if m.DeleteByUserIDFunc != nil {
		return m.DeleteByUserIDFunc(ctx, userID)
	}
	return nil
}

func (m *mockSessionRepository) DeleteExpired(ctx context.Context) error {
	if m.DeleteExpiredFunc != nil {
		return m.DeleteExpiredFunc(ctx)
	}
	return nil
}

type mockStateStore struct {
	SetFunc          func(ctx context.Context, state string, info cache.LoginState) error
	VerifyAndGetFunc func(ctx context.Context, state string) (*cache.LoginState, error)
}

func (m *mockStateStore) Set(ctx context.Context, state string, info cache.LoginState) error {
	if m.SetFunc != nil {
		return m.SetFunc(ctx, state, info)
	}
	return nil
}

func (m *mockStateStore) VerifyAndGet(ctx context.Context, state string) (*cache.LoginState, error) {
	if m.VerifyAndGetFunc != nil {
		return m.VerifyAndGetFunc(ctx, state)
	}
	return nil, nil
}

type mockHasher struct {
	HashFunc   func(secret string) (string, error)
	VerifyFunc func(secret, hash string) error
}

func (m *mockHasher) Hash(secret string) (string, error) {
	if m.HashFunc != nil {
		return m.HashFunc(secret)
	}
	return "hashed:" + secret, nil
}

func (m *mockHasher) Verify(secret, hash string) error {
	if m.VerifyFunc != nil {
		return m.VerifyFunc(secret, hash)
	}
	return nil
}

// stubProvider is a canned IdentityProvider for registry-driven tests.
type stubProvider struct {
	name             string
	beginAuthFunc    func(ctx context.Context, state string) (*auth.AuthRequest, error)
	completeAuthFunc func(ctx context.Context, code, codeVerifier string) (*auth.NormalizedClaims, error)
	logoutURLFunc    func(postLogoutRedirect string) string
}

func (p *stubProvider) Name() string { return p.name }

func (p *stubProvider) BeginAuth(ctx context.Context, state string) (*auth.AuthRequest, error) {
	if p.beginAuthFunc != nil {
		return p.beginAuthFunc(ctx, state)
	}
	return &auth.AuthRequest{AuthURL: "https://provider.example/authorize?state=" + state, CodeVerifier: "verifier"}, nil
}

func (p *stubProvider) CompleteAuth(ctx context.Context, code, codeVerifier string) (*auth.NormalizedClaims, error) {
	if p.completeAuthFunc != nil {
		return p.completeAuthFunc(ctx, code, codeVerifier)
	}
	return &auth.NormalizedClaims{Subject: "subject-1"}, nil
}

func (p *stubProvider) LogoutURL(postLogoutRedirect string) string {
	if p.logoutURLFunc != nil {
		return p.logoutURLFunc(postLogoutRedirect)
	}
	return ""
}

type mockLogger struct{}

func (mockLogger) Debug(msg string, args ...any)                      {}
func (mockLogger) Info(msg string, args ...any)                       {}
func (mockLogger) Warn(msg string, args ...any)                       {}
func (mockLogger) Error(msg string, args ...any)                      {}
func (mockLogger) Fatal(msg string, args ...any)                      {}
func (m mockLogger) With(args ...any) logger.Interface                { return m }
func (m mockLogger) Named(name string) logger.Interface               { return m }
func (mockLogger) Debugw(msg string, keysAndValues ...interface{})    {}
func (mockLogger) Infow(msg string, keysAndValues ...interface{})     {}
func (mockLogger) Warnw(msg string, keysAndValues ...interface{})     {}
func (mockLogger) Errorw(msg string, keysAndValues ...interface{})    {}
func (mockLogger) Fatalw(msg string, keysAndValues ...interface{})    {}
