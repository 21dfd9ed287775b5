package auth

import (
	"context"
	"fmt"
	"sort"
	"time"
)

const (
	// httpClientTimeout is the timeout for HTTP requests to identity providers
	httpClientTimeout = 30 * time.Second
)

// NormalizedClaims is the provider-independent view of an authenticated
// identity. Subject is the only guaranteed field.
type NormalizedClaims struct {
	Subject         string  `json:"sub"`
	Email           *string `json:"email,omitempty"`
	FirstName       *string `json:"first_name,omitempty"`
	LastName        *string `json:"last_name,omitempty"`
	ProfileImageURL *string `json:"profile_image_url,omitempty"`
}

// AuthRequest is the result of beginning an authorization flow: where to
// send the browser, plus the PKCE verifier to stash server-side.
type AuthRequest struct {
	AuthURL      string
	CodeVerifier string
}

// IdentityProvider abstracts one federated login integration. BeginAuth
// builds the authorization redirect; CompleteAuth exchanges the callback
// code and returns normalized claims.
type IdentityProvider interface {
	Name() string
	BeginAuth(ctx context.Context, state string) (*AuthRequest, error)
	CompleteAuth(ctx context.Context, code, codeVerifier string) (*NormalizedClaims, error)
}

// LogoutURLProvider is implemented by providers with an end-session
// endpoint the browser should visit after local logout.
type LogoutURLProvider interface {
	LogoutURL(postLogoutRedirect string) string
}

// ProviderRegistry holds the configured identity providers keyed by name.
// Providers without credentials are never registered, so lookup failure
// means "not configured" rather than "unknown".
type ProviderRegistry struct {
	providers map[string]IdentityProvider
}

func NewProviderRegistry() *ProviderRegistry {
	return &ProviderRegistry{providers: make(map[string]IdentityProvider)}
}

// Register adds a provider to the registry.
func (r *ProviderRegistry) Register(p IdentityProvider) {
	r.providers[p.Name()] = p
}

// Get returns the named provider or an error when it is not configured.
func (r *ProviderRegistry) Get(name string) (IdentityProvider, error) {
	p, ok := r.providers[name]
	if !ok {
		return nil, fmt.Errorf("identity provider %q is not configured", name)
	}
	return p, nil
}

// Names returns the registered provider names in stable order.
func (r *ProviderRegistry) Names() []string {
	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
