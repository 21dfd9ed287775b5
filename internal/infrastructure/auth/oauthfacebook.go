package auth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/facebook"
)

type FacebookOAuthConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// FacebookOAuthProvider authenticates users via Facebook Login and reads
// the profile from the Graph API.
type FacebookOAuthProvider struct {
	config *oauth2.Config
}

type facebookUserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Picture   struct {
		Data struct {
			URL string `json:"url"`
		} `json:"data"`
	} `json:"picture"`
}

func NewFacebookOAuthProvider(cfg FacebookOAuthConfig) *FacebookOAuthProvider {
	return &FacebookOAuthProvider{
		config: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"email", "public_profile"},
			Endpoint:     facebook.Endpoint,
		},
	}
}

func (p *FacebookOAuthProvider) Name() string {
	return "facebook"
}

func (p *FacebookOAuthProvider) BeginAuth(ctx context.Context, state string) (*AuthRequest, error) {
	codeVerifier, codeChallenge, err := generatePKCEParams()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PKCE parameters: %w", err)
	}

	authURL := p.config.AuthCodeURL(state,
		oauth2.SetAuthURLParam("code_challenge", codeChallenge),
		oauth2.SetAuthURLParam("code_challenge_method", "S256"),
	)

	return &AuthRequest{AuthURL: authURL, CodeVerifier: codeVerifier}, nil
}

func (p *FacebookOAuthProvider) CompleteAuth(ctx context.Context, code, codeVerifier string) (*NormalizedClaims, error) {
	token, err := p.config.Exchange(ctx, code, oauth2.SetAuthURLParam("code_verifier", codeVerifier))
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}

	endpoint := "https://graph.facebook.com/me?fields=id,email,first_name,last_name,picture.type(large)&access_token=" +
		url.QueryEscape(token.AccessToken)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	client := &http.Client{Timeout: httpClientTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to get user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("failed to get user info: status %d, body: %s", resp.StatusCode, string(body))
	}

	var fbInfo facebookUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&fbInfo); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}

	if fbInfo.ID == "" {
		return nil, fmt.Errorf("user info missing id")
	}

	claims := &NormalizedClaims{Subject: fbInfo.ID}
	if fbInfo.Email != "" {
		claims.Email = &fbInfo.Email
	}
	if fbInfo.FirstName != "" {
		claims.FirstName = &fbInfo.FirstName
	}
	if fbInfo.LastName != "" {
		claims.LastName = &fbInfo.LastName
	}
	if fbInfo.Picture.Data.URL != "" {
		claims.ProfileImageURL = &fbInfo.Picture.Data.URL
	}

	return claims, nil
}
