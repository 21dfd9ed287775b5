package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/biztime"
)

// LoginState carries everything stashed between the authorization redirect
// and the provider callback: the PKCE verifier and the sanitized post-login
// return path.
type LoginState struct {
	Provider     string    `json:"provider"`
	CodeVerifier string    `json:"code_verifier,omitempty"`
	ReturnTo     string    `json:"return_to"`
	CreatedAt    time.Time `json:"created_at"`
}

// LoginStateStore provides Redis-backed one-time state storage for the
// federated login flows.
type LoginStateStore struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewLoginStateStore creates a LoginStateStore. Keys expire after ttl
// (ten minutes is the expected setting).
func NewLoginStateStore(client *redis.Client, prefix string, ttl time.Duration) *LoginStateStore {
	return &LoginStateStore{
		client: client,
		prefix: prefix,
		ttl:    ttl,
	}
}

// Set stores the login state under the state parameter with TTL.
func (s *LoginStateStore) Set(ctx context.Context, state string, info LoginState) error {
	if state == "" {
		return errors.New("state cannot be empty")
	}
	if info.Provider == "" {
		return errors.New("provider cannot be empty")
	}

	info.CreatedAt = biztime.NowUTC()

	data, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal login state: %w", err)
	}

	key := s.buildKey(state)
	if err := s.client.Set(ctx, key, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to store login state in redis: %w", err)
	}

	return nil
}

// VerifyAndGet retrieves and deletes the login state atomically via GETDEL,
// so a state value can only ever be redeemed once.
func (s *LoginStateStore) VerifyAndGet(ctx context.Context, state string) (*LoginState, error) {
	if state == "" {
		return nil, errors.New("state cannot be empty")
	}

	key := s.buildKey(state)

	data, err := s.client.GetDel(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errors.New("state not found or expired")
		}
		return nil, fmt.Errorf("failed to retrieve login state from redis: %w", err)
	}

	var info LoginState
	if err := json.Unmarshal([]byte(data), &info); err != nil {
		return nil, fmt.Errorf("failed to unmarshal login state: %w", err)
	}

	return &info, nil
}

func (s *LoginStateStore) buildKey(state string) string {
	return s.prefix + state
}
