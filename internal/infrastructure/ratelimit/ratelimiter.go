package ratelimit

import (
	"context"
	"time"
)

type RateLimitConfig struct {
	RequestsPerMinute int
	RequestsPerHour   int
	RequestsPerDay    int
}

// LoginLimit bounds credential and OAuth login attempts per client.
var LoginLimit = RateLimitConfig{
	RequestsPerMinute: 10,
	RequestsPerHour:   60,
}

// VerificationLimit bounds verification code requests so a user cannot be
// flooded with email or SMS messages.
var VerificationLimit = RateLimitConfig{
	RequestsPerMinute: 3,
	RequestsPerHour:   10,
	RequestsPerDay:    30,
}

type RateLimiter interface {
	Allow(ctx context.Context, key string, config RateLimitConfig) (bool, error)
	GetRemaining(ctx context.Context, key string, window time.Duration) (int64, error)
	Reset(ctx context.Context, key string) error
}
