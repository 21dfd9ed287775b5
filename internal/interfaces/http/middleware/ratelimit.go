package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jerphayes/Coogsnation-sub000/internal/infrastructure/ratelimit"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

// RateLimiter enforces per-client request limits on the auth endpoints
// using the shared Redis sliding-window limiter, so the limits hold across
// instances. Redis being unavailable fails open rather than blocking all
// traffic.
type RateLimiter struct {
	limiter ratelimit.RateLimiter
	logger  logger.Interface
}

func NewRateLimiter(limiter ratelimit.RateLimiter, logger logger.Interface) *RateLimiter {
	return &RateLimiter{
		limiter: limiter,
		logger:  logger,
	}
}

// Limit returns a middleware keyed by scope and client IP. Scope separates
// the budgets of different endpoint groups (login attempts vs verification
// code requests).
func (rl *RateLimiter) Limit(scope string, cfg ratelimit.RateLimitConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := fmt.Sprintf("%s:%s", scope, c.ClientIP())

		allowed, err := rl.limiter.Allow(c.Request.Context(), key, cfg)
		if err != nil {
			rl.logger.Warnw("rate limiter unavailable, allowing request", "scope", scope, "error", err)
			c.Next()
			return
		}

		if !allowed {
			rl.logger.Warnw("rate limit exceeded",
				"scope", scope,
				"client_ip", c.ClientIP(),
				"path", c.Request.URL.Path,
			)
			utils.ErrorResponse(c, http.StatusTooManyRequests, "Too many requests, please try again later")
			c.Abort()
			return
		}

		c.Next()
	}
}
