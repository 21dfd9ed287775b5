package notification

import (
	"errors"
	"math/rand"
	"net"
	"net/http"
	"strconv"
	"time"
)

const (
	initialBackoff = 1 * time.Second
	maxBackoff     = 10 * time.Second
)

// isRetryableStatus reports whether an HTTP status is worth retrying:
// rate limits and transient server errors.
func isRetryableStatus(status int) bool {
	return status == http.StatusTooManyRequests || status >= 500
}

// isRetryableError reports whether a transport-level error is transient.
func isRetryableError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	var de *DeliveryError
	if errors.As(err, &de) {
		return isRetryableStatus(de.StatusCode)
	}
	return false
}

// retryDelay honors a Retry-After header when present, else uses the
// exponential backoff value, clamped and jittered.
func retryDelay(resp *http.Response, backoff time.Duration) time.Duration {
	delay := backoff
	if resp != nil {
		if ra := resp.Header.Get("Retry-After"); ra != "" {
			if secs, err := strconv.Atoi(ra); err == nil && secs > 0 {
				delay = time.Duration(secs) * time.Second
			}
		}
	}
	if delay > maxBackoff {
		delay = maxBackoff
	}
	// Up to 25% jitter keeps concurrent retries from synchronizing
	jitter := time.Duration(rand.Int63n(int64(delay)/4 + 1))
	return delay + jitter
}
