package notification

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

const twilioBaseURL = "https://api.twilio.com/2010-04-01"

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromNumber string
	MaxRetries int
}

// TwilioSMSTransport sends text messages through the Twilio Messages API
// with retry on rate limits and transient server errors.
type TwilioSMSTransport struct {
	cfg        TwilioConfig
	httpClient *http.Client
	logger     logger.Interface
}

func NewTwilioSMSTransport(cfg TwilioConfig, log logger.Interface) (*TwilioSMSTransport, error) {
	if strings.TrimSpace(cfg.AccountSID) == "" {
		return nil, fmt.Errorf("twilio account SID is required")
	}
	if strings.TrimSpace(cfg.AuthToken) == "" {
		return nil, fmt.Errorf("twilio auth token is required")
	}
	if strings.TrimSpace(cfg.FromNumber) == "" {
		return nil, fmt.Errorf("twilio from number is required")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	return &TwilioSMSTransport{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log.With("client", "TwilioSMSTransport"),
	}, nil
}

type twilioAPIError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (t *TwilioSMSTransport) SendSMS(ctx context.Context, to, body string) error {
	to = strings.TrimSpace(to)
	body = strings.TrimSpace(body)
	if to == "" {
		return fmt.Errorf("twilio: recipient required")
	}
	if body == "" {
		return fmt.Errorf("twilio: message body required")
	}

	form := url.Values{}
	form.Set("To", to)
	form.Set("From", t.cfg.FromNumber)
	form.Set("Body", body)

	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", twilioBaseURL, t.cfg.AccountSID)

	backoff := initialBackoff
	for attempt := 0; attempt <= t.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		resp, sendErr := t.sendOnce(ctx, endpoint, form)
		if sendErr == nil {
			return nil
		}

		if !isRetryableError(sendErr) || attempt == t.cfg.MaxRetries {
			return sendErr
		}

		delay := retryDelay(resp, backoff)
		t.logger.Warnw("twilio request retrying",
			"attempt", attempt+1,
			"max_retries", t.cfg.MaxRetries,
			"sleep", delay.String(),
			"error", sendErr.Error(),
		)

		select {
		case <-time.After(delay):
		case <-ctx.Done():
			return ctx.Err()
		}
		backoff *= 2
	}

	return fmt.Errorf("twilio: unreachable retry loop")
}

func (t *TwilioSMSTransport) sendOnce(ctx context.Context, endpoint string, form url.Values) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("twilio: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(t.cfg.AccountSID, t.cfg.AuthToken)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &DeliveryError{Channel: "sms", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		cause := fmt.Errorf("twilio responded: %s", strings.TrimSpace(string(raw)))

		var apiErr twilioAPIError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
			cause = fmt.Errorf("twilio responded: %s (code=%d)", apiErr.Message, apiErr.Code)
		}

		return resp, &DeliveryError{
			Channel:    "sms",
			StatusCode: resp.StatusCode,
			Err:        cause,
		}
	}

	return resp, nil
}
