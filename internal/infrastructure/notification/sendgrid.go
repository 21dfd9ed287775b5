package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

const sendgridBaseURL = "https://api.sendgrid.com"

type SendGridConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
	MaxRetries  int
}

// SendGridEmailTransport sends mail through the SendGrid v3 API with
// retry on rate limits and transient server errors.
type SendGridEmailTransport struct {
	cfg        SendGridConfig
	httpClient *http.Client
	logger     logger.Interface
}

func NewSendGridEmailTransport(cfg SendGridConfig, log logger.Interface) (*SendGridEmailTransport, error) {
	if strings.TrimSpace(cfg.APIKey) == "" {
		return nil, fmt.Errorf("sendgrid API key is required")
	}
	if strings.TrimSpace(cfg.FromAddress) == "" {
		return nil, fmt.Errorf("sendgrid from address is required")
	}
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 3
	}

	return &SendGridEmailTransport{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     log.With("client", "SendGridEmailTransport"),
	}, nil
}

type sgEmailAddress struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

type sgPersonalization struct {
	To []sgEmailAddress `json:"to"`
}

type sgContent struct {
	Type  string `json:"type"`
	Value string `json:"value"`
}

type sgMailSendRequest struct {
	Personalizations []sgPersonalization `json:"personalizations"`
	From             sgEmailAddress      `json:"from"`
	Subject          string              `json:"subject"`
	Content          []sgContent         `json:"content"`
}

func (t *SendGridEmailTransport) SendEmail(ctx context.Context, msg EmailMessage) error {
	if err := utils.ValidateStruct(msg); err != nil {
		return fmt.Errorf("sendgrid: %w", err)
	}
	if msg.TextBody == "" && msg.HTMLBody == "" {
		return fmt.Errorf("sendgrid: message body required")
	}

	// Plain text must come first in the content array per the API contract
	var content []sgContent
	if msg.TextBody != "" {
		content = append(content, sgContent{Type: "text/plain", Value: msg.TextBody})
	}
	if msg.HTMLBody != "" {
		content = append(content, sgContent{Type: "text/html", Value: msg.HTMLBody})
	}

	payload := sgMailSendRequest{
		Personalizations: []sgPersonalization{{To: []sgEmailAddress{{Email: msg.To}}}},
		From:             sgEmailAddress{Email: t.cfg.FromAddress, Name: t.cfg.FromName},
		Subject:          msg.Subject,
		Content:          content,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("sendgrid: failed to marshal request: %w", err)
	}

	backoff := initialBackoff
	for attempt := 0; attempt <= t.cfg.MaxRetries; attempt++ {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		resp, sendErr := t.sendOnce(ctx, body)
		if sendErr == nil {
			return nil
		}

		if !isRetryableError(sendErr) || attempt == t.cfg.MaxRetries {
			return sendErr
		}

		delay := retryDelay(resp, backoff)
		t.logger.Warnw("sendgrid request retrying",
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

	return fmt.Errorf("sendgrid: unreachable retry loop")
}

func (t *SendGridEmailTransport) sendOnce(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, sendgridBaseURL+"/v3/mail/send", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("sendgrid: failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+t.cfg.APIKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return nil, &DeliveryError{Channel: "email", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return resp, &DeliveryError{
			Channel:    "email",
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("sendgrid responded: %s", strings.TrimSpace(string(raw))),
		}
	}

	return resp, nil
}
