// Package notification delivers verification codes and account messages
// over email and SMS. Each channel is a Transport; a transport whose
// credentials are absent reports ErrNotConfigured rather than silently
// succeeding.
package notification

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned when a delivery channel has no credentials.
// Callers treat this differently from a delivery failure: the channel is
// simply unavailable, not broken.
var ErrNotConfigured = errors.New("notification channel not configured")

// DeliveryError wraps a provider-side failure with channel context.
type DeliveryError struct {
	Channel    string
	StatusCode int
	Err        error
}

func (e *DeliveryError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s delivery failed (status %d): %v", e.Channel, e.StatusCode, e.Err)
	}
	return fmt.Sprintf("%s delivery failed: %v", e.Channel, e.Err)
}

func (e *DeliveryError) Unwrap() error {
	return e.Err
}

// EmailMessage is one outbound email.
type EmailMessage struct {
	To       string `validate:"required,email"`
	Subject  string `validate:"required"`
	TextBody string
	HTMLBody string
}

// EmailTransport sends email.
type EmailTransport interface {
	SendEmail(ctx context.Context, msg EmailMessage) error
}

// SMSTransport sends text messages to E.164 numbers.
type SMSTransport interface {
	SendSMS(ctx context.Context, to, body string) error
}

// UnconfiguredEmailTransport stands in when no email provider is set up.
type UnconfiguredEmailTransport struct{}

func (UnconfiguredEmailTransport) SendEmail(ctx context.Context, msg EmailMessage) error {
	return fmt.Errorf("email: %w", ErrNotConfigured)
}

// UnconfiguredSMSTransport stands in when no SMS provider is set up.
type UnconfiguredSMSTransport struct{}

func (UnconfiguredSMSTransport) SendSMS(ctx context.Context, to, body string) error {
	return fmt.Errorf("sms: %w", ErrNotConfigured)
}
