package notification

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

func TestUnconfiguredTransports(t *testing.T) {
	ctx := context.Background()

	err := UnconfiguredEmailTransport{}.SendEmail(ctx, EmailMessage{To: "a@b.com", Subject: "x", TextBody: "y"})
	assert.ErrorIs(t, err, ErrNotConfigured)

	err = UnconfiguredSMSTransport{}.SendSMS(ctx, "+17135551234", "hello")
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestDeliveryError(t *testing.T) {
	cause := errors.New("boom")
	err := &DeliveryError{Channel: "sms", StatusCode: 500, Err: cause}

	assert.Contains(t, err.Error(), "sms")
	assert.Contains(t, err.Error(), "500")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrNotConfigured)
}

func TestIsRetryable(t *testing.T) {
	assert.True(t, isRetryableError(&DeliveryError{Channel: "email", StatusCode: http.StatusTooManyRequests}))
	assert.True(t, isRetryableError(&DeliveryError{Channel: "email", StatusCode: http.StatusBadGateway}))
	assert.False(t, isRetryableError(&DeliveryError{Channel: "email", StatusCode: http.StatusBadRequest}))
	assert.False(t, isRetryableError(errors.New("plain error")))
}

func TestSendGridTransport_Validation(t *testing.T) {
	log := logger.NewLogger()

	_, err := NewSendGridEmailTransport(SendGridConfig{FromAddress: "a@b.com"}, log)
	assert.Error(t, err)

	_, err = NewSendGridEmailTransport(SendGridConfig{APIKey: "key"}, log)
	assert.Error(t, err)

	transport, err := NewSendGridEmailTransport(SendGridConfig{APIKey: "key", FromAddress: "a@b.com"}, log)
	require.NoError(t, err)

	err = transport.SendEmail(context.Background(), EmailMessage{Subject: "x", TextBody: "y"})
	assert.Error(t, err, "missing recipient must fail before any request")

	err = transport.SendEmail(context.Background(), EmailMessage{To: "a@b.com", Subject: "x"})
	assert.Error(t, err, "empty body must fail before any request")
}

func TestTwilioTransport_NonRetryableFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"code": 21211, "message": "Invalid 'To' Phone Number", "status": 400}`))
	}))
	defer srv.Close()

	transport, err := NewTwilioSMSTransport(TwilioConfig{
		AccountSID: "AC123",
		AuthToken:  "token",
		FromNumber: "+17130000000",
		MaxRetries: 3,
	}, logger.NewLogger())
	require.NoError(t, err)

	endpoint := srv.URL + "/Accounts/AC123/Messages.json"
	_, sendErr := transport.sendOnce(context.Background(), endpoint, map[string][]string{
		"To":   {"+1bad"},
		"From": {"+17130000000"},
		"Body": {"code"},
	})

	var de *DeliveryError
	require.ErrorAs(t, sendErr, &de)
	assert.Equal(t, "sms", de.Channel)
	assert.Equal(t, http.StatusBadRequest, de.StatusCode)
	assert.Contains(t, de.Error(), "Invalid 'To' Phone Number")
	assert.False(t, isRetryableError(sendErr))
}
