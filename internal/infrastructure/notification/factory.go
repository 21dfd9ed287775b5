package notification

import (
	"strings"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/config"
	"github.com/jerphayes/Coogsnation-sub000/internal/shared/logger"
)

// NewEmailTransportFromConfig selects the email transport for the given
// configuration: SendGrid when an API key is present and the provider says
// so, SMTP when a host is configured, otherwise the unconfigured stub.
func NewEmailTransportFromConfig(cfg *config.EmailConfig, log logger.Interface) EmailTransport {
	switch strings.ToLower(cfg.Provider) {
	case "sendgrid":
		transport, err := NewSendGridEmailTransport(SendGridConfig{
			APIKey:      cfg.APIKey,
			FromAddress: cfg.FromAddress,
			FromName:    cfg.FromName,
			MaxRetries:  cfg.MaxRetries,
		}, log)
		if err != nil {
			log.Warnw("sendgrid transport unavailable, email delivery disabled", "error", err.Error())
			return UnconfiguredEmailTransport{}
		}
		return transport
	case "smtp":
		if cfg.SMTPHost == "" {
			return UnconfiguredEmailTransport{}
		}
		return NewSMTPEmailTransport(SMTPConfig{
			Host:        cfg.SMTPHost,
			Port:        cfg.SMTPPort,
			Username:    cfg.SMTPUser,
			Password:    cfg.SMTPPassword,
			FromAddress: cfg.FromAddress,
			FromName:    cfg.FromName,
		})
	default:
		return UnconfiguredEmailTransport{}
	}
}

// NewSMSTransportFromConfig returns a Twilio transport when credentials
// are present, otherwise the unconfigured stub.
func NewSMSTransportFromConfig(cfg *config.SMSConfig, log logger.Interface) SMSTransport {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.FromNumber == "" {
		return UnconfiguredSMSTransport{}
	}

	transport, err := NewTwilioSMSTransport(TwilioConfig{
		AccountSID: cfg.AccountSID,
		AuthToken:  cfg.AuthToken,
		FromNumber: cfg.FromNumber,
		MaxRetries: 3,
	}, log)
	if err != nil {
		log.Warnw("twilio transport unavailable, sms delivery disabled", "error", err.Error())
		return UnconfiguredSMSTransport{}
	}
	return transport
}
