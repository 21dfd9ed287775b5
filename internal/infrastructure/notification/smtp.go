package notification

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jerphayes/Coogsnation-sub000/internal/shared/utils"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
}

// SMTPEmailTransport is the non-API email path, used for local development
// against a mail catcher and for deployments without a SendGrid key.
type SMTPEmailTransport struct {
	cfg    SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailTransport(cfg SMTPConfig) *SMTPEmailTransport {
	return &SMTPEmailTransport{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}
}

func (t *SMTPEmailTransport) SendEmail(ctx context.Context, msg EmailMessage) error {
	if err := utils.ValidateStruct(msg); err != nil {
		return fmt.Errorf("smtp: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", t.cfg.FromAddress, t.cfg.FromName)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	if msg.TextBody != "" {
		m.SetBody("text/plain", msg.TextBody)
		if msg.HTMLBody != "" {
			m.AddAlternative("text/html", msg.HTMLBody)
		}
	} else {
		m.SetBody("text/html", msg.HTMLBody)
	}

	if err := t.dialer.DialAndSend(m); err != nil {
		return &DeliveryError{Channel: "email", Err: fmt.Errorf("smtp send failed: %w", err)}
	}

	return nil
}
