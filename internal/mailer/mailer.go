package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"go.uber.org/zap"

	"github.com/spec-kit/aidrp-service/internal/config"
)

// Mailer delivers outbound email.
type Mailer interface {
	Send(ctx context.Context, to, subject, body string) error
}

// SMTPMailer sends mail through a configured SMTP relay. When no host is
// configured the message is logged instead of sent so development
// environments work without a relay.
type SMTPMailer struct {
	cfg    config.SMTPConfig
	logger *zap.Logger
}

// NewSMTPMailer builds the mailer.
func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, logger: logger}
}

// Send delivers one message.
func (m *SMTPMailer) Send(_ context.Context, to, subject, body string) error {
	if m.cfg.Host == "" {
		m.logger.Info("smtp not configured; logging email instead",
			zap.String("to", to),
			zap.String("subject", subject))
		return nil
	}

	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s\r\n",
		m.cfg.FromEmail, to, subject, body)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, m.cfg.FromEmail, []string{to}, []byte(msg)); err != nil {
		return fmt.Errorf("send mail to %s: %w", to, err)
	}

	m.logger.Info("email sent", zap.String("to", to), zap.String("subject", subject))
	return nil
}
