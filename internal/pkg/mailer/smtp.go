package mailer

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the relay settings. Port 587 with STARTTLS is the usual setup.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

// SMTPSender delivers through an authenticated SMTP relay.
type SMTPSender struct {
	cfg SMTPConfig
	log *slog.Logger
}

func NewSMTPSender(cfg SMTPConfig, log *slog.Logger) *SMTPSender {
	if cfg.Port == 0 {
		cfg.Port = 587
	}
	return &SMTPSender{cfg: cfg, log: log}
}

func (s *SMTPSender) Send(ctx context.Context, msg *Message) error {
	m, err := toMailMsg(msg)
	if err != nil {
		return err
	}

	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
	)
	if err != nil {
		return fmt.Errorf("%w: smtp client: %v", ErrSendFailed, err)
	}

	if err := client.DialAndSendWithContext(ctx, m); err != nil {
		s.log.Error("smtp send failed", "host", s.cfg.Host, "to", msg.To, "error", err)
		return fmt.Errorf("%w: smtp: %v", ErrSendFailed, err)
	}

	s.log.Info("email sent", "provider", "smtp", "to", msg.To)
	return nil
}

func toMailMsg(msg *Message) (*mail.Msg, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	m := mail.NewMsg()
	if err := m.From(msg.From); err != nil {
		return nil, fmt.Errorf("%w: sender: %v", ErrInvalidMessage, err)
	}
	if err := m.To(msg.To); err != nil {
		return nil, fmt.Errorf("%w: recipient: %v", ErrInvalidMessage, err)
	}
	m.Subject(msg.Subject)
	m.SetBodyString(mail.TypeTextHTML, msg.HTML)

	for _, a := range msg.Attachments {
		content, err := a.Decode()
		if err != nil {
			return nil, err
		}
		m.AttachReadSeeker(a.Filename, bytes.NewReader(content))
	}
	return m, nil
}
