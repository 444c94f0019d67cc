// Package mailer sends transactional email through a configured provider.
package mailer

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

var (
	ErrInvalidMessage  = errors.New("invalid email message")
	ErrUnknownProvider = errors.New("unknown email provider")
	ErrSendFailed      = errors.New("email send failed")
)

// Attachment is a named file whose Content is already base64 encoded.
type Attachment struct {
	Filename string
	Content  string
}

// Decode returns the raw attachment bytes.
func (a Attachment) Decode() ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(a.Content)
	if err != nil {
		return nil, fmt.Errorf("%w: attachment %q is not valid base64: %v", ErrInvalidMessage, a.Filename, err)
	}
	return b, nil
}

// Message is a single-recipient transactional email.
type Message struct {
	From        string
	To          string
	Subject     string
	HTML        string
	Attachments []Attachment
}

// Validate checks the fields every provider needs.
func (m *Message) Validate() error {
	switch {
	case m == nil:
		return fmt.Errorf("%w: nil message", ErrInvalidMessage)
	case strings.TrimSpace(m.From) == "":
		return fmt.Errorf("%w: missing sender", ErrInvalidMessage)
	case strings.TrimSpace(m.To) == "":
		return fmt.Errorf("%w: missing recipient", ErrInvalidMessage)
	case strings.TrimSpace(m.Subject) == "":
		return fmt.Errorf("%w: missing subject", ErrInvalidMessage)
	}
	for _, a := range m.Attachments {
		if a.Filename == "" {
			return fmt.Errorf("%w: attachment without filename", ErrInvalidMessage)
		}
	}
	return nil
}

// Sender delivers one message. Implementations do not retry.
type Sender interface {
	Send(ctx context.Context, msg *Message) error
}

// Options selects and configures a provider.
type Options struct {
	Provider     string
	ResendAPIKey string
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
}

// New builds the Sender named by opts.Provider.
func New(opts Options, log *slog.Logger) (Sender, error) {
	switch strings.ToLower(opts.Provider) {
	case "resend":
		return NewResendSender(opts.ResendAPIKey, log), nil
	case "smtp":
		return NewSMTPSender(SMTPConfig{
			Host:     opts.SMTPHost,
			Port:     opts.SMTPPort,
			Username: opts.SMTPUser,
			Password: opts.SMTPPassword,
		}, log), nil
	case "log":
		return NewLogSender(log), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownProvider, opts.Provider)
	}
}
