package mailer

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/resend/resend-go/v2"
)

// ResendSender delivers through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	log    *slog.Logger
}

func NewResendSender(apiKey string, log *slog.Logger) *ResendSender {
	return &ResendSender{client: resend.NewClient(apiKey), log: log}
}

func (s *ResendSender) Send(ctx context.Context, msg *Message) error {
	req, err := toResendRequest(msg)
	if err != nil {
		return err
	}

	sent, err := s.client.Emails.SendWithContext(ctx, req)
	if err != nil {
		s.log.Error("resend send failed", "to", msg.To, "subject", msg.Subject, "error", err)
		return fmt.Errorf("%w: resend: %v", ErrSendFailed, err)
	}

	s.log.Info("email sent", "provider", "resend", "to", msg.To, "id", sent.Id)
	return nil
}

func toResendRequest(msg *Message) (*resend.SendEmailRequest, error) {
	if err := msg.Validate(); err != nil {
		return nil, err
	}

	req := &resend.SendEmailRequest{
		From:    msg.From,
		To:      []string{msg.To},
		Subject: msg.Subject,
		Html:    msg.HTML,
	}
	for _, a := range msg.Attachments {
		content, err := a.Decode()
		if err != nil {
			return nil, err
		}
		req.Attachments = append(req.Attachments, &resend.Attachment{
			Filename: a.Filename,
			Content:  content,
		})
	}
	return req, nil
}
