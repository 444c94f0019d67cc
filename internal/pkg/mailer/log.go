package mailer

import (
	"context"
	"log/slog"
)

// LogSender only logs. Used when no provider is configured in development.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(log *slog.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(_ context.Context, msg *Message) error {
	if err := msg.Validate(); err != nil {
		return err
	}
	names := make([]string, 0, len(msg.Attachments))
	for _, a := range msg.Attachments {
		names = append(names, a.Filename)
	}
	s.log.Info("email (disabled)", "to", msg.To, "subject", msg.Subject, "attachments", names)
	return nil
}
