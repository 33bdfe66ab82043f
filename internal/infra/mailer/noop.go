package mailer

import (
	"context"
	"log/slog"
)

// NoopMailer discards messages. Used when outbound mail is not
// configured, so local development never hits a real provider.
type NoopMailer struct{}

// NewNoopMailer creates a mailer that logs and drops every message.
func NewNoopMailer() *NoopMailer {
	return &NoopMailer{}
}

// Send logs the message and reports success without delivering anything.
func (n *NoopMailer) Send(_ context.Context, msg Message) error {
	slog.Debug("noop mailer: message discarded",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject))
	return nil
}
