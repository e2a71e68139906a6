package mailer

import (
	"context"
	"log/slog"

	"ezrent/internal/usecase/notify"
)

// LogMailer writes messages to the log instead of sending them. Used in development.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (m *LogMailer) Send(ctx context.Context, msg notify.Email) error {
	slog.InfoContext(ctx, "email (log provider)",
		"to", msg.To,
		"subject", msg.Subject,
		"bytes", len(msg.HTML))
	return nil
}
