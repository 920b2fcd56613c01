package mailer

import (
	"context"
	"log/slog"
)

// Mailer delivers admin-facing transactional email. Delivery is best-effort
// everywhere it is used: failures are logged by the caller, never retried.
type Mailer interface {
	Send(ctx context.Context, subject, body string) error
}

// LogMailer writes email to the structured logger instead of sending it.
// Used when no email collaborator is configured.
type LogMailer struct {
	logger *slog.Logger
}

// NewLogMailer constructs a logging mailer stub.
func NewLogMailer(logger *slog.Logger) *LogMailer {
	return &LogMailer{logger: logger}
}

// Send writes the message to the structured logger.
func (m *LogMailer) Send(_ context.Context, subject, body string) error {
	if m == nil || m.logger == nil {
		return nil
	}
	m.logger.Info("email", "subject", subject, "body", body)
	return nil
}
