package push

import (
	"context"
	"log/slog"
)

// Message is the payload handed to the push collaborator.
type Message struct {
	Token string
	Title string
	Body  string
	Data  map[string]string
}

// Sender delivers a push notification and returns the provider-generated
// message id. Implementations are opaque collaborators; callers decide how
// to treat failures.
type Sender interface {
	Send(ctx context.Context, msg Message) (string, error)
}

// LogSender writes notifications to the structured logger instead of
// delivering them. Used when no push collaborator is configured.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender constructs a logging sender stub.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger}
}

// Send writes the message to the structured logger.
func (s *LogSender) Send(_ context.Context, msg Message) (string, error) {
	if s == nil || s.logger == nil {
		return "", nil
	}
	s.logger.Info("push notification", "title", msg.Title, "body", msg.Body, "data", msg.Data)
	return "log-only", nil
}
