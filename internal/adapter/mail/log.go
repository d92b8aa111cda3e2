package mail

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/yamdb-backend/internal/domain"
)

// LogSender writes messages to the log instead of sending them.
// Used in development, where the confirmation code is read from the output.
type LogSender struct {
	log *slog.Logger
}

func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{log: logger.With("sender", "log")}
}

func (s *LogSender) Send(ctx context.Context, msg domain.EmailMessage) error {
	s.log.InfoContext(ctx, "email",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
		slog.String("body", msg.Body),
	)
	return nil
}
