package notify

import (
	"context"

	"siparis/internal"
)

// LogMailer writes messages to the log instead of an SMTP relay. It is the
// delivery used when no relay is configured.
type LogMailer struct {
	logger *internal.Logger
}

// NewLogMailer creates a mailer that logs every message
func NewLogMailer(logger *internal.Logger) *LogMailer {
	if logger == nil {
		logger = internal.NewDefaultLogger()
	}
	return &LogMailer{logger: logger.WithComponent("Mailer")}
}

// Send logs the envelope at info and the body at debug
func (m *LogMailer) Send(ctx context.Context, msg Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.logger.Info("confirmation to=%s subject=%q bytes=%d", msg.To, msg.Subject, len(msg.HTML))
	m.logger.Debug("confirmation body:\n%s", msg.Markdown)
	return nil
}
