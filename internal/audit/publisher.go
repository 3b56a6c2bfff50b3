package audit

import (
	"context"
	"log/slog"
	"time"
)

// Publisher accepts audit events. Implementations must be safe for
// concurrent use.
type Publisher interface {
	Emit(ctx context.Context, event Event) error
}

// LogPublisher writes audit events to the structured log. It is the default
// sink; the Kafka publisher replaces it when brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Emit(ctx context.Context, event Event) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	p.logger.InfoContext(ctx, "audit",
		"action", event.Action,
		"kind", event.Kind,
		"origin", event.Origin,
		"security_server_id", event.SecurityServerID,
		"client_id", event.ClientID,
		"request_id", event.RequestID,
		"processing_id", event.ProcessingID,
		"status", event.Status,
		"operator", event.Operator,
		"reason", event.Reason,
		"correlation_id", event.CorrelationID,
	)
	return nil
}
