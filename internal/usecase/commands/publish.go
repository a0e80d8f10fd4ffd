package commands

import (
	"context"
	"log/slog"
	"time"

	"badminton-club/internal/usecase/events"
)

// afterCommit publishes events once the write they describe is durable.
// Delivery failures are logged and never reach the caller.
type afterCommit struct {
	publisher events.Publisher
	timeout   time.Duration
	logger    *slog.Logger
}

func (a afterCommit) publish(ctx context.Context, event any) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), a.timeout)
	defer cancel()

	if err := a.publisher.Publish(ctx, event); err != nil {
		a.logger.WarnContext(ctx, "failed to publish event",
			"event", event,
			"error", err.Error(),
		)
	}
}
