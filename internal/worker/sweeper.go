package worker

import (
	"context"
	"log/slog"
	"time"

	"afriverse.co/editorial/common/logger"
	"afriverse.co/editorial/internal/service"
)

// Sweeper runs the scheduled-publishing sweep on a fixed interval. The
// same sweep is also reachable over HTTP for external cron setups; both
// paths are safe to run concurrently because each post publishes in its
// own guarded transaction.
type Sweeper struct {
	publisher service.PublisherService
	interval  time.Duration

	stopCh    chan struct{}
	stoppedCh chan struct{}
}

func NewSweeper(publisher service.PublisherService, interval time.Duration) *Sweeper {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Sweeper{
		publisher: publisher,
		interval:  interval,
		stopCh:    make(chan struct{}),
		stoppedCh: make(chan struct{}),
	}
}

// Run starts the sweep loop. Blocks until Stop() is called.
func (s *Sweeper) Run(ctx context.Context) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Component: "editorial.worker.sweeper",
	})

	defer close(s.stoppedCh)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	slog.InfoContext(ctx, "publishing sweeper started", "interval", s.interval)

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			slog.InfoContext(ctx, "publishing sweeper stopping")
			return
		case <-ticker.C:
			if _, err := s.publisher.RunScheduledSweep(ctx); err != nil {
				slog.ErrorContext(ctx, "sweep cycle error", "error", err)
			}
		}
	}
}

// Stop signals the sweeper to stop gracefully.
func (s *Sweeper) Stop() {
	close(s.stopCh)
	<-s.stoppedCh
}
