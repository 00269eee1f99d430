package scheduler

import (
	"context"
	"log/slog"
	"time"

	"youtube_ingest/internal/domain"
)

// Syncer defines the interface for orchestration passes.
type Syncer interface {
	SyncAll(ctx context.Context, dryRun bool) (*domain.SyncRunStats, error)
}

type Scheduler struct {
	syncer   Syncer
	interval time.Duration
	timeout  time.Duration
	logger   *slog.Logger
}

func NewScheduler(syncer Syncer, interval, timeout time.Duration, logger *slog.Logger) *Scheduler {
	return &Scheduler{
		syncer:   syncer,
		interval: interval,
		timeout:  timeout,
		logger:   logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) error {
	s.logger.Info("scheduler started", "interval", s.interval)

	s.runSync(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return ctx.Err()
		case <-ticker.C:
			s.runSync(ctx)
		}
	}
}

func (s *Scheduler) runSync(ctx context.Context) {
	syncCtx := ctx
	if s.timeout > 0 {
		var cancel context.CancelFunc
		syncCtx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	if _, err := s.syncer.SyncAll(syncCtx, false); err != nil {
		s.logger.Error("sync run failed", "error", err)
	}
}
