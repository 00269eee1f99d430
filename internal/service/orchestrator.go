package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"youtube_ingest/internal/config"
	"youtube_ingest/internal/domain"
)

// Orchestrator is stage 1: it selects sources due for a sync and drives
// stages 2 and 3 for each of them under a concurrency bound. Each source is
// a bulkhead; a failing source is recorded in the run stats and never stops
// its siblings.
type Orchestrator struct {
	sources     SourceStore
	logs        IngestionLogStore
	lists       ListIngestor
	transcripts TranscriptIngestor
	cfg         config.SyncConfig
	logger      *slog.Logger
}

func NewOrchestrator(
	sources SourceStore,
	logs IngestionLogStore,
	lists ListIngestor,
	transcripts TranscriptIngestor,
	cfg config.SyncConfig,
	logger *slog.Logger,
) *Orchestrator {
	return &Orchestrator{
		sources:     sources,
		logs:        logs,
		lists:       lists,
		transcripts: transcripts,
		cfg:         cfg,
		logger:      logger.With("component", "orchestrator"),
	}
}

// SyncAll runs one orchestration pass over every eligible source. With
// dryRun set it only reports which sources would sync. Only a failure to
// determine eligibility is returned as an error; per-source failures live
// in the stats.
func (o *Orchestrator) SyncAll(ctx context.Context, dryRun bool) (*domain.SyncRunStats, error) {
	started := time.Now().UTC()
	stats := &domain.SyncRunStats{StartedAt: started, DryRun: dryRun}

	eligible, err := o.sources.ListEligible(ctx, started)
	if err != nil {
		return nil, fmt.Errorf("list eligible sources: %w", err)
	}
	stats.Eligible = eligible

	if dryRun {
		for _, src := range eligible {
			o.logger.Info("would sync source", "source_id", src.ID, "url", src.URL)
		}
		stats.CompletedAt = time.Now().UTC()
		return stats, nil
	}

	if len(eligible) == 0 {
		o.logger.Info("no sources due for sync")
		stats.CompletedAt = time.Now().UTC()
		return stats, nil
	}

	o.logger.Info("starting sync run",
		"eligible", len(eligible), "max_concurrent", o.cfg.MaxConcurrentSources)

	var mu sync.Mutex
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.cfg.MaxConcurrentSources)

	for i := range eligible {
		src := eligible[i]
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			outcome := o.syncOne(gctx, &src)

			mu.Lock()
			stats.Processed++
			switch outcome.Status {
			case domain.SyncSucceeded:
				stats.Succeeded++
			case domain.SyncFailed:
				stats.Failed++
			case domain.SyncSkipped:
				stats.Skipped++
			}
			stats.Outcomes = append(stats.Outcomes, outcome)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	stats.CompletedAt = time.Now().UTC()
	o.logger.Info("sync run completed",
		"processed", stats.Processed,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
		"duration", stats.CompletedAt.Sub(stats.StartedAt),
	)
	return stats, nil
}

// SyncSource forces a sync of a single source regardless of its cadence.
// Inactive sources are reported as skipped.
func (o *Orchestrator) SyncSource(ctx context.Context, id int64) (*domain.SourceOutcome, error) {
	src, err := o.sources.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("load source %d: %w", id, err)
	}
	if !src.Active {
		o.logger.Info("source is inactive, skipping", "source_id", id)
		return &domain.SourceOutcome{
			SourceID:  src.ID,
			SourceURL: src.URL,
			Status:    domain.SyncSkipped,
		}, nil
	}

	outcome := o.syncOne(ctx, src)
	return &outcome, nil
}

// syncOne drives stages 2 and 3 for one source. The cadence timestamp is
// taken before dispatch and only stored on success, so a failed source
// stays eligible for the next pass.
func (o *Orchestrator) syncOne(ctx context.Context, src *domain.Source) domain.SourceOutcome {
	dispatchedAt := time.Now().UTC()
	logger := o.logger.With("source_id", src.ID, "source_url", src.URL)

	outcome := domain.SourceOutcome{SourceID: src.ID, SourceURL: src.URL}

	if o.cfg.SourceTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, o.cfg.SourceTimeout)
		defer cancel()
	}

	logID, logErr := o.logs.Start(ctx, &domain.IngestionLog{
		Stage:            domain.StageSync,
		SourceKind:       &src.Kind,
		SourceIdentifier: &src.URL,
	})
	if logErr != nil {
		logger.Error("failed to open ingestion log", "error", logErr)
	}

	listResult, err := o.lists.IngestSource(ctx, src, o.cfg.MaxResultsPerSource)
	if err != nil {
		logger.Error("source sync failed", "error", err)
		outcome.Status = domain.SyncFailed
		outcome.Error = err.Error()
		outcome.Duration = time.Since(dispatchedAt)
		if logID != 0 {
			if ferr := o.logs.Fail(ctx, logID, err.Error()); ferr != nil {
				logger.Error("failed to record sync failure", "error", ferr)
			}
		}
		return outcome
	}
	outcome.List = listResult

	if err := o.sources.UpdateLastSynced(ctx, src.ID, dispatchedAt); err != nil {
		// Worst case the source re-syncs early next pass; upserts absorb it.
		logger.Error("failed to advance sync timestamp", "error", err)
	}

	if len(listResult.Eligible) > 0 {
		outcome.Transcripts = o.transcripts.IngestBatch(ctx, listResult.Eligible)
	}

	outcome.Status = domain.SyncSucceeded
	outcome.Duration = time.Since(dispatchedAt)

	if logID != 0 {
		if err := o.logs.Complete(ctx, logID, listResult.Inserted+listResult.Updated, "", ""); err != nil {
			logger.Error("failed to complete ingestion log", "error", err)
		}
	}

	logger.Info("source synced",
		"inserted", listResult.Inserted,
		"updated", listResult.Updated,
		"eligible", len(listResult.Eligible),
		"duration", outcome.Duration,
	)
	return outcome
}
