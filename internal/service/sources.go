package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/youtube"
)

// Sync cadence bounds in hours.
const (
	minSyncIntervalHours = 1
	maxSyncIntervalHours = 168
)

// SourceRegistry manages the monitored channels and playlists.
type SourceRegistry struct {
	sources   SourceStore
	txManager TransactionManager
	logger    *slog.Logger
}

func NewSourceRegistry(sources SourceStore, txManager TransactionManager, logger *slog.Logger) *SourceRegistry {
	return &SourceRegistry{
		sources:   sources,
		txManager: txManager,
		logger:    logger.With("component", "source_registry"),
	}
}

// Add validates and registers a new source. The URL is normalized before
// storage so equivalent spellings dedupe to one row. Duplicate registration
// returns domain.ErrSourceExists.
func (r *SourceRegistry) Add(ctx context.Context, url, name string, intervalHours int) (*domain.Source, error) {
	parsed, err := youtube.ParseSourceURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid source URL: %w", err)
	}

	if intervalHours < minSyncIntervalHours || intervalHours > maxSyncIntervalHours {
		return nil, fmt.Errorf("sync interval must be between %d and %d hours, got %d",
			minSyncIntervalHours, maxSyncIntervalHours, intervalHours)
	}

	src := &domain.Source{
		URL:               parsed.NormalizedURL,
		Kind:              parsed.Kind,
		Active:            true,
		SyncIntervalHours: intervalHours,
	}
	if name == "" {
		name = parsed.Identifier
	}
	src.Name = &name

	// Existence check and insert run in one transaction so concurrent
	// registrations of the same URL cannot both pass the check.
	var id int64
	err = r.txManager.WithTransaction(ctx, func(txCtx context.Context) error {
		existing, err := r.sources.GetByURL(txCtx, parsed.NormalizedURL)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return err
		}
		if existing != nil {
			return domain.ErrSourceExists
		}

		id, err = r.sources.Create(txCtx, src)
		return err
	})
	if err != nil {
		return nil, err
	}

	r.logger.Info("registered source",
		"source_id", id,
		"kind", parsed.Kind,
		"url", parsed.NormalizedURL,
		"interval_hours", intervalHours,
	)

	return r.sources.GetByID(ctx, id)
}

// Remove soft-deletes a source; its videos and history stay.
func (r *SourceRegistry) Remove(ctx context.Context, id int64) error {
	if err := r.sources.Deactivate(ctx, id); err != nil {
		return fmt.Errorf("deactivate source %d: %w", id, err)
	}
	r.logger.Info("deactivated source", "source_id", id)
	return nil
}

func (r *SourceRegistry) Get(ctx context.Context, id int64) (*domain.Source, error) {
	return r.sources.GetByID(ctx, id)
}

func (r *SourceRegistry) List(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	return r.sources.List(ctx, activeOnly)
}

// SetInterval changes the sync cadence of a source.
func (r *SourceRegistry) SetInterval(ctx context.Context, id int64, intervalHours int) error {
	if intervalHours < minSyncIntervalHours || intervalHours > maxSyncIntervalHours {
		return fmt.Errorf("sync interval must be between %d and %d hours, got %d",
			minSyncIntervalHours, maxSyncIntervalHours, intervalHours)
	}
	return r.sources.SetSyncInterval(ctx, id, intervalHours)
}
