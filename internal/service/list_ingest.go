package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/extractor"
	"youtube_ingest/internal/quality"
	"youtube_ingest/internal/youtube"
)

// ListIngestion is stage 2: extract a source's listing, deduplicate, upsert
// channel and video metadata, and report which video IDs are newly eligible
// for transcript ingestion. It never dispatches stage 3 itself; the caller
// decides when to drain the eligible list.
type ListIngestion struct {
	gateway  Gateway
	videos   VideoStore
	channels ChannelStore
	logs     IngestionLogStore
	logger   *slog.Logger
}

func NewListIngestion(
	gateway Gateway,
	videos VideoStore,
	channels ChannelStore,
	logs IngestionLogStore,
	logger *slog.Logger,
) *ListIngestion {
	return &ListIngestion{
		gateway:  gateway,
		videos:   videos,
		channels: channels,
		logs:     logs,
		logger:   logger.With("component", "list_ingestion"),
	}
}

// IngestSource runs one listing extraction for a source. A total gateway
// failure fails the whole call (one failed log row); per-record parse and
// persistence failures are counted and skipped without aborting the batch.
func (m *ListIngestion) IngestSource(ctx context.Context, src *domain.Source, limit int) (*domain.ListResult, error) {
	start := time.Now()
	logger := m.logger.With("source_id", src.ID, "source_url", src.URL)

	logID, logErr := m.logs.Start(ctx, &domain.IngestionLog{
		Stage:            domain.StageList,
		SourceKind:       &src.Kind,
		SourceIdentifier: &src.URL,
	})
	if logErr != nil {
		// Log bookkeeping must not block ingestion.
		logger.Error("failed to open ingestion log", "error", logErr)
	}

	items, run, err := m.gateway.FetchSourceListing(ctx, src.URL, limit)
	if err != nil {
		m.failLog(ctx, logID, err)
		return nil, fmt.Errorf("fetch listing for source %d: %w", src.ID, err)
	}

	result := &domain.ListResult{
		SourceID:  src.ID,
		SourceURL: src.URL,
		TotalRaw:  len(items),
	}

	unique := dedupeByVideoID(items)
	if limit > 0 && limit < len(unique) {
		unique = unique[:limit]
	}
	result.Unique = len(unique)

	logger.Info("processing listing items", "raw", len(items), "unique", len(unique))

	m.upsertChannelFromListing(ctx, unique, result, logger)

	ids := make([]string, 0, len(unique))
	for i := range unique {
		if id, ok := youtube.ExtractVideoID(unique[i].URL); ok {
			ids = append(ids, id)
		}
	}

	existing, err := m.videos.ExistingIDs(ctx, ids)
	if err != nil {
		// Store unreachable: abort this call, siblings are unaffected.
		m.failLog(ctx, logID, err)
		return nil, fmt.Errorf("query existing videos: %w", err)
	}

	now := time.Now().UTC()
	for i := range unique {
		raw := &unique[i]

		video, err := quality.ParseVideo(raw, now)
		if err != nil {
			logger.Warn("skipping unparseable item", "url", raw.URL, "error", err)
			result.Skipped++
			continue
		}
		video.SourceID = &src.ID

		if _, err := m.videos.UpsertMetadata(ctx, video); err != nil {
			logger.Error("failed to upsert video", "video_id", video.VideoID, "error", err)
			result.Failed++
			continue
		}

		if _, ok := existing[video.VideoID]; ok {
			result.Updated++
		} else {
			result.Inserted++
			result.Eligible = append(result.Eligible, video.VideoID)
		}
	}

	processed := result.Inserted + result.Updated
	if logID != 0 {
		if err := m.logs.Complete(ctx, logID, processed, run.RunID, run.DatasetID); err != nil {
			logger.Error("failed to complete ingestion log", "error", err)
		}
	}

	result.Duration = time.Since(start)
	logger.Info("list ingestion completed",
		"inserted", result.Inserted,
		"updated", result.Updated,
		"skipped", result.Skipped,
		"failed", result.Failed,
		"eligible", len(result.Eligible),
		"duration", result.Duration,
	)

	return result, nil
}

// upsertChannelFromListing takes channel data from the first item carrying
// it; every item of one listing embeds the same channel. Channel failures
// never abort the listing.
func (m *ListIngestion) upsertChannelFromListing(ctx context.Context, items []extractor.RawVideo, result *domain.ListResult, logger *slog.Logger) {
	for i := range items {
		if items[i].ChannelID == "" {
			continue
		}

		ch, err := quality.ParseChannel(&items[i])
		if err != nil {
			logger.Warn("failed to parse channel data", "error", err)
			return
		}
		if err := m.channels.Upsert(ctx, ch); err != nil {
			logger.Error("failed to upsert channel", "channel_id", ch.ChannelID, "error", err)
			return
		}

		result.ChannelUpdated = true
		logger.Debug("upserted channel", "channel_id", ch.ChannelID)
		return
	}
}

func (m *ListIngestion) failLog(ctx context.Context, logID int64, err error) {
	if logID == 0 {
		return
	}
	if ferr := m.logs.Fail(ctx, logID, err.Error()); ferr != nil {
		m.logger.Error("failed to record ingestion failure", "error", ferr)
	}
}

func dedupeByVideoID(items []extractor.RawVideo) []extractor.RawVideo {
	seen := make(map[string]struct{}, len(items))
	unique := make([]extractor.RawVideo, 0, len(items))

	for i := range items {
		id, ok := youtube.ExtractVideoID(items[i].URL)
		if !ok {
			// Kept: parse failure is counted when the item is processed.
			unique = append(unique, items[i])
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, items[i])
	}
	return unique
}
