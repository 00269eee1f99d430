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
	"youtube_ingest/internal/extractor"
	"youtube_ingest/internal/quality"
	"youtube_ingest/internal/youtube"
)

// TranscriptIngestion is stage 3: fetch a video's transcript from the
// extraction gateway, validate and score it, persist it, and publish the
// completed record. All per-video failures are reported as structured
// outcomes, never as errors, so one bad video cannot poison a batch.
type TranscriptIngestion struct {
	gateway   Gateway
	videos    VideoStore
	logs      IngestionLogStore
	publisher Publisher
	cfg       config.TranscriptConfig
	logger    *slog.Logger
}

func NewTranscriptIngestion(
	gateway Gateway,
	videos VideoStore,
	logs IngestionLogStore,
	publisher Publisher,
	cfg config.TranscriptConfig,
	logger *slog.Logger,
) *TranscriptIngestion {
	return &TranscriptIngestion{
		gateway:   gateway,
		videos:    videos,
		logs:      logs,
		publisher: publisher,
		cfg:       cfg,
		logger:    logger.With("component", "transcript_ingestion"),
	}
}

func (m *TranscriptIngestion) scoreConfig() quality.ScoreConfig {
	return quality.ScoreConfig{
		MinLength:        m.cfg.MinLength,
		MinSegments:      m.cfg.MinSegments,
		QualityThreshold: m.cfg.QualityThreshold,
		Languages:        m.cfg.Languages,
	}
}

// IngestOne processes the transcript of a single video. Unless force is set,
// videos already checked (transcript stored or marked unavailable) are
// skipped without touching the remote actor.
func (m *TranscriptIngestion) IngestOne(ctx context.Context, videoID string, force bool) *domain.TranscriptResult {
	logger := m.logger.With("video_id", videoID)
	result := &domain.TranscriptResult{VideoID: videoID}

	state, err := m.videos.TranscriptStatus(ctx, videoID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return m.fail(result, logger, fmt.Errorf("video not ingested: %w", err))
		}
		return m.fail(result, logger, fmt.Errorf("check transcript status: %w", err))
	}
	if state != domain.TranscriptMissing && !force {
		logger.Debug("transcript already processed, skipping")
		result.Status = domain.TranscriptResultSkipped
		return result
	}

	raw, _, err := m.gateway.FetchTranscript(ctx, youtube.WatchURL(videoID))
	if err != nil {
		if errors.Is(err, extractor.ErrTranscriptUnavailable) {
			return m.markUnavailable(ctx, result, logger)
		}
		return m.fail(result, logger, fmt.Errorf("fetch transcript: %w", err))
	}

	transcript := quality.ParseTranscript(raw)
	if len(transcript.Segments) == 0 {
		// The actor answered but every segment was empty noise.
		return m.markUnavailable(ctx, result, logger)
	}
	if err := quality.ValidateSegments(transcript.Segments); err != nil {
		return m.fail(result, logger, fmt.Errorf("invalid transcript: %w", err))
	}

	quality.Score(transcript, m.scoreConfig())
	if transcript.LowQuality {
		logger.Warn("transcript scored below quality threshold",
			"score", transcript.QualityScore, "threshold", m.cfg.QualityThreshold)
	}

	if err := m.videos.UpsertTranscript(ctx, videoID, transcript, time.Now().UTC()); err != nil {
		return m.fail(result, logger, fmt.Errorf("persist transcript: %w", err))
	}

	result.Status = domain.TranscriptResultSucceeded
	result.Language = transcript.Language
	result.SegmentCount = len(transcript.Segments)
	result.TextLength = len(transcript.Text)
	result.QualityScore = transcript.QualityScore
	result.LowQuality = transcript.LowQuality

	m.publish(ctx, videoID, result, logger)

	logger.Info("transcript ingested",
		"language", result.Language,
		"segments", result.SegmentCount,
		"score", result.QualityScore,
		"low_quality", result.LowQuality,
		"published", result.Published,
	)
	return result
}

// publish emits the completed record downstream. Publish failures are
// recorded on the result and never change the ingestion outcome.
func (m *TranscriptIngestion) publish(ctx context.Context, videoID string, result *domain.TranscriptResult, logger *slog.Logger) {
	if m.publisher == nil {
		return
	}
	video, err := m.videos.GetByVideoID(ctx, videoID)
	if err != nil {
		logger.Error("failed to load video for publishing", "error", err)
		result.PublishFailed = true
		return
	}
	if err := m.publisher.PublishVideo(ctx, video); err != nil {
		logger.Error("failed to publish video", "error", err)
		result.PublishFailed = true
		return
	}
	result.Published = true
}

func (m *TranscriptIngestion) markUnavailable(ctx context.Context, result *domain.TranscriptResult, logger *slog.Logger) *domain.TranscriptResult {
	if err := m.videos.MarkTranscriptUnavailable(ctx, result.VideoID, time.Now().UTC()); err != nil {
		return m.fail(result, logger, fmt.Errorf("mark transcript unavailable: %w", err))
	}
	logger.Info("transcript unavailable")
	result.Status = domain.TranscriptResultUnavailable
	return result
}

func (m *TranscriptIngestion) fail(result *domain.TranscriptResult, logger *slog.Logger, err error) *domain.TranscriptResult {
	logger.Error("transcript ingestion failed", "error", err)
	result.Status = domain.TranscriptResultFailed
	result.Error = err.Error()
	return result
}

// IngestBatch processes videoIDs in chunks of BatchSize with at most
// Concurrency in-flight fetches. It always returns aggregate stats; a
// cancelled context leaves the remaining IDs unprocessed and uncounted.
func (m *TranscriptIngestion) IngestBatch(ctx context.Context, videoIDs []string) *domain.TranscriptBatchStats {
	start := time.Now()
	stats := &domain.TranscriptBatchStats{Total: len(videoIDs)}
	if len(videoIDs) == 0 {
		return stats
	}

	m.logger.Info("starting transcript batch", "videos", len(videoIDs))

	logID, logErr := m.logs.Start(ctx, &domain.IngestionLog{Stage: domain.StageTranscript})
	if logErr != nil {
		m.logger.Error("failed to open ingestion log", "error", logErr)
	}

	var mu sync.Mutex
	for chunk := range chunks(videoIDs, m.cfg.BatchSize) {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(m.cfg.Concurrency)

		for _, id := range chunk {
			if ctx.Err() != nil {
				break
			}
			g.Go(func() error {
				itemCtx := gctx
				if m.cfg.ItemTimeout > 0 {
					var cancel context.CancelFunc
					itemCtx, cancel = context.WithTimeout(gctx, m.cfg.ItemTimeout)
					defer cancel()
				}

				res := m.IngestOne(itemCtx, id, false)

				mu.Lock()
				m.record(stats, res)
				mu.Unlock()
				return nil
			})
		}
		// Workers never return errors, so this only waits.
		_ = g.Wait()

		if ctx.Err() != nil {
			break
		}
	}

	if logID != 0 {
		if err := m.logs.Complete(ctx, logID, stats.Succeeded, "", ""); err != nil {
			m.logger.Error("failed to complete ingestion log", "error", err)
		}
	}

	stats.Duration = time.Since(start)
	m.logger.Info("transcript batch completed",
		"total", stats.Total,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"skipped", stats.Skipped,
		"unavailable", stats.Unavailable,
		"low_quality", stats.LowQuality,
		"published", stats.Published,
		"duration", stats.Duration,
	)
	return stats
}

func (m *TranscriptIngestion) record(stats *domain.TranscriptBatchStats, res *domain.TranscriptResult) {
	switch res.Status {
	case domain.TranscriptResultSucceeded:
		stats.Succeeded++
	case domain.TranscriptResultSkipped:
		stats.Skipped++
	case domain.TranscriptResultUnavailable:
		stats.Unavailable++
	case domain.TranscriptResultFailed:
		stats.Failed++
		stats.Errors = append(stats.Errors, fmt.Sprintf("%s: %s", res.VideoID, res.Error))
	}
	if res.LowQuality {
		stats.LowQuality++
	}
	if res.Published {
		stats.Published++
	}
	if res.PublishFailed {
		stats.PublishFailed++
	}
}

// chunks yields ids in slices of at most size elements.
func chunks(ids []string, size int) func(func([]string) bool) {
	if size <= 0 {
		size = len(ids)
	}
	return func(yield func([]string) bool) {
		for start := 0; start < len(ids); start += size {
			end := min(start+size, len(ids))
			if !yield(ids[start:end]) {
				return
			}
		}
	}
}
