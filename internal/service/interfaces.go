package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/extractor"
)

type SourceStore interface {
	Create(ctx context.Context, src *domain.Source) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Source, error)
	GetByURL(ctx context.Context, url string) (*domain.Source, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Source, error)
	ListEligible(ctx context.Context, now time.Time) ([]domain.Source, error)
	Deactivate(ctx context.Context, id int64) error
	SetSyncInterval(ctx context.Context, id int64, hours int) error
	UpdateLastSynced(ctx context.Context, id int64, syncedAt time.Time) error
}

type VideoStore interface {
	UpsertMetadata(ctx context.Context, v *domain.Video) (int64, error)
	ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error)
	TranscriptStatus(ctx context.Context, videoID string) (domain.TranscriptState, error)
	UpsertTranscript(ctx context.Context, videoID string, t *domain.Transcript, ingestedAt time.Time) error
	MarkTranscriptUnavailable(ctx context.Context, videoID string, checkedAt time.Time) error
	GetByVideoID(ctx context.Context, videoID string) (*domain.Video, error)
}

type ChannelStore interface {
	Upsert(ctx context.Context, ch *domain.Channel) error
}

type IngestionLogStore interface {
	Start(ctx context.Context, entry *domain.IngestionLog) (int64, error)
	Complete(ctx context.Context, id int64, records int, runID, datasetID string) error
	Fail(ctx context.Context, id int64, errMsg string) error
}

type Gateway interface {
	FetchSourceListing(ctx context.Context, sourceURL string, maxResults int) ([]extractor.RawVideo, extractor.RunInfo, error)
	FetchTranscript(ctx context.Context, videoURL string) (*extractor.RawTranscript, extractor.RunInfo, error)
}

type Publisher interface {
	PublishVideo(ctx context.Context, v *domain.Video) error
}

type TransactionManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

type ListIngestor interface {
	IngestSource(ctx context.Context, src *domain.Source, limit int) (*domain.ListResult, error)
}

type TranscriptIngestor interface {
	IngestOne(ctx context.Context, videoID string, force bool) *domain.TranscriptResult
	IngestBatch(ctx context.Context, videoIDs []string) *domain.TranscriptBatchStats
}
