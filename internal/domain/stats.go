package domain

import "time"

// ListResult summarizes one list ingestion run for a single source.
type ListResult struct {
	SourceID       int64
	SourceURL      string
	TotalRaw       int
	Unique         int
	ChannelUpdated bool
	Inserted       int
	Updated        int
	Skipped        int
	Failed         int
	Eligible       []string // video IDs newly eligible for transcript ingestion
	Duration       time.Duration
}

// Transcript ingestion outcome statuses for a single video.
const (
	TranscriptResultSucceeded   = "succeeded"
	TranscriptResultSkipped     = "skipped"
	TranscriptResultUnavailable = "unavailable"
	TranscriptResultFailed      = "failed"
)

// TranscriptResult is the outcome of transcript ingestion for one video.
type TranscriptResult struct {
	VideoID       string
	Status        string
	Language      string
	SegmentCount  int
	TextLength    int
	QualityScore  float64
	LowQuality    bool
	Published     bool
	PublishFailed bool
	Error         string
}

// TranscriptBatchStats aggregates a bounded-concurrency transcript batch.
// Per-item failures are isolated; the batch itself never raises for them.
type TranscriptBatchStats struct {
	Total         int
	Succeeded     int
	Failed        int
	Skipped       int
	Unavailable   int
	LowQuality    int
	Published     int
	PublishFailed int
	Errors        []string
	Duration      time.Duration
}

// Sync outcome statuses for a single source.
const (
	SyncSucceeded = "succeeded"
	SyncFailed    = "failed"
	SyncSkipped   = "skipped"
)

// SourceOutcome is the per-source result of one orchestrator run.
type SourceOutcome struct {
	SourceID    int64
	SourceURL   string
	Status      string
	Error       string
	List        *ListResult
	Transcripts *TranscriptBatchStats
	Duration    time.Duration
}

// SyncRunStats is the aggregate outcome of one orchestrator pass.
type SyncRunStats struct {
	StartedAt   time.Time
	CompletedAt time.Time
	DryRun      bool
	Eligible    []Source
	Processed   int
	Succeeded   int
	Failed      int
	Skipped     int
	Outcomes    []SourceOutcome
}
