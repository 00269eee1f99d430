package domain

import "time"

// Pipeline stage names recorded in the ingestion log.
const (
	StageSync       = "sync"
	StageList       = "list_ingestion"
	StageTranscript = "transcript_ingestion"
)

// Ingestion log statuses.
const (
	LogStarted   = "started"
	LogCompleted = "completed"
	LogFailed    = "failed"
)

// IngestionLog is one append-only audit row per stage attempt.
// A row is started once and then completed or failed, never mutated after.
type IngestionLog struct {
	ID               int64      `db:"id"`
	Stage            string     `db:"stage"`
	SourceKind       *string    `db:"source_kind"`
	SourceIdentifier *string    `db:"source_identifier"`
	Status           string     `db:"status"`
	ErrorMessage     *string    `db:"error_message"`
	RecordsProcessed int        `db:"records_processed"`
	StartedAt        time.Time  `db:"started_at"`
	CompletedAt      *time.Time `db:"completed_at"`
	RunID            *string    `db:"run_id"`
	DatasetID        *string    `db:"dataset_id"`
}
