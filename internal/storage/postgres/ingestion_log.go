package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"

	"youtube_ingest/internal/domain"
)

// IngestionLogStore appends audit rows for stage attempts. A row is written
// once with status started and finalized exactly once; retries get fresh
// rows, preserving the attempt history.
type IngestionLogStore struct {
	db *sqlx.DB
}

func NewIngestionLogStore(db *sqlx.DB) *IngestionLogStore {
	return &IngestionLogStore{db: db}
}

func (s *IngestionLogStore) Start(ctx context.Context, entry *domain.IngestionLog) (int64, error) {
	query := `
		INSERT INTO ingestion_log (stage, source_kind, source_identifier, status, started_at)
		VALUES ($1, $2, $3, $4, NOW())
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		entry.Stage,
		entry.SourceKind,
		entry.SourceIdentifier,
		domain.LogStarted,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *IngestionLogStore) Complete(ctx context.Context, id int64, records int, runID, datasetID string) error {
	var runPtr, datasetPtr *string
	if runID != "" {
		runPtr = &runID
	}
	if datasetID != "" {
		datasetPtr = &datasetID
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE ingestion_log SET
			status = $2,
			records_processed = $3,
			run_id = $4,
			dataset_id = $5,
			completed_at = NOW()
		WHERE id = $1 AND status = $6`,
		id, domain.LogCompleted, records, runPtr, datasetPtr, domain.LogStarted)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *IngestionLogStore) Fail(ctx context.Context, id int64, errMsg string) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE ingestion_log SET
			status = $2,
			error_message = $3,
			completed_at = NOW()
		WHERE id = $1 AND status = $4`,
		id, domain.LogFailed, errMsg, domain.LogStarted)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// ListByStage returns recent attempts for one stage, newest first.
func (s *IngestionLogStore) ListByStage(ctx context.Context, stage string, limit int) ([]domain.IngestionLog, error) {
	query := `
		SELECT id, stage, source_kind, source_identifier, status, error_message,
		       records_processed, started_at, completed_at, run_id, dataset_id
		FROM ingestion_log
		WHERE stage = $1
		ORDER BY started_at DESC
		LIMIT $2`

	var entries []domain.IngestionLog
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &entries, query, stage, limit)
	return entries, err
}
