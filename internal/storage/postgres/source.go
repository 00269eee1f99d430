package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"youtube_ingest/internal/domain"
)

type SourceStore struct {
	db *sqlx.DB
}

func NewSourceStore(db *sqlx.DB) *SourceStore {
	return &SourceStore{db: db}
}

func (s *SourceStore) Create(ctx context.Context, src *domain.Source) (int64, error) {
	query := `
		INSERT INTO sources (url, kind, name, active, sync_interval_hours)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		src.URL,
		src.Kind,
		src.Name,
		src.Active,
		src.SyncIntervalHours,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (s *SourceStore) GetByID(ctx context.Context, id int64) (*domain.Source, error) {
	var src domain.Source
	query := `
		SELECT id, url, kind, name, active, sync_interval_hours, last_synced_at, created_at, updated_at
		FROM sources
		WHERE id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &src, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceStore) GetByURL(ctx context.Context, url string) (*domain.Source, error) {
	var src domain.Source
	query := `
		SELECT id, url, kind, name, active, sync_interval_hours, last_synced_at, created_at, updated_at
		FROM sources
		WHERE url = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &src, query, url)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &src, nil
}

func (s *SourceStore) List(ctx context.Context, activeOnly bool) ([]domain.Source, error) {
	query := `
		SELECT id, url, kind, name, active, sync_interval_hours, last_synced_at, created_at, updated_at
		FROM sources`
	if activeOnly {
		query += ` WHERE active`
	}
	query += ` ORDER BY id`

	var sources []domain.Source
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sources, query)
	return sources, err
}

// ListEligible returns active sources due for sync at the given time:
// never synced, or last synced at least one cadence interval ago.
func (s *SourceStore) ListEligible(ctx context.Context, now time.Time) ([]domain.Source, error) {
	query := `
		SELECT id, url, kind, name, active, sync_interval_hours, last_synced_at, created_at, updated_at
		FROM sources
		WHERE active
		  AND (last_synced_at IS NULL
		       OR last_synced_at + (sync_interval_hours * INTERVAL '1 hour') <= $1)
		ORDER BY last_synced_at NULLS FIRST`

	var sources []domain.Source
	err := sqlx.SelectContext(ctx, GetExecutor(ctx, s.db), &sources, query, now)
	return sources, err
}

func (s *SourceStore) Deactivate(ctx context.Context, id int64) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET active = FALSE, updated_at = NOW() WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func (s *SourceStore) SetSyncInterval(ctx context.Context, id int64, hours int) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET sync_interval_hours = $2, updated_at = NOW() WHERE id = $1`, id, hours)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

// UpdateLastSynced advances the cadence anchor. Callers pass the dispatch
// start time, not the completion time, so a long-running sync does not make
// the source immediately eligible again.
func (s *SourceStore) UpdateLastSynced(ctx context.Context, id int64, syncedAt time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx,
		`UPDATE sources SET last_synced_at = $2, updated_at = NOW() WHERE id = $1`, id, syncedAt)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

func checkAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return domain.ErrNotFound
	}
	return nil
}
