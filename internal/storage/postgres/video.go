package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"youtube_ingest/internal/domain"
)

type VideoStore struct {
	db *sqlx.DB
}

func NewVideoStore(db *sqlx.DB) *VideoStore {
	return &VideoStore{db: db}
}

// UpsertMetadata inserts or refreshes the stage-2 metadata columns, keyed by
// the external video ID. Transcript columns are never listed here, so a
// concurrent stage-3 write on the same row cannot be clobbered.
func (s *VideoStore) UpsertMetadata(ctx context.Context, v *domain.Video) (int64, error) {
	query := `
		INSERT INTO videos (
			video_id, url, title, description, channel_id, channel_name, channel_url,
			playlist_id, playlist_name, duration, duration_seconds,
			view_count, like_count, comment_count, published_at, published_date,
			thumbnail_url, tags, source_id, ingested_at, metadata_updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, NOW(), NOW()
		)
		ON CONFLICT (video_id) DO UPDATE SET
			url = EXCLUDED.url,
			title = EXCLUDED.title,
			description = EXCLUDED.description,
			channel_id = EXCLUDED.channel_id,
			channel_name = EXCLUDED.channel_name,
			channel_url = EXCLUDED.channel_url,
			playlist_id = EXCLUDED.playlist_id,
			playlist_name = EXCLUDED.playlist_name,
			duration = EXCLUDED.duration,
			duration_seconds = EXCLUDED.duration_seconds,
			view_count = EXCLUDED.view_count,
			like_count = EXCLUDED.like_count,
			comment_count = EXCLUDED.comment_count,
			published_at = EXCLUDED.published_at,
			published_date = EXCLUDED.published_date,
			thumbnail_url = EXCLUDED.thumbnail_url,
			tags = EXCLUDED.tags,
			source_id = EXCLUDED.source_id,
			metadata_updated_at = NOW()
		RETURNING id`

	var id int64
	err := GetExecutor(ctx, s.db).QueryRowxContext(ctx, query,
		v.VideoID,
		v.URL,
		v.Title,
		v.Description,
		v.ChannelID,
		v.ChannelName,
		v.ChannelURL,
		v.PlaylistID,
		v.PlaylistName,
		v.Duration,
		v.DurationSeconds,
		v.ViewCount,
		v.LikeCount,
		v.CommentCount,
		v.PublishedAt,
		v.PublishedDate,
		v.ThumbnailURL,
		pq.Array(v.Tags),
		v.SourceID,
	).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("upsert video metadata: %w", err)
	}
	return id, nil
}

// ExistingIDs returns the subset of the given video IDs already present.
func (s *VideoStore) ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	result := make(map[string]struct{}, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	rows, err := GetExecutor(ctx, s.db).QueryxContext(ctx,
		`SELECT video_id FROM videos WHERE video_id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		result[id] = struct{}{}
	}
	return result, rows.Err()
}

// TranscriptStatus reports the persisted transcript state of a video.
// Empty transcript text with a set timestamp means checked-and-unavailable.
func (s *VideoStore) TranscriptStatus(ctx context.Context, videoID string) (domain.TranscriptState, error) {
	var row struct {
		IngestedAt *time.Time `db:"transcript_ingested_at"`
		Text       *string    `db:"transcript_text"`
	}
	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row,
		`SELECT transcript_ingested_at, transcript_text FROM videos WHERE video_id = $1`, videoID)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.TranscriptMissing, domain.ErrNotFound
	}
	if err != nil {
		return domain.TranscriptMissing, err
	}

	if row.IngestedAt == nil {
		return domain.TranscriptMissing, nil
	}
	if row.Text == nil || *row.Text == "" {
		return domain.TranscriptUnavailable, nil
	}
	return domain.TranscriptIngested, nil
}

// UpsertTranscript writes the stage-3 transcript columns only. The metadata
// row must already exist; stage 2 always precedes stage 3 for a video.
func (s *VideoStore) UpsertTranscript(ctx context.Context, videoID string, t *domain.Transcript, ingestedAt time.Time) error {
	segments, err := json.Marshal(t.Segments)
	if err != nil {
		return fmt.Errorf("encode segments: %w", err)
	}

	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE videos SET
			transcript = $2,
			transcript_text = $3,
			transcript_language = $4,
			quality_score = $5,
			low_quality = $6,
			transcript_ingested_at = $7
		WHERE video_id = $1`,
		videoID,
		segments,
		t.Text,
		t.Language,
		t.QualityScore,
		t.LowQuality,
		ingestedAt,
	)
	if err != nil {
		return fmt.Errorf("upsert transcript: %w", err)
	}
	return checkAffected(res)
}

// MarkTranscriptUnavailable records a terminal no-transcript outcome so
// later runs skip the video.
func (s *VideoStore) MarkTranscriptUnavailable(ctx context.Context, videoID string, checkedAt time.Time) error {
	res, err := GetExecutor(ctx, s.db).ExecContext(ctx, `
		UPDATE videos SET
			transcript_text = '',
			transcript_ingested_at = $2
		WHERE video_id = $1`,
		videoID, checkedAt)
	if err != nil {
		return err
	}
	return checkAffected(res)
}

type videoRow struct {
	ID                   int64          `db:"id"`
	VideoID              string         `db:"video_id"`
	URL                  string         `db:"url"`
	Title                string         `db:"title"`
	Description          string         `db:"description"`
	ChannelID            *string        `db:"channel_id"`
	ChannelName          *string        `db:"channel_name"`
	ChannelURL           *string        `db:"channel_url"`
	PlaylistID           *string        `db:"playlist_id"`
	PlaylistName         *string        `db:"playlist_name"`
	Duration             string         `db:"duration"`
	DurationSeconds      int            `db:"duration_seconds"`
	ViewCount            int64          `db:"view_count"`
	LikeCount            int64          `db:"like_count"`
	CommentCount         int64          `db:"comment_count"`
	PublishedAt          string         `db:"published_at"`
	PublishedDate        *time.Time     `db:"published_date"`
	ThumbnailURL         *string        `db:"thumbnail_url"`
	Tags                 pq.StringArray `db:"tags"`
	SourceID             *int64         `db:"source_id"`
	Transcript           []byte         `db:"transcript"`
	TranscriptText       *string        `db:"transcript_text"`
	TranscriptLanguage   *string        `db:"transcript_language"`
	QualityScore         *float64       `db:"quality_score"`
	LowQuality           bool           `db:"low_quality"`
	IngestedAt           time.Time      `db:"ingested_at"`
	TranscriptIngestedAt *time.Time     `db:"transcript_ingested_at"`
	MetadataUpdatedAt    time.Time      `db:"metadata_updated_at"`
}

// GetByVideoID returns the full record, including transcript fields.
func (s *VideoStore) GetByVideoID(ctx context.Context, videoID string) (*domain.Video, error) {
	var row videoRow
	query := `
		SELECT id, video_id, url, title, description, channel_id, channel_name, channel_url,
		       playlist_id, playlist_name, duration, duration_seconds,
		       view_count, like_count, comment_count, published_at, published_date,
		       thumbnail_url, tags, source_id, transcript, transcript_text,
		       transcript_language, quality_score, low_quality,
		       ingested_at, transcript_ingested_at, metadata_updated_at
		FROM videos
		WHERE video_id = $1`

	err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, videoID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	v := &domain.Video{
		ID:                   row.ID,
		VideoID:              row.VideoID,
		URL:                  row.URL,
		Title:                row.Title,
		Description:          row.Description,
		ChannelID:            row.ChannelID,
		ChannelName:          row.ChannelName,
		ChannelURL:           row.ChannelURL,
		PlaylistID:           row.PlaylistID,
		PlaylistName:         row.PlaylistName,
		Duration:             row.Duration,
		DurationSeconds:      row.DurationSeconds,
		ViewCount:            row.ViewCount,
		LikeCount:            row.LikeCount,
		CommentCount:         row.CommentCount,
		PublishedAt:          row.PublishedAt,
		PublishedDate:        row.PublishedDate,
		ThumbnailURL:         row.ThumbnailURL,
		Tags:                 row.Tags,
		SourceID:             row.SourceID,
		TranscriptText:       row.TranscriptText,
		TranscriptLanguage:   row.TranscriptLanguage,
		QualityScore:         row.QualityScore,
		LowQuality:           row.LowQuality,
		IngestedAt:           row.IngestedAt,
		TranscriptIngestedAt: row.TranscriptIngestedAt,
		MetadataUpdatedAt:    row.MetadataUpdatedAt,
	}

	if len(row.Transcript) > 0 {
		if err := json.Unmarshal(row.Transcript, &v.Transcript); err != nil {
			return nil, fmt.Errorf("decode transcript segments: %w", err)
		}
	}
	return v, nil
}
