package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jmoiron/sqlx"

	"youtube_ingest/internal/domain"
)

type ChannelStore struct {
	db *sqlx.DB
}

func NewChannelStore(db *sqlx.DB) *ChannelStore {
	return &ChannelStore{db: db}
}

// Upsert is last-write-wins on all mutable fields, keyed by the external
// channel ID.
func (s *ChannelStore) Upsert(ctx context.Context, ch *domain.Channel) error {
	links, err := json.Marshal(ch.DescriptionLinks)
	if err != nil {
		return fmt.Errorf("encode description links: %w", err)
	}

	query := `
		INSERT INTO channels (
			channel_id, name, url, description, description_links, joined_date,
			location, total_videos, total_views, total_views_numeric,
			subscriber_count, is_monetized, ingested_at, updated_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, NOW(), NOW()
		)
		ON CONFLICT (channel_id) DO UPDATE SET
			name = EXCLUDED.name,
			url = EXCLUDED.url,
			description = EXCLUDED.description,
			description_links = EXCLUDED.description_links,
			joined_date = EXCLUDED.joined_date,
			location = EXCLUDED.location,
			total_videos = EXCLUDED.total_videos,
			total_views = EXCLUDED.total_views,
			total_views_numeric = EXCLUDED.total_views_numeric,
			subscriber_count = EXCLUDED.subscriber_count,
			is_monetized = EXCLUDED.is_monetized,
			updated_at = NOW()`

	_, err = GetExecutor(ctx, s.db).ExecContext(ctx, query,
		ch.ChannelID,
		ch.Name,
		ch.URL,
		ch.Description,
		links,
		ch.JoinedDate,
		ch.Location,
		ch.TotalVideos,
		ch.TotalViews,
		ch.TotalViewsNumeric,
		ch.SubscriberCount,
		ch.IsMonetized,
	)
	if err != nil {
		return fmt.Errorf("upsert channel: %w", err)
	}
	return nil
}

// GetByChannelID returns a channel by its external ID.
func (s *ChannelStore) GetByChannelID(ctx context.Context, channelID string) (*domain.Channel, error) {
	var row struct {
		ID                int64   `db:"id"`
		ChannelID         string  `db:"channel_id"`
		Name              string  `db:"name"`
		URL               string  `db:"url"`
		Description       string  `db:"description"`
		DescriptionLinks  []byte  `db:"description_links"`
		JoinedDate        string  `db:"joined_date"`
		Location          string  `db:"location"`
		TotalVideos       *int    `db:"total_videos"`
		TotalViews        string  `db:"total_views"`
		TotalViewsNumeric int64   `db:"total_views_numeric"`
		SubscriberCount   int64   `db:"subscriber_count"`
		IsMonetized       *bool   `db:"is_monetized"`
	}

	query := `
		SELECT id, channel_id, name, url, description, description_links, joined_date,
		       location, total_videos, total_views, total_views_numeric,
		       subscriber_count, is_monetized
		FROM channels
		WHERE channel_id = $1`

	if err := sqlx.GetContext(ctx, GetExecutor(ctx, s.db), &row, query, channelID); err != nil {
		return nil, err
	}

	ch := &domain.Channel{
		ID:                row.ID,
		ChannelID:         row.ChannelID,
		Name:              row.Name,
		URL:               row.URL,
		Description:       row.Description,
		JoinedDate:        row.JoinedDate,
		Location:          row.Location,
		TotalVideos:       row.TotalVideos,
		TotalViews:        row.TotalViews,
		TotalViewsNumeric: row.TotalViewsNumeric,
		SubscriberCount:   row.SubscriberCount,
		IsMonetized:       row.IsMonetized,
	}
	if len(row.DescriptionLinks) > 0 {
		if err := json.Unmarshal(row.DescriptionLinks, &ch.DescriptionLinks); err != nil {
			return nil, fmt.Errorf("decode description links: %w", err)
		}
	}
	return ch, nil
}
