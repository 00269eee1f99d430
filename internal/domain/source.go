package domain

import "time"

const (
	KindChannel  = "channel"
	KindPlaylist = "playlist"
)

// Source is a monitored YouTube channel or playlist with a sync cadence.
type Source struct {
	ID                int64      `db:"id" json:"id"`
	URL               string     `db:"url" json:"url"`
	Kind              string     `db:"kind" json:"kind"`
	Name              *string    `db:"name" json:"name,omitempty"`
	Active            bool       `db:"active" json:"active"`
	SyncIntervalHours int        `db:"sync_interval_hours" json:"sync_interval_hours"`
	LastSyncedAt      *time.Time `db:"last_synced_at" json:"last_synced_at,omitempty"`
	CreatedAt         time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt         time.Time  `db:"updated_at" json:"updated_at"`
}

// SyncInterval returns the cadence as a duration.
func (s *Source) SyncInterval() time.Duration {
	return time.Duration(s.SyncIntervalHours) * time.Hour
}

// NextSyncAt returns the earliest time the source becomes eligible again.
// A never-synced source is eligible immediately.
func (s *Source) NextSyncAt() time.Time {
	if s.LastSyncedAt == nil {
		return time.Time{}
	}
	return s.LastSyncedAt.Add(s.SyncInterval())
}

// Eligible reports whether the source is due for sync at the given time.
func (s *Source) Eligible(now time.Time) bool {
	return s.Active && !s.NextSyncAt().After(now)
}
