package domain

import "time"

// Link is a URL with surrounding context text, extracted from descriptions.
type Link struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// Channel holds channel metadata embedded in listing payloads.
// Upserts are last-write-wins keyed by ChannelID.
type Channel struct {
	ID                int64     `json:"id"`
	ChannelID         string    `json:"channel_id"`
	Name              string    `json:"channel_name"`
	URL               string    `json:"channel_url"`
	Description       string    `json:"channel_description"`
	DescriptionLinks  []Link    `json:"channel_description_links,omitempty"`
	JoinedDate        string    `json:"channel_joined_date"`
	Location          string    `json:"channel_location"`
	TotalVideos       *int      `json:"channel_total_videos,omitempty"`
	TotalViews        string    `json:"channel_total_views"` // human-formatted, e.g. "1,710,167,563"
	TotalViewsNumeric int64     `json:"channel_total_views_numeric"`
	SubscriberCount   int64     `json:"number_of_subscribers"`
	IsMonetized       *bool     `json:"is_monetized,omitempty"`
	IngestedAt        time.Time `json:"ingested_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}
