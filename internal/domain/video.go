package domain

import "time"

// TranscriptSegment is one timed piece of a video transcript.
type TranscriptSegment struct {
	Start float64 `json:"start"`
	Dur   float64 `json:"dur"`
	Text  string  `json:"text"`
}

// Video holds metadata ingested in stage 2 and transcript fields filled in
// stage 3. The two field sets are disjoint so the stages never overwrite
// each other's columns.
type Video struct {
	ID              int64    `json:"id"`
	VideoID         string   `json:"video_id"`
	URL             string   `json:"video_url"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	ChannelID       *string  `json:"channel_id,omitempty"`
	ChannelName     *string  `json:"channel_name,omitempty"`
	ChannelURL      *string  `json:"channel_url,omitempty"`
	PlaylistID      *string  `json:"playlist_id,omitempty"`
	PlaylistName    *string  `json:"playlist_name,omitempty"`
	Duration        string   `json:"duration"`
	DurationSeconds int      `json:"duration_seconds"`
	ViewCount       int64    `json:"view_count"`
	LikeCount       int64    `json:"like_count"`
	CommentCount    int64    `json:"comment_count"`
	PublishedAt     string   `json:"published_at"` // raw, possibly relative ("2 years ago")
	PublishedDate   *time.Time `json:"published_date,omitempty"`
	ThumbnailURL    *string  `json:"thumbnail_url,omitempty"`
	Tags            []string `json:"tags,omitempty"`
	SourceID        *int64   `json:"source_id,omitempty"`

	Transcript           []TranscriptSegment `json:"transcript_segments,omitempty"`
	TranscriptText       *string             `json:"transcript_text,omitempty"`
	TranscriptLanguage   *string             `json:"transcript_language,omitempty"`
	QualityScore         *float64            `json:"quality_score,omitempty"`
	LowQuality           bool                `json:"low_quality"`
	IngestedAt           time.Time           `json:"ingested_at"`
	TranscriptIngestedAt *time.Time          `json:"transcript_ingested_at,omitempty"`
	MetadataUpdatedAt    time.Time           `json:"metadata_updated_at"`
}

// HasTranscript reports whether a non-empty transcript has been stored.
// An empty transcript text marks a video checked and found unavailable.
func (v *Video) HasTranscript() bool {
	return v.TranscriptText != nil && *v.TranscriptText != ""
}

// TranscriptState describes the persisted transcript status of a video.
type TranscriptState int

const (
	// TranscriptMissing means stage 3 has not run for the video yet.
	TranscriptMissing TranscriptState = iota
	// TranscriptIngested means a transcript is stored.
	TranscriptIngested
	// TranscriptUnavailable means stage 3 ran and the video has no transcript.
	TranscriptUnavailable
)

// Transcript is the validated output of the parsing pipeline for one video.
type Transcript struct {
	Segments     []TranscriptSegment
	Text         string
	Language     string
	WordCount    int
	QualityScore float64
	LowQuality   bool
}
