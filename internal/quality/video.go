package quality

import (
	"fmt"
	"strings"
	"time"

	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/extractor"
	"youtube_ingest/internal/youtube"
)

// ParseVideo converts one raw listing item into a typed metadata record.
// Transcript fields stay untouched; stage 3 owns those.
func ParseVideo(raw *extractor.RawVideo, now time.Time) (*domain.Video, error) {
	videoID, ok := youtube.ExtractVideoID(raw.URL)
	if !ok {
		return nil, fmt.Errorf("no video ID in URL %q", raw.URL)
	}

	durationStr, durationSeconds := ParseDuration(raw.Duration.String())
	description := strings.TrimSpace(raw.Text)
	publishedRaw, publishedDate := ParsePublishedDate(raw.Date.String(), now)

	v := &domain.Video{
		VideoID:         videoID,
		URL:             youtube.WatchURL(videoID),
		Title:           strings.TrimSpace(raw.Title),
		Description:     description,
		Duration:        durationStr,
		DurationSeconds: durationSeconds,
		ViewCount:       ParseCount(raw.ViewCount.String()),
		LikeCount:       ParseCount(raw.Likes.String()),
		CommentCount:    ParseCount(raw.CommentsCount.String()),
		PublishedAt:     publishedRaw,
		PublishedDate:   publishedDate,
		Tags:            ExtractTags(description),
	}

	if raw.ChannelID != "" {
		channelID := raw.ChannelID
		v.ChannelID = &channelID
	}
	if name := strings.TrimSpace(raw.ChannelName); name != "" {
		v.ChannelName = &name
	}
	if raw.ChannelURL != "" {
		channelURL := raw.ChannelURL
		v.ChannelURL = &channelURL
	}
	if raw.PlaylistID != "" {
		playlistID := raw.PlaylistID
		v.PlaylistID = &playlistID
	}
	if raw.PlaylistName != "" {
		playlistName := raw.PlaylistName
		v.PlaylistName = &playlistName
	}
	if raw.ThumbnailURL != "" {
		thumb := raw.ThumbnailURL
		v.ThumbnailURL = &thumb
	}

	return v, nil
}
