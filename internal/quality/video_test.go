package quality

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youtube_ingest/internal/extractor"
)

func TestParseVideo(t *testing.T) {
	now := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	raw := &extractor.RawVideo{
		URL:           "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		Title:         "  A Video Title  ",
		Text:          "description with #golang content",
		Date:          "2 days ago",
		Duration:      "10:30",
		ViewCount:     "1.2M",
		Likes:         "15K",
		CommentsCount: "1,234",
		ThumbnailURL:  "https://i.ytimg.com/vi/dQw4w9WgXcQ/hq720.jpg",
		ChannelID:     "UCabc",
		ChannelName:   "The Channel",
		ChannelURL:    "https://www.youtube.com/channel/UCabc",
	}

	v, err := ParseVideo(raw, now)
	require.NoError(t, err)

	assert.Equal(t, "dQw4w9WgXcQ", v.VideoID)
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", v.URL)
	assert.Equal(t, "A Video Title", v.Title)
	assert.Equal(t, "10:30", v.Duration)
	assert.Equal(t, 630, v.DurationSeconds)
	assert.Equal(t, int64(1200000), v.ViewCount)
	assert.Equal(t, int64(15000), v.LikeCount)
	assert.Equal(t, int64(1234), v.CommentCount)
	assert.Equal(t, "2 days ago", v.PublishedAt)
	require.NotNil(t, v.PublishedDate)
	assert.Equal(t, time.Date(2026, 3, 13, 0, 0, 0, 0, time.UTC), *v.PublishedDate)
	assert.Equal(t, []string{"golang"}, v.Tags)
	require.NotNil(t, v.ChannelID)
	assert.Equal(t, "UCabc", *v.ChannelID)
	require.NotNil(t, v.ChannelName)
	assert.Equal(t, "The Channel", *v.ChannelName)
	assert.Nil(t, v.PlaylistID)
}

func TestParseVideo_NoVideoID(t *testing.T) {
	raw := &extractor.RawVideo{URL: "https://www.youtube.com/@handle"}

	_, err := ParseVideo(raw, time.Now())
	assert.Error(t, err)
}

func TestParseChannel(t *testing.T) {
	total := 321
	raw := &extractor.RawVideo{
		URL:                "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
		ChannelID:          "UCabc",
		ChannelName:        "The Channel",
		ChannelURL:         "https://www.youtube.com/channel/UCabc",
		ChannelDescription: "we make videos",
		ChannelDescriptionLinks: []extractor.RawLink{
			{URL: "https://example.com", Text: "site"},
		},
		ChannelJoinedDate:   "Jan 1, 2015",
		ChannelLocation:     "United States",
		ChannelTotalVideos:  &total,
		ChannelTotalViews:   "1.5B",
		NumberOfSubscribers: "2.3M",
	}

	ch, err := ParseChannel(raw)
	require.NoError(t, err)

	assert.Equal(t, "UCabc", ch.ChannelID)
	assert.Equal(t, "The Channel", ch.Name)
	assert.Equal(t, "1.5B", ch.TotalViews)
	assert.Equal(t, int64(1500000000), ch.TotalViewsNumeric)
	assert.Equal(t, int64(2300000), ch.SubscriberCount)
	require.NotNil(t, ch.TotalVideos)
	assert.Equal(t, 321, *ch.TotalVideos)
	require.Len(t, ch.DescriptionLinks, 1)
	assert.Equal(t, "https://example.com", ch.DescriptionLinks[0].URL)
}

func TestParseChannel_MissingID(t *testing.T) {
	_, err := ParseChannel(&extractor.RawVideo{ChannelName: "nameless"})
	assert.Error(t, err)
}
