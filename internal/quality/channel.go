package quality

import (
	"fmt"
	"strings"

	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/extractor"
)

// ParseChannel extracts the channel record embedded in a listing item.
// Items without a channel ID carry no usable channel data.
func ParseChannel(raw *extractor.RawVideo) (*domain.Channel, error) {
	if raw.ChannelID == "" {
		return nil, fmt.Errorf("no channel ID in listing item")
	}

	ch := &domain.Channel{
		ChannelID:         raw.ChannelID,
		Name:              strings.TrimSpace(raw.ChannelName),
		URL:               raw.ChannelURL,
		Description:       strings.TrimSpace(raw.ChannelDescription),
		JoinedDate:        raw.ChannelJoinedDate,
		Location:          raw.ChannelLocation,
		TotalVideos:       raw.ChannelTotalVideos,
		TotalViews:        raw.ChannelTotalViews.String(),
		TotalViewsNumeric: ParseCount(raw.ChannelTotalViews.String()),
		SubscriberCount:   ParseCount(raw.NumberOfSubscribers.String()),
		IsMonetized:       raw.IsMonetized,
	}

	for _, link := range raw.ChannelDescriptionLinks {
		ch.DescriptionLinks = append(ch.DescriptionLinks, domain.Link{URL: link.URL, Text: link.Text})
	}

	return ch, nil
}
