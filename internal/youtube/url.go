// Package youtube parses and normalizes YouTube URLs.
package youtube

import (
	"fmt"
	"regexp"
	"strings"

	"youtube_ingest/internal/domain"
)

// ParsedSource is the result of parsing a channel or playlist URL.
type ParsedSource struct {
	Kind          string
	Identifier    string
	NormalizedURL string
	OriginalURL   string
}

var channelPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/channel/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/c/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/user/([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)^(?:https?://)?(?:www\.)?youtube\.com/@([a-zA-Z0-9_.-]+)`),
}

var playlistPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/playlist\?list=([a-zA-Z0-9_-]+)`),
	regexp.MustCompile(`(?i)(?:https?://)?(?:www\.)?youtube\.com/watch\?.*list=([a-zA-Z0-9_-]+)`),
}

var videoIDPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([a-zA-Z0-9_-]{11})`),
	regexp.MustCompile(`youtube\.com/v/([a-zA-Z0-9_-]{11})`),
}

var bareVideoID = regexp.MustCompile(`^[a-zA-Z0-9_-]{11}$`)

// ParseSourceURL parses a channel or playlist URL and returns its kind,
// identifier and normalized form. Unknown formats return an error.
func ParseSourceURL(raw string) (*ParsedSource, error) {
	url := strings.TrimSpace(raw)
	if url == "" {
		return nil, fmt.Errorf("empty URL")
	}

	for _, p := range channelPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			id := m[1]
			return &ParsedSource{
				Kind:          domain.KindChannel,
				Identifier:    id,
				NormalizedURL: normalizeChannelURL(url, id),
				OriginalURL:   raw,
			}, nil
		}
	}

	for _, p := range playlistPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			id := m[1]
			return &ParsedSource{
				Kind:          domain.KindPlaylist,
				Identifier:    id,
				NormalizedURL: fmt.Sprintf("https://www.youtube.com/playlist?list=%s", id),
				OriginalURL:   raw,
			}, nil
		}
	}

	return nil, fmt.Errorf("not a recognized YouTube channel or playlist URL: %s", raw)
}

func normalizeChannelURL(original, identifier string) string {
	if strings.HasPrefix(identifier, "UC") {
		return fmt.Sprintf("https://www.youtube.com/channel/%s", identifier)
	}
	if strings.Contains(original, "/@") {
		return fmt.Sprintf("https://www.youtube.com/@%s", identifier)
	}
	if strings.Contains(original, "/user/") {
		return fmt.Sprintf("https://www.youtube.com/user/%s", identifier)
	}
	return fmt.Sprintf("https://www.youtube.com/c/%s", identifier)
}

// ExtractVideoID pulls the 11-character video ID out of a video URL.
// A bare video ID is accepted as-is.
func ExtractVideoID(url string) (string, bool) {
	if url == "" {
		return "", false
	}
	for _, p := range videoIDPatterns {
		if m := p.FindStringSubmatch(url); m != nil {
			return m[1], true
		}
	}
	if bareVideoID.MatchString(url) {
		return url, true
	}
	return "", false
}

// WatchURL returns the canonical watch URL for a video ID.
func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}
