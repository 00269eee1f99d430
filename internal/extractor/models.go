package extractor

import (
	"bytes"
	"encoding/json"
)

// FlexString decodes a JSON value that may arrive as a string or a number.
// The scraper is not consistent about count and timestamp field types.
type FlexString string

func (f *FlexString) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*f = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = FlexString(s)
		return nil
	}
	*f = FlexString(b)
	return nil
}

func (f FlexString) String() string { return string(f) }

// RawLink is a {url, text} pair as delivered by the scraper.
type RawLink struct {
	URL  string `json:"url"`
	Text string `json:"text"`
}

// RawVideo is one item of a listing run. Channel fields are embedded in
// every video record; fields beyond the documented minimum are preserved
// as raw JSON for downstream parsing.
type RawVideo struct {
	URL           string     `json:"url"`
	Title         string     `json:"title"`
	Text          string     `json:"text"` // description
	Date          FlexString `json:"date"` // possibly relative ("2 years ago")
	Duration      FlexString `json:"duration"`
	ViewCount     FlexString `json:"viewCount"`
	Likes         FlexString `json:"likes"`
	CommentsCount FlexString `json:"commentsCount"`
	ThumbnailURL  string     `json:"thumbnailUrl"`
	PlaylistID    string     `json:"playlistId"`
	PlaylistName  string     `json:"playlistName"`
	SourceURL     string     `json:"sourceUrl"`
	IsLiveContent bool       `json:"isLiveContent"`
	IsMonetized   *bool      `json:"isMonetized"`
	Location      string     `json:"location"`

	ChannelID               string     `json:"channelId"`
	ChannelName             string     `json:"channelName"`
	ChannelURL              string     `json:"channelUrl"`
	ChannelDescription      string     `json:"channelDescription"`
	ChannelDescriptionLinks []RawLink  `json:"channelDescriptionLinks"`
	ChannelJoinedDate       string     `json:"channelJoinedDate"`
	ChannelLocation         string     `json:"channelLocation"`
	ChannelTotalVideos      *int       `json:"channelTotalVideos"`
	ChannelTotalViews       FlexString `json:"channelTotalViews"`
	NumberOfSubscribers     FlexString `json:"numberOfSubscribers"`

	DescriptionLinks []RawLink       `json:"descriptionLinks"`
	Subtitles        json.RawMessage `json:"subtitles"`
}

// RawSegment is a single transcript segment with flexible timestamp fields.
type RawSegment struct {
	Start     FlexString `json:"start"`
	StartTime FlexString `json:"startTime"`
	Dur       FlexString `json:"dur"`
	Duration  FlexString `json:"duration"`
	Text      string     `json:"text"`
}

// RawTranscript is the payload of a transcript run. The scraper has used
// several field names for the segment list over time; the first non-empty
// one wins.
type RawTranscript struct {
	Transcript []RawSegment `json:"transcript"`
	Segments   []RawSegment `json:"transcriptSegments"`
	Captions   []RawSegment `json:"captions"`
	Data       []RawSegment `json:"data"`
	Language   string       `json:"language"`
	Lang       string       `json:"lang"`
}

// SegmentList returns the first populated segment field.
func (t *RawTranscript) SegmentList() []RawSegment {
	for _, segs := range [][]RawSegment{t.Transcript, t.Segments, t.Captions, t.Data} {
		if len(segs) > 0 {
			return segs
		}
	}
	return nil
}

// LanguageHint returns the language code reported by the scraper, if any.
func (t *RawTranscript) LanguageHint() string {
	if t.Language != "" {
		return t.Language
	}
	return t.Lang
}

// RunInfo identifies a completed remote extraction job.
type RunInfo struct {
	RunID     string
	DatasetID string
}

type run struct {
	ID               string `json:"id"`
	Status           string `json:"status"`
	DefaultDatasetID string `json:"defaultDatasetId"`
}

type runResponse struct {
	Data run `json:"data"`
}

// Remote run states.
const (
	runSucceeded = "SUCCEEDED"
	runFailed    = "FAILED"
	runAborted   = "ABORTED"
	runTimedOut  = "TIMED-OUT"
)

func (r run) finished() bool {
	switch r.Status {
	case runSucceeded, runFailed, runAborted, runTimedOut:
		return true
	}
	return false
}
