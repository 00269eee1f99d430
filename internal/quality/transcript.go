package quality

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/RadhiFadlillah/whatlanggo"

	"youtube_ingest/internal/domain"
	"youtube_ingest/internal/extractor"
)

// ScoreConfig holds the quality thresholds used when scoring a transcript.
type ScoreConfig struct {
	MinLength        int
	MinSegments      int
	QualityThreshold float64
	Languages        []string
}

// Score factor weights: segment-count adequacy, text length vs the minimum,
// language allow-list match.
const (
	segmentWeight  = 0.3
	lengthWeight   = 0.4
	languageWeight = 0.3
)

// ParseTranscript normalizes a raw transcript payload: cleans segment text,
// drops empty segments, builds the space-joined full-text projection and
// detects the language. Scoring happens separately.
func ParseTranscript(raw *extractor.RawTranscript) *domain.Transcript {
	var segments []domain.TranscriptSegment
	var textParts []string

	for _, rs := range raw.SegmentList() {
		text := cleanSegmentText(rs.Text)
		if text == "" {
			continue
		}

		start := parseTimestamp(firstNonEmpty(rs.Start.String(), rs.StartTime.String()))
		dur := parseTimestamp(firstNonEmpty(rs.Dur.String(), rs.Duration.String()))

		segments = append(segments, domain.TranscriptSegment{
			Start: start,
			Dur:   dur,
			Text:  text,
		})
		textParts = append(textParts, text)
	}

	fullText := strings.Join(textParts, " ")

	return &domain.Transcript{
		Segments:  segments,
		Text:      fullText,
		Language:  detectLanguage(raw.LanguageHint(), fullText),
		WordCount: len(strings.Fields(fullText)),
	}
}

// ValidateSegments checks the structural invariants of a segment sequence:
// non-empty, non-decreasing start offsets, non-blank text.
func ValidateSegments(segments []domain.TranscriptSegment) error {
	if len(segments) == 0 {
		return fmt.Errorf("empty segment sequence")
	}

	prev := segments[0].Start
	for i, seg := range segments {
		if strings.TrimSpace(seg.Text) == "" {
			return fmt.Errorf("segment %d has empty text", i)
		}
		if seg.Start < prev {
			return fmt.Errorf("segment %d start %.2f before previous %.2f", i, seg.Start, prev)
		}
		prev = seg.Start
	}
	return nil
}

// Score computes the weighted quality score in [0,1] and fills the
// LowQuality flag. Low-quality transcripts are still stored and published;
// downstream consumers decide what to do with them.
func Score(t *domain.Transcript, cfg ScoreConfig) {
	var score float64

	if cfg.MinSegments > 0 {
		adequacy := float64(len(t.Segments)) / float64(cfg.MinSegments)
		score += min(adequacy, 1.0) * segmentWeight
	}

	if cfg.MinLength > 0 {
		completeness := float64(len(t.Text)) / float64(cfg.MinLength)
		score += min(completeness, 1.0) * lengthWeight
	}

	if languageAllowed(t.Language, cfg.Languages) {
		score += languageWeight
	}

	t.QualityScore = min(score, 1.0)
	t.LowQuality = t.QualityScore < cfg.QualityThreshold
}

func languageAllowed(lang string, allowed []string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, a := range allowed {
		if strings.EqualFold(lang, a) {
			return true
		}
	}
	return false
}

func detectLanguage(hint, text string) string {
	if hint != "" {
		hint = strings.ToLower(hint)
		if len(hint) > 2 {
			hint = hint[:2]
		}
		return hint
	}
	if text == "" {
		return "unknown"
	}

	info := whatlanggo.Detect(text)
	if !info.IsReliable() {
		return "unknown"
	}
	return info.Lang.Iso6391()
}

var (
	whitespacePattern = regexp.MustCompile(`\s+`)
	bracketPattern    = regexp.MustCompile(`\[.*?\]|\(.*?\)`) // [Music], (inaudible)
	speakerPattern    = regexp.MustCompile(`^[A-Z\s]+:`)
)

func cleanSegmentText(text string) string {
	cleaned := whitespacePattern.ReplaceAllString(strings.TrimSpace(text), " ")
	cleaned = bracketPattern.ReplaceAllString(cleaned, "")
	cleaned = speakerPattern.ReplaceAllString(cleaned, "")
	return strings.TrimSpace(cleaned)
}

// parseTimestamp accepts plain seconds ("12.4") and clock formats
// ("MM:SS", "HH:MM:SS").
func parseTimestamp(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}

	if strings.Contains(s, ":") {
		parts := strings.Split(s, ":")
		var total float64
		for _, p := range parts {
			n, err := strconv.ParseFloat(p, 64)
			if err != nil {
				return 0
			}
			total = total*60 + n
		}
		return total
	}

	n, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return n
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
