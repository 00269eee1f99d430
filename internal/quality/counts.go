// Package quality parses raw extraction payloads into validated domain
// records and scores transcript completeness. Everything here is a pure
// function; untyped payloads never travel past this boundary.
package quality

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var countCleaner = regexp.MustCompile(`[,\s]`)

// ParseCount converts a human-formatted count ("1.2M", "1,234", "5K") to an
// integer. Unparseable input counts as zero.
func ParseCount(s string) int64 {
	s = strings.TrimSpace(s)
	if s == "" || strings.EqualFold(s, "none") || strings.EqualFold(s, "n/a") {
		return 0
	}

	clean := countCleaner.ReplaceAllString(s, "")
	if clean == "" {
		return 0
	}

	multipliers := map[byte]float64{'K': 1e3, 'M': 1e6, 'B': 1e9}
	last := clean[len(clean)-1]
	if mult, ok := multipliers[last&^0x20]; ok { // uppercase fold
		n, err := strconv.ParseFloat(clean[:len(clean)-1], 64)
		if err != nil {
			return 0
		}
		return int64(n * mult)
	}

	n, err := strconv.ParseFloat(clean, 64)
	if err != nil {
		return 0
	}
	return int64(n)
}

var durationCleaner = regexp.MustCompile(`[^\d:]`)

// ParseDuration normalizes "MM:SS" or "HH:MM:SS" strings and returns the
// formatted duration plus total seconds. Unrecognized formats come back
// verbatim with zero seconds.
func ParseDuration(s string) (string, int) {
	if s == "" {
		return "", 0
	}

	clean := durationCleaner.ReplaceAllString(s, "")
	if clean == "" {
		return "", 0
	}

	parts := strings.Split(clean, ":")
	nums := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return s, 0
		}
		nums = append(nums, n)
	}

	switch len(nums) {
	case 2:
		return fmt.Sprintf("%02d:%02d", nums[0], nums[1]), nums[0]*60 + nums[1]
	case 3:
		return fmt.Sprintf("%02d:%02d:%02d", nums[0], nums[1], nums[2]), nums[0]*3600 + nums[1]*60 + nums[2]
	}
	return s, 0
}

var hashtagPattern = regexp.MustCompile(`#(\w+)`)

// ExtractTags pulls unique hashtags (without the #) from a description.
func ExtractTags(description string) []string {
	if description == "" {
		return nil
	}

	seen := make(map[string]struct{})
	var tags []string
	for _, m := range hashtagPattern.FindAllStringSubmatch(description, -1) {
		if _, ok := seen[m[1]]; ok {
			continue
		}
		seen[m[1]] = struct{}{}
		tags = append(tags, m[1])
	}
	return tags
}
