package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestSource_Eligible(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	neverSynced := &Source{Active: true, SyncIntervalHours: 24}
	assert.True(t, neverSynced.Eligible(now))
	assert.True(t, neverSynced.NextSyncAt().IsZero())

	recentlySynced := &Source{Active: true, SyncIntervalHours: 24}
	last := now.Add(-1 * time.Hour)
	recentlySynced.LastSyncedAt = &last
	assert.False(t, recentlySynced.Eligible(now))

	overdue := &Source{Active: true, SyncIntervalHours: 24}
	old := now.Add(-25 * time.Hour)
	overdue.LastSyncedAt = &old
	assert.True(t, overdue.Eligible(now))

	// Exactly one interval elapsed: due, not strictly after.
	boundary := &Source{Active: true, SyncIntervalHours: 24}
	exact := now.Add(-24 * time.Hour)
	boundary.LastSyncedAt = &exact
	assert.True(t, boundary.Eligible(now))

	inactive := &Source{Active: false, SyncIntervalHours: 24}
	assert.False(t, inactive.Eligible(now))
}

func TestSource_SyncInterval(t *testing.T) {
	s := &Source{SyncIntervalHours: 12}
	assert.Equal(t, 12*time.Hour, s.SyncInterval())
}

func TestVideo_HasTranscript(t *testing.T) {
	text := "some transcript"
	empty := ""

	assert.False(t, (&Video{}).HasTranscript())
	assert.False(t, (&Video{TranscriptText: &empty}).HasTranscript())
	assert.True(t, (&Video{TranscriptText: &text}).HasTranscript())
}
