package extractor

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"youtube_ingest/internal/config"
)

func testConfig(baseURL string) config.ExtractorConfig {
	return config.ExtractorConfig{
		BaseURL:         baseURL,
		Token:           "test-token",
		ListingActor:    "test~listing-actor",
		TranscriptActor: "test~transcript-actor",
		MaxResults:      100,
		RequestTimeout:  5 * time.Second,
		PollInterval:    10 * time.Millisecond,
		Retry: config.RetryConfig{
			MaxAttempts:    3,
			InitialBackoff: 10 * time.Millisecond,
			MaxBackoff:     50 * time.Millisecond,
		},
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

type fakeActor struct {
	t *testing.T

	// runStatus is returned from the run poll endpoint.
	runStatus string
	// items is the dataset payload.
	items any
	// failSubmits makes the first N submissions return 500.
	failSubmits int32

	submits int32
	polls   int32
}

func (f *fakeActor) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(f.t, "test-token", r.URL.Query().Get("token"))

		switch {
		case strings.Contains(r.URL.Path, "/acts/") && strings.HasSuffix(r.URL.Path, "/runs"):
			if atomic.AddInt32(&f.submits, 1) <= f.failSubmits {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			writeRun(w, "run-1", "READY")
		case strings.Contains(r.URL.Path, "/actor-runs/"):
			atomic.AddInt32(&f.polls, 1)
			writeRun(w, "run-1", f.runStatus)
		case strings.Contains(r.URL.Path, "/datasets/"):
			_ = json.NewEncoder(w).Encode(f.items)
		default:
			f.t.Fatalf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
	})
}

func writeRun(w http.ResponseWriter, id, status string) {
	_ = json.NewEncoder(w).Encode(map[string]any{
		"data": map[string]any{
			"id":               id,
			"status":           status,
			"defaultDatasetId": "ds-1",
		},
	})
}

func TestFetchSourceListing_Success(t *testing.T) {
	actor := &fakeActor{
		t:         t,
		runStatus: "SUCCEEDED",
		items: []map[string]any{
			{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "title": "A Video", "viewCount": 1234},
			{"url": "https://www.youtube.com/watch?v=jNQXAC9IVRw", "title": "Another", "viewCount": "5.6K"},
		},
	}
	srv := httptest.NewServer(actor.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL), testLogger())

	items, info, err := client.FetchSourceListing(context.Background(), "https://www.youtube.com/@test", 50)

	require.NoError(t, err)
	assert.Equal(t, "run-1", info.RunID)
	assert.Equal(t, "ds-1", info.DatasetID)
	require.Len(t, items, 2)
	assert.Equal(t, "A Video", items[0].Title)
	// Numeric and string counts both decode.
	assert.Equal(t, "1234", items[0].ViewCount.String())
	assert.Equal(t, "5.6K", items[1].ViewCount.String())
}

func TestFetchSourceListing_RetriesTransientThenSucceeds(t *testing.T) {
	actor := &fakeActor{
		t:           t,
		runStatus:   "SUCCEEDED",
		failSubmits: 2,
		items:       []map[string]any{{"url": "https://www.youtube.com/watch?v=dQw4w9WgXcQ"}},
	}
	srv := httptest.NewServer(actor.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL), testLogger())

	items, _, err := client.FetchSourceListing(context.Background(), "https://www.youtube.com/@test", 10)

	require.NoError(t, err)
	assert.Len(t, items, 1)
	assert.Equal(t, int32(3), actor.submits)
}

func TestFetchSourceListing_ExhaustsRetryBudget(t *testing.T) {
	actor := &fakeActor{
		t:           t,
		runStatus:   "SUCCEEDED",
		failSubmits: 100,
	}
	srv := httptest.NewServer(actor.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL), testLogger())

	_, _, err := client.FetchSourceListing(context.Background(), "https://www.youtube.com/@test", 10)

	require.Error(t, err)
	assert.Equal(t, int32(3), actor.submits)
	assert.True(t, IsTransient(err))
}

func TestFetchSourceListing_FailedRunIsTransient(t *testing.T) {
	actor := &fakeActor{t: t, runStatus: "FAILED"}
	srv := httptest.NewServer(actor.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL), testLogger())

	_, _, err := client.FetchSourceListing(context.Background(), "https://www.youtube.com/@test", 10)

	require.Error(t, err)
	assert.True(t, IsTransient(err))
	// One poll per attempt: the failed final state is retried.
	assert.Equal(t, int32(3), actor.polls)
}

func TestFetchTranscript_Success(t *testing.T) {
	actor := &fakeActor{
		t:         t,
		runStatus: "SUCCEEDED",
		items: []map[string]any{
			{
				"transcript": []map[string]any{
					{"start": "0", "dur": "2.5", "text": "hello"},
					{"start": 2.5, "dur": 1.5, "text": "world"},
				},
				"language": "en",
			},
		},
	}
	srv := httptest.NewServer(actor.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL), testLogger())

	transcript, info, err := client.FetchTranscript(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.NoError(t, err)
	assert.Equal(t, "run-1", info.RunID)
	require.Len(t, transcript.SegmentList(), 2)
	assert.Equal(t, "en", transcript.LanguageHint())
	assert.Equal(t, "2.5", transcript.SegmentList()[1].Start.String())
}

func TestFetchTranscript_EmptyResultsUnavailable(t *testing.T) {
	actor := &fakeActor{t: t, runStatus: "SUCCEEDED", items: []map[string]any{}}
	srv := httptest.NewServer(actor.handler())
	defer srv.Close()

	client := New(testConfig(srv.URL), testLogger())

	_, _, err := client.FetchTranscript(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.ErrorIs(t, err, ErrTranscriptUnavailable)
	// Terminal outcome: no retry.
	assert.Equal(t, int32(1), actor.submits)
}

func TestDoJSON_NotFoundIsPermanent(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := New(testConfig(srv.URL), testLogger())

	_, _, err := client.FetchTranscript(context.Background(), "https://www.youtube.com/watch?v=dQw4w9WgXcQ")

	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, int32(1), calls)
}

func TestFlexString_Decode(t *testing.T) {
	var v struct {
		Count FlexString `json:"count"`
	}

	for in, want := range map[string]string{
		`{"count": "1.2M"}`: "1.2M",
		`{"count": 42}`:     "42",
		`{"count": 3.14}`:   "3.14",
		`{"count": null}`:   "",
	} {
		require.NoError(t, json.Unmarshal([]byte(in), &v), in)
		assert.Equal(t, want, v.Count.String(), in)
	}
}

func TestRun_Finished(t *testing.T) {
	for status, want := range map[string]bool{
		"SUCCEEDED": true,
		"FAILED":    true,
		"ABORTED":   true,
		"TIMED-OUT": true,
		"READY":     false,
		"RUNNING":   false,
	} {
		assert.Equal(t, want, run{Status: status}.finished(), status)
	}
}
