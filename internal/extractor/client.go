// Package extractor wraps the remote extraction service: it submits actor
// runs, waits for completion and fetches result datasets. Transient remote
// failures are retried with exponential backoff; terminal conditions are
// surfaced as typed errors.
package extractor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/cenkalti/backoff/v4"

	"youtube_ingest/internal/config"
)

type Client struct {
	httpClient *http.Client
	cfg        config.ExtractorConfig
	logger     *slog.Logger
}

func New(cfg config.ExtractorConfig, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: cfg.RequestTimeout,
		},
		cfg:    cfg,
		logger: logger.With("component", "extractor"),
	}
}

// FetchSourceListing runs the listing actor for a channel or playlist URL
// and returns the raw video items. The whole submit/await/fetch cycle is
// retried on transient failure up to the configured attempt budget.
func (c *Client) FetchSourceListing(ctx context.Context, sourceURL string, maxResults int) ([]RawVideo, RunInfo, error) {
	if maxResults <= 0 {
		maxResults = c.cfg.MaxResults
	}

	input := map[string]any{
		"startUrls":                []map[string]string{{"url": sourceURL}},
		"maxResults":               maxResults,
		"handleRequestTimeoutSecs": int(c.cfg.RequestTimeout.Seconds()),
	}
	if c.cfg.UseProxy {
		input["proxyConfiguration"] = map[string]any{
			"useApifyProxy":    true,
			"apifyProxyGroups": []string{c.cfg.ProxyGroup},
		}
	}

	var items []RawVideo
	var info RunInfo

	err := c.retry(ctx, "listing", func() error {
		r, err := c.executeRun(ctx, c.cfg.ListingActor, input)
		if err != nil {
			return err
		}
		info = RunInfo{RunID: r.ID, DatasetID: r.DefaultDatasetID}
		items = items[:0]
		return c.fetchItems(ctx, r.DefaultDatasetID, &items)
	})
	if err != nil {
		return nil, info, fmt.Errorf("fetch source listing %s: %w", sourceURL, err)
	}

	c.logger.Info("listing run completed",
		"source_url", sourceURL,
		"run_id", info.RunID,
		"items", len(items),
	)
	return items, info, nil
}

// FetchTranscript runs the transcript actor for a single video URL.
// An empty result set means the video has no transcript; that is terminal
// and reported as ErrTranscriptUnavailable.
func (c *Client) FetchTranscript(ctx context.Context, videoURL string) (*RawTranscript, RunInfo, error) {
	input := map[string]any{"videoUrl": videoURL}

	var transcript *RawTranscript
	var info RunInfo

	err := c.retry(ctx, "transcript", func() error {
		r, err := c.executeRun(ctx, c.cfg.TranscriptActor, input)
		if err != nil {
			return err
		}
		info = RunInfo{RunID: r.ID, DatasetID: r.DefaultDatasetID}

		var results []RawTranscript
		if err := c.fetchItems(ctx, r.DefaultDatasetID, &results); err != nil {
			return err
		}
		if len(results) == 0 || len(results[0].SegmentList()) == 0 {
			return ErrTranscriptUnavailable
		}
		transcript = &results[0]
		return nil
	})
	if err != nil {
		return nil, info, err
	}

	return transcript, info, nil
}

// executeRun submits an actor run and polls until it reaches a final state.
// Non-success final states are transient: the remote scraper fails runs for
// throttling and capacity reasons that clear up on retry.
func (c *Client) executeRun(ctx context.Context, actorID string, input any) (run, error) {
	var started runResponse
	if err := c.doJSON(ctx, http.MethodPost, fmt.Sprintf("/acts/%s/runs", actorID), input, &started); err != nil {
		return run{}, err
	}

	runID := started.Data.ID
	c.logger.Debug("started actor run", "actor", actorID, "run_id", runID)

	for {
		var current runResponse
		if err := c.doJSON(ctx, http.MethodGet, fmt.Sprintf("/actor-runs/%s", runID), nil, &current); err != nil {
			return run{}, err
		}

		if current.Data.finished() {
			if current.Data.Status != runSucceeded {
				return run{}, transient("actor run", fmt.Errorf("run %s finished with status %s", runID, current.Data.Status))
			}
			return current.Data, nil
		}

		select {
		case <-ctx.Done():
			return run{}, ctx.Err()
		case <-time.After(c.cfg.PollInterval):
		}
	}
}

func (c *Client) fetchItems(ctx context.Context, datasetID string, out any) error {
	path := fmt.Sprintf("/datasets/%s/items?format=json&limit=10000", datasetID)
	return c.doJSON(ctx, http.MethodGet, path, nil, out)
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out any) error {
	u := c.cfg.BaseURL + path
	if parsed, err := url.Parse(u); err == nil {
		q := parsed.Query()
		q.Set("token", c.cfg.Token)
		parsed.RawQuery = q.Encode()
		u = parsed.String()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return transient(method+" "+path, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusOK || resp.StatusCode == http.StatusCreated:
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("%s %s: %w", method, path, ErrNotFound)
	case resp.StatusCode == http.StatusTooManyRequests || resp.StatusCode >= 500:
		return transient(method+" "+path, fmt.Errorf("unexpected status: %d", resp.StatusCode))
	default:
		return fmt.Errorf("%s %s: unexpected status: %d", method, path, resp.StatusCode)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

// retry runs fn with exponential backoff and jitter. Anything fn does not
// mark transient stops the retry loop immediately.
func (c *Client) retry(ctx context.Context, op string, fn func() error) error {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = c.cfg.Retry.InitialBackoff
	b.MaxInterval = c.cfg.Retry.MaxBackoff
	b.MaxElapsedTime = 0

	retries := c.cfg.Retry.MaxAttempts - 1
	if retries < 0 {
		retries = 0
	}
	policy := backoff.WithContext(backoff.WithMaxRetries(b, uint64(retries)), ctx)

	return backoff.RetryNotify(
		func() error {
			err := fn()
			if err != nil && !IsTransient(err) {
				return backoff.Permanent(err)
			}
			return err
		},
		policy,
		func(err error, wait time.Duration) {
			c.logger.Warn("extraction call failed, retrying",
				"op", op,
				"backoff", wait,
				"error", err,
			)
		},
	)
}
