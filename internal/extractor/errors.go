package extractor

import (
	"errors"
	"fmt"
)

var (
	// ErrTranscriptUnavailable is terminal for a video: no transcript exists
	// or transcripts are disabled. Not retried unless explicitly forced.
	ErrTranscriptUnavailable = errors.New("transcript unavailable")

	// ErrNotFound is terminal: the remote item does not exist.
	ErrNotFound = errors.New("remote item not found")
)

// TransientError marks a remote failure worth retrying: timeouts,
// rate limits, 5xx responses and non-terminal run states.
type TransientError struct {
	Op  string
	Err error
}

func (e *TransientError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *TransientError) Unwrap() error { return e.Err }

// IsTransient reports whether err is retryable.
func IsTransient(err error) bool {
	var te *TransientError
	return errors.As(err, &te)
}

func transient(op string, err error) error {
	return &TransientError{Op: op, Err: err}
}
