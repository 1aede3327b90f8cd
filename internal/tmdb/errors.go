package tmdb

import (
	"errors"
	"fmt"
	"time"
)

// ErrFetch is matched by every error returned from an upstream call.
var ErrFetch = errors.New("tmdb fetch failed")

// ErrInvalidMovieID is returned before any request when a movie id is not positive.
var ErrInvalidMovieID = errors.New("movie id must be positive")

// FetchError describes a failed upstream call: a transport error, a non-2xx
// status, or an undecodable body.
type FetchError struct {
	Endpoint   string
	StatusCode int
	Latency    time.Duration
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("tmdb %s returned %d (latency=%v): %v", e.Endpoint, e.StatusCode, e.Latency, e.Err)
	}
	return fmt.Sprintf("tmdb %s (latency=%v): %v", e.Endpoint, e.Latency, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is reports FetchError as an ErrFetch so callers can use errors.Is.
func (e *FetchError) Is(target error) bool { return target == ErrFetch }
