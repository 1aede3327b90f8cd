// Package tmdb provides the minimal TMDB API client behind the marquee web
// front-end.
//
// It authenticates requests with a static API key and exposes the four movie
// endpoints the pages need: now playing, movie details, videos, and credits.
// Every request carries the api_key and language query parameters and runs
// under its own timeout. Any transport, status, or decoding failure is reported
// as a *FetchError matching ErrFetch, so callers deal with a single error kind.
// Options allow tests to supply custom HTTP clients without modifying
// production code.
package tmdb
