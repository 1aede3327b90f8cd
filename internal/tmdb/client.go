package tmdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const defaultTimeout = 10 * time.Second

// Client provides access to the TMDB movie endpoints.
type Client struct {
	apiKey     string
	baseURL    string
	language   string
	timeout    time.Duration
	httpClient *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithTimeout sets the deadline applied to each individual request.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// New creates a TMDB client. language is used for calls that do not supply one.
func New(apiKey, baseURL, language string, opts ...Option) (*Client, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("tmdb api key required")
	}
	baseURL = strings.TrimSpace(baseURL)
	if baseURL == "" {
		return nil, errors.New("tmdb base url required")
	}
	client := &Client{
		apiKey:     apiKey,
		baseURL:    strings.TrimRight(baseURL, "/"),
		language:   strings.TrimSpace(language),
		timeout:    defaultTimeout,
		httpClient: &http.Client{},
	}
	for _, opt := range opts {
		opt(client)
	}
	return client, nil
}

// NowPlaying fetches the movies currently in theatres.
func (c *Client) NowPlaying(ctx context.Context, language string) (*NowPlayingResponse, error) {
	var payload NowPlayingResponse
	if err := c.get(ctx, "/movie/now_playing", language, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieDetails fetches the full record for a movie.
func (c *Client) MovieDetails(ctx context.Context, movieID int64, language string) (*MovieDetails, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	var payload MovieDetails
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), language, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieVideos fetches trailers, teasers, and clips for a movie.
func (c *Client) MovieVideos(ctx context.Context, movieID int64, language string) (*VideosResponse, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	var payload VideosResponse
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), language, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// MovieCredits fetches the cast and crew for a movie.
func (c *Client) MovieCredits(ctx context.Context, movieID int64, language string) (*Credits, error) {
	if movieID <= 0 {
		return nil, ErrInvalidMovieID
	}
	var payload Credits
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/credits", movieID), language, &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

func (c *Client) get(ctx context.Context, path, language string, out any) error {
	endpoint, err := url.Parse(c.baseURL + path)
	if err != nil {
		return &FetchError{Endpoint: path, Err: fmt.Errorf("parse tmdb url: %w", err)}
	}
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if language = strings.TrimSpace(language); language == "" {
		language = c.language
	}
	if language != "" {
		params.Set("language", language)
	}
	endpoint.RawQuery = params.Encode()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return &FetchError{Endpoint: path, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	requestStart := time.Now()
	resp, err := c.httpClient.Do(req)
	latency := time.Since(requestStart)
	if err != nil {
		return &FetchError{Endpoint: path, Latency: latency, Err: fmt.Errorf("execute request: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &FetchError{
			Endpoint:   path,
			StatusCode: resp.StatusCode,
			Latency:    latency,
			Err:        statusError(resp.Body),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &FetchError{Endpoint: path, StatusCode: resp.StatusCode, Latency: latency, Err: fmt.Errorf("decode tmdb response: %w", err)}
	}
	return nil
}

// statusError extracts TMDB's status_message from an error body when present.
func statusError(body io.Reader) error {
	data, _ := io.ReadAll(io.LimitReader(body, 4096))
	var payload struct {
		StatusCode    int    `json:"status_code"`
		StatusMessage string `json:"status_message"`
	}
	if err := json.Unmarshal(data, &payload); err == nil && payload.StatusMessage != "" {
		return errors.New(payload.StatusMessage)
	}
	return errors.New("unexpected status")
}
