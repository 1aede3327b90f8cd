package testsupport

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
)

// RecordedRequest captures an upstream call seen by TMDBServer.
type RecordedRequest struct {
	Path  string
	Query url.Values
}

type cannedResponse struct {
	status int
	body   []byte
}

// TMDBServer is an httptest-backed stand-in for the TMDB API. Paths are
// registered relative to the /3 API root, e.g. "/movie/now_playing".
type TMDBServer struct {
	server *httptest.Server

	mu        sync.Mutex
	responses map[string]cannedResponse
	requests  []RecordedRequest
}

// NewTMDBServer starts a fake TMDB server that is closed on test cleanup.
// Unregistered paths answer 404 with a TMDB-style error body.
func NewTMDBServer(t testing.TB) *TMDBServer {
	t.Helper()
	s := &TMDBServer{responses: make(map[string]cannedResponse)}
	s.server = httptest.NewServer(http.HandlerFunc(s.serve))
	t.Cleanup(s.server.Close)
	return s
}

// BaseURL returns the API root to configure clients with.
func (s *TMDBServer) BaseURL() string {
	return s.server.URL + "/3"
}

// JSON registers a 200 response whose body is payload marshalled as JSON.
// Strings and byte slices are sent verbatim.
func (s *TMDBServer) JSON(path string, payload any) {
	s.Respond(path, http.StatusOK, payload)
}

// Respond registers a response with an explicit status code.
func (s *TMDBServer) Respond(path string, status int, payload any) {
	var body []byte
	switch v := payload.(type) {
	case string:
		body = []byte(v)
	case []byte:
		body = v
	default:
		data, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("marshal fixture for %s: %v", path, err))
		}
		body = data
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.responses[path] = cannedResponse{status: status, body: body}
}

// Fail registers a TMDB error response for path.
func (s *TMDBServer) Fail(path string, status int) {
	s.Respond(path, status, fmt.Sprintf(`{"status_code":%d,"status_message":"fixture failure"}`, status))
}

// Requests returns a copy of the recorded calls in arrival order.
func (s *TMDBServer) Requests() []RecordedRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]RecordedRequest, len(s.requests))
	copy(out, s.requests)
	return out
}

func (s *TMDBServer) serve(w http.ResponseWriter, r *http.Request) {
	path := strings.TrimPrefix(r.URL.Path, "/3")

	s.mu.Lock()
	s.requests = append(s.requests, RecordedRequest{Path: path, Query: r.URL.Query()})
	resp, ok := s.responses[path]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status_code":34,"status_message":"The resource you requested could not be found."}`))
		return
	}
	w.WriteHeader(resp.status)
	_, _ = w.Write(resp.body)
}

// SeedMovie registers detail, videos, and credits fixtures for a movie with a
// YouTube trailer, five cast members, and one director.
func (s *TMDBServer) SeedMovie(id int64, title string) {
	s.JSON(fmt.Sprintf("/movie/%d", id), map[string]any{
		"id":           id,
		"title":        title,
		"overview":     title + " overview",
		"poster_path":  "/poster.jpg",
		"release_date": "1999-10-15",
		"vote_average": 8.4,
		"runtime":      139,
		"genres":       []map[string]any{{"id": 18, "name": "Drame"}},
	})
	s.JSON(fmt.Sprintf("/movie/%d/videos", id), map[string]any{
		"id": id,
		"results": []map[string]any{
			{"key": "teaser", "site": "YouTube", "type": "Teaser", "name": "Teaser"},
			{"key": "trailer-key", "site": "YouTube", "type": "Trailer", "name": "Bande-annonce"},
		},
	})
	s.JSON(fmt.Sprintf("/movie/%d/credits", id), map[string]any{
		"id": id,
		"cast": []map[string]any{
			{"id": 1, "name": "Actor One", "character": "Lead"},
			{"id": 2, "name": "Actor Two", "character": "Second"},
			{"id": 3, "name": "Actor Three", "character": "Third"},
			{"id": 4, "name": "Actor Four", "character": "Fourth"},
			{"id": 5, "name": "Actor Five", "character": "Fifth"},
		},
		"crew": []map[string]any{
			{"id": 10, "name": "Writer Person", "job": "Screenplay"},
			{"id": 11, "name": "Director Person", "job": "Director"},
		},
	})
}

// SeedNowPlaying registers a now playing response with the given titles,
// numbered from id 1.
func (s *TMDBServer) SeedNowPlaying(titles ...string) {
	results := make([]map[string]any, 0, len(titles))
	for i, title := range titles {
		results = append(results, map[string]any{
			"id":           i + 1,
			"title":        title,
			"poster_path":  fmt.Sprintf("/poster-%d.jpg", i+1),
			"release_date": "2026-10-01",
			"vote_average": 7.5,
		})
	}
	s.JSON("/movie/now_playing", map[string]any{"page": 1, "results": results})
}
