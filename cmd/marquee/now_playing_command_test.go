package main

import (
	"encoding/json"
	"net/http"
	"testing"
)

func TestNowPlayingRendersTable(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.SeedNowPlaying("Premier Film", "Second Film")

	out, _, err := runCLI(t, []string{"now-playing"}, env.configPath)
	if err != nil {
		t.Fatalf("now-playing: %v", err)
	}
	requireContains(t, out, "TITLE")
	requireContains(t, out, "Premier Film")
	requireContains(t, out, "Second Film")
	requireContains(t, out, "7.5")

	reqs := env.upstream.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected one upstream call, got %d", len(reqs))
	}
	if got := reqs[0].Query.Get("language"); got != "fr-FR" {
		t.Fatalf("expected default language fr-FR, got %q", got)
	}
}

func TestNowPlayingJSONAndLanguage(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.SeedNowPlaying("Premier Film")

	out, _, err := runCLI(t, []string{"now-playing", "--json", "--lang", "en-US"}, env.configPath)
	if err != nil {
		t.Fatalf("now-playing --json: %v", err)
	}
	var rows []nowPlayingRow
	if err := json.Unmarshal([]byte(out), &rows); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(rows) != 1 || rows[0].ID != 1 || rows[0].Title != "Premier Film" {
		t.Fatalf("unexpected rows: %+v", rows)
	}
	if rows[0].PosterURL != "https://image.tmdb.org/t/p/original/poster-1.jpg" {
		t.Fatalf("unexpected poster url %q", rows[0].PosterURL)
	}
	if got := env.upstream.Requests()[0].Query.Get("language"); got != "en-US" {
		t.Fatalf("expected en-US, got %q", got)
	}
}

func TestNowPlayingEmptyAndFailure(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.JSON("/movie/now_playing", `{"page":1,"results":[]}`)

	out, _, err := runCLI(t, []string{"now-playing"}, env.configPath)
	if err != nil {
		t.Fatalf("now-playing: %v", err)
	}
	requireContains(t, out, "No movies now playing")

	env.upstream.Fail("/movie/now_playing", http.StatusUnauthorized)
	if _, _, err := runCLI(t, []string{"now-playing"}, env.configPath); err == nil {
		t.Fatal("expected upstream failure to surface")
	}
}
