package main

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"marquee/internal/movies"
	"marquee/internal/testsupport"
	"marquee/internal/tmdb"
)

func TestShowPrintsDetail(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.SeedMovie(550, "Fight Club")

	out, _, err := runCLI(t, []string{"show", "550"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Fight Club (1999)")
	requireContains(t, out, "Directed by: Director Person")
	requireContains(t, out, "Trailer: yes")
	requireContains(t, out, "https://www.youtube.com/watch?v=trailer-key")
	requireContains(t, out, "Actor Four")
	requireNotContains(t, out, "Actor Five")
	requireNotContains(t, out, "Partial data")
}

func TestShowJSON(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.SeedMovie(550, "Fight Club")

	out, _, err := runCLI(t, []string{"show", "550", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("show --json: %v", err)
	}
	var view movieView
	if err := json.Unmarshal([]byte(out), &view); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if view.ID != 550 || view.Title != "Fight Club" {
		t.Fatalf("unexpected movie: %+v", view)
	}
	if view.Trailer == nil || view.Trailer.Key != "trailer-key" {
		t.Fatalf("expected trailer-key trailer, got %+v", view.Trailer)
	}
	if len(view.Casting.MainCast) != movies.DefaultMainCastSize {
		t.Fatalf("expected %d cast members, got %d", movies.DefaultMainCastSize, len(view.Casting.MainCast))
	}
	if len(view.Casting.Directors) != 1 {
		t.Fatalf("expected one director, got %+v", view.Casting.Directors)
	}
}

func TestShowReportsDegradedEnrichment(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.SeedMovie(550, "Fight Club")
	env.upstream.Fail("/movie/550/videos", http.StatusInternalServerError)

	out, _, err := runCLI(t, []string{"show", "550"}, env.configPath)
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Trailer: no")
	requireContains(t, out, "Partial data: video unavailable")
}

func TestShowRequiredEnrichmentFails(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithRequiredEnrichment())
	env.upstream.SeedMovie(550, "Fight Club")
	env.upstream.Fail("/movie/550/credits", http.StatusInternalServerError)

	_, _, err := runCLI(t, []string{"show", "550"}, env.configPath)
	if !errors.Is(err, tmdb.ErrFetch) {
		t.Fatalf("expected fetch failure, got %v", err)
	}
}

func TestShowRejectsInvalidID(t *testing.T) {
	env := setupCLITestEnv(t)

	for _, arg := range []string{"abc", "0", "-3"} {
		if _, _, err := runCLI(t, []string{"show", "--", arg}, env.configPath); err == nil {
			t.Fatalf("expected error for id %q", arg)
		}
	}
	if len(env.upstream.Requests()) != 0 {
		t.Fatal("expected no upstream calls for invalid ids")
	}
}

func TestShowUnknownMovie(t *testing.T) {
	env := setupCLITestEnv(t)

	_, _, err := runCLI(t, []string{"show", "404"}, env.configPath)
	if !movies.IsFetchFailure(err) {
		t.Fatalf("expected fetch failure, got %v", err)
	}
}
