package main

import (
	"encoding/json"
	"net/http"
	"testing"

	"marquee/internal/preflight"
)

func TestCheckPassesWithReachableTMDB(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.SeedNowPlaying("Premier Film")

	out, _, err := runCLI(t, []string{"check"}, env.configPath)
	if err != nil {
		t.Fatalf("check: %v\n%s", err, out)
	}
	requireContains(t, out, "TMDB API")
	requireContains(t, out, "Log directory")
	requireNotContains(t, out, "FAIL")
}

func TestCheckReportsBadKey(t *testing.T) {
	env := setupCLITestEnv(t)
	env.upstream.Fail("/movie/now_playing", http.StatusUnauthorized)

	out, _, err := runCLI(t, []string{"check", "--json"}, env.configPath)
	if err == nil {
		t.Fatal("expected check to fail")
	}
	var results []preflight.Result
	if err := json.Unmarshal([]byte(out), &results); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	failed := preflight.Failed(results)
	if len(failed) != 1 || failed[0].Name != "TMDB API" {
		t.Fatalf("expected only the TMDB check to fail, got %+v", failed)
	}
}
