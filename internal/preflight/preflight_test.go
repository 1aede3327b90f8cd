package preflight

import (
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"marquee/internal/testsupport"
	"marquee/internal/tmdb"
)

func TestCheckDirectoryAccess_OK(t *testing.T) {
	dir := t.TempDir()
	result := CheckDirectoryAccess("test", dir)
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckDirectoryAccess_NotExist(t *testing.T) {
	result := CheckDirectoryAccess("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if result.Detail == "" {
		t.Fatal("expected non-empty detail")
	}
}

func TestCheckDirectoryAccess_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckDirectoryAccess("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func newClient(t *testing.T, server *testsupport.TMDBServer) *tmdb.Client {
	t.Helper()
	client, err := tmdb.New("test", server.BaseURL(), "fr-FR")
	if err != nil {
		t.Fatalf("tmdb.New: %v", err)
	}
	return client
}

func TestCheckTMDB_OK(t *testing.T) {
	server := testsupport.NewTMDBServer(t)
	server.SeedNowPlaying("Premier Film", "Second Film")

	result := CheckTMDB(context.Background(), newClient(t, server), "fr-FR")
	if !result.Passed {
		t.Fatalf("expected pass, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "2 movies") {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestCheckTMDB_BadKey(t *testing.T) {
	server := testsupport.NewTMDBServer(t)
	server.Fail("/movie/now_playing", http.StatusUnauthorized)

	result := CheckTMDB(context.Background(), newClient(t, server), "fr-FR")
	if result.Passed {
		t.Fatal("expected failure for bad key")
	}
	if result.Detail != "auth failed (invalid api key)" {
		t.Fatalf("unexpected detail %q", result.Detail)
	}
}

func TestRunAll(t *testing.T) {
	server := testsupport.NewTMDBServer(t)
	server.SeedNowPlaying("Premier Film")
	cfg := testsupport.NewConfig(t, testsupport.WithTMDBServer(server))
	if err := cfg.EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories: %v", err)
	}

	results := RunAll(context.Background(), cfg, newClient(t, server))
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}
	if failed := Failed(results); len(failed) != 0 {
		t.Fatalf("expected all checks to pass, got %+v", failed)
	}

	if err := os.RemoveAll(cfg.Paths.RuntimeDir); err != nil {
		t.Fatal(err)
	}
	results = RunAll(context.Background(), cfg, nil)
	if len(results) != 2 {
		t.Fatalf("expected TMDB check to be skipped, got %d results", len(results))
	}
	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "Runtime directory" {
		t.Fatalf("expected runtime directory failure, got %+v", failed)
	}
}

func TestRunAllNilConfig(t *testing.T) {
	if results := RunAll(context.Background(), nil, nil); results != nil {
		t.Fatalf("expected nil results, got %+v", results)
	}
}
