package preflight

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"time"

	"golang.org/x/sys/unix"

	"marquee/internal/tmdb"
)

const tmdbCheckTimeout = 10 * time.Second

// Prober is the TMDB call used to verify reachability and the API key.
type Prober interface {
	NowPlaying(ctx context.Context, language string) (*tmdb.NowPlayingResponse, error)
}

var _ Prober = (*tmdb.Client)(nil)

// CheckTMDB verifies that the TMDB API is reachable and the key is accepted.
// It makes a single now playing request with a bounded timeout.
func CheckTMDB(ctx context.Context, prober Prober, language string) Result {
	const name = "TMDB API"

	checkCtx, cancel := context.WithTimeout(ctx, tmdbCheckTimeout)
	defer cancel()

	resp, err := prober.NowPlaying(checkCtx, language)
	if err != nil {
		return Result{Name: name, Detail: summarizeTMDBError(err)}
	}
	count := 0
	if resp != nil {
		count = len(resp.Results)
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("Reachable (%d movies now playing)", count)}
}

// CheckDirectoryAccess verifies that the directory exists and is readable/writable.
func CheckDirectoryAccess(name, path string) Result {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Result{Name: name, Detail: fmt.Sprintf("%s (error: does not exist)", path)}
		}
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: stat: %v)", path, err)}
	}
	if !info.IsDir() {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: is not a directory)", path)}
	}
	if err := unix.Access(path, unix.R_OK|unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: insufficient permissions: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read/write ok)", path)}
}

func summarizeTMDBError(err error) string {
	var fetchErr *tmdb.FetchError
	if errors.As(err, &fetchErr) {
		switch fetchErr.StatusCode {
		case http.StatusUnauthorized, http.StatusForbidden:
			return "auth failed (invalid api key)"
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "check timed out (TMDB API unresponsive)"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "check timed out (TMDB API unreachable)"
	}
	return err.Error()
}
