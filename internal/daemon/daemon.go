package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/gofrs/flock"

	"marquee/internal/config"
	"marquee/internal/logging"
)

// ErrAlreadyRunning reports that another marqueed instance holds the lock.
var ErrAlreadyRunning = errors.New("another marquee daemon instance is already running")

// Daemon serves the web front-end and enforces single-instance execution.
type Daemon struct {
	cfg    *config.Config
	logger *slog.Logger

	lockPath string
	lock     *flock.Flock
	server   *httpServer

	mu      sync.Mutex
	running atomic.Bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// Status represents daemon runtime information.
type Status struct {
	Running      bool   `json:"running"`
	PID          int    `json:"pid"`
	Address      string `json:"address,omitempty"`
	LockFilePath string `json:"lock_file_path"`
}

// New constructs a daemon serving handler on cfg.Server.Bind.
func New(cfg *config.Config, handler http.Handler, logger *slog.Logger) (*Daemon, error) {
	if cfg == nil || handler == nil {
		return nil, errors.New("daemon requires config and handler")
	}
	if strings.TrimSpace(cfg.Server.Bind) == "" {
		return nil, errors.New("daemon requires server.bind")
	}
	logger = logging.NewComponentLogger(logger, "daemon")

	lockPath := cfg.LockPath()
	return &Daemon{
		cfg:      cfg,
		logger:   logger,
		lockPath: lockPath,
		lock:     flock.New(lockPath),
		server:   newHTTPServer(cfg.Server.Bind, handler, logger),
	}, nil
}

// Start acquires the daemon lock and begins serving. The server shuts down
// when ctx is cancelled or Stop is called.
func (d *Daemon) Start(ctx context.Context) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.running.Load() {
		return errors.New("daemon already running")
	}

	if err := os.MkdirAll(filepath.Dir(d.lockPath), 0o755); err != nil {
		return fmt.Errorf("create runtime dir: %w", err)
	}
	ok, err := d.lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	if !ok {
		return ErrAlreadyRunning
	}

	if err := d.server.listen(); err != nil {
		_ = d.lock.Unlock()
		return err
	}

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel
	d.done = make(chan struct{})
	d.running.Store(true)
	go d.server.serve(d.server.server, d.server.listener)
	go d.watch(runCtx, d.done)

	d.logger.Info("marquee daemon started",
		logging.String("address", d.server.address()),
		logging.String("lock", d.lockPath),
	)
	return nil
}

// watch stops the daemon once its run context ends.
func (d *Daemon) watch(ctx context.Context, done <-chan struct{}) {
	select {
	case <-ctx.Done():
		d.Stop()
	case <-done:
	}
}

// Stop shuts down the HTTP server and releases the daemon lock.
func (d *Daemon) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if !d.running.Load() {
		return
	}

	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	if d.done != nil {
		close(d.done)
		d.done = nil
	}
	d.server.shutdown()
	if err := d.lock.Unlock(); err != nil {
		d.logger.Warn("failed to release daemon lock", logging.Error(err))
	}
	d.running.Store(false)
	d.logger.Info("marquee daemon stopped")
}

// Close releases resources held by the daemon.
func (d *Daemon) Close() error {
	d.Stop()
	return d.lock.Close()
}

// Wait blocks until the daemon stops.
func (d *Daemon) Wait(ctx context.Context) {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done == nil {
		return
	}
	select {
	case <-ctx.Done():
	case <-done:
	}
}

// Status returns the current daemon state.
func (d *Daemon) Status() Status {
	d.mu.Lock()
	defer d.mu.Unlock()
	status := Status{
		Running:      d.running.Load(),
		PID:          os.Getpid(),
		LockFilePath: d.lockPath,
	}
	if status.Running {
		status.Address = d.server.address()
	}
	return status
}
