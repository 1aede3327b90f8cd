package daemon

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"marquee/internal/logging"
)

const shutdownTimeout = 5 * time.Second

// httpServer wraps one listen/serve/shutdown cycle. Callers serialize access.
type httpServer struct {
	bind    string
	handler http.Handler
	logger  *slog.Logger

	listener net.Listener
	server   *http.Server
}

func newHTTPServer(bind string, handler http.Handler, logger *slog.Logger) *httpServer {
	return &httpServer{
		bind:    strings.TrimSpace(bind),
		handler: handler,
		logger:  logger,
	}
}

// listen binds the address and prepares a fresh http.Server, since a server
// cannot be reused after Shutdown.
func (s *httpServer) listen() error {
	listener, err := net.Listen("tcp", s.bind)
	if err != nil {
		return fmt.Errorf("http listen: %w", err)
	}
	s.listener = listener
	s.server = &http.Server{
		Handler:           s.handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		ErrorLog:          slog.NewLogLogger(s.logger.Handler(), slog.LevelWarn),
	}
	return nil
}

// serve blocks until srv is shut down.
func (s *httpServer) serve(srv *http.Server, listener net.Listener) {
	s.logger.Info("http server listening", logging.String("address", listener.Addr().String()))
	if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("http server error", logging.Error(err))
	}
}

func (s *httpServer) shutdown() {
	if s.server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.server.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("http server shutdown", logging.Error(err))
		}
	}
	if s.listener != nil {
		_ = s.listener.Close()
		s.listener = nil
	}
	s.server = nil
}

func (s *httpServer) address() string {
	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}
