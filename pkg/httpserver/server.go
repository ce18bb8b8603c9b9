package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/devicekit/pkg/logger"
)

type options struct {
	addr              string
	readHeaderTimeout time.Duration
	shutdownTimeout   time.Duration
	log               *slog.Logger
}

// Server wraps http.Server with graceful shutdown and logging.
type Server struct {
	opts *options

	mu       sync.Mutex
	srv      *http.Server
	shutdown bool
}

// New returns a configured Server.
func New(opts ...Option) *Server {
	o := &options{
		addr:              ":8080",
		readHeaderTimeout: 10 * time.Second,
		shutdownTimeout:   5 * time.Second,
		log:               logger.Discard(),
	}
	for _, opt := range opts {
		opt(o)
	}
	return &Server{opts: o}
}

// Run starts the HTTP server and blocks until shutdown.
// It returns ErrStart wrapped with the underlying error if the server fails to start.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.srv != nil {
		s.mu.Unlock()
		return errors.Join(ErrStart, errors.New("server already running"))
	}
	srv := &http.Server{
		Addr:              s.opts.addr,
		Handler:           handler,
		ReadHeaderTimeout: s.opts.readHeaderTimeout,
	}
	s.srv = srv
	s.mu.Unlock()

	s.opts.log.Info("http server starting", slog.String("addr", s.opts.addr))

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	var runErr error
	select {
	case <-ctx.Done():
		runErr = s.shutdownAndWait(srv, errCh)
	case <-stop:
		runErr = s.shutdownAndWait(srv, errCh)
	case runErr = <-errCh:
	}

	if runErr != nil && !errors.Is(runErr, http.ErrServerClosed) {
		return errors.Join(ErrStart, runErr)
	}
	return nil
}

func (s *Server) shutdownAndWait(srv *http.Server, errCh <-chan error) error {
	if err := s.stop(context.Background(), srv); err != nil {
		s.opts.log.Error("http server shutdown failed", logger.Error(err))
	}
	return <-errCh
}

// Shutdown stops a running server gracefully. Before Run it does nothing,
// so a later Run still stops on its context. It is safe for repeated calls.
// Any error from http.Server.Shutdown is wrapped with ErrShutdown.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	srv := s.srv
	s.mu.Unlock()
	if srv == nil {
		return nil
	}
	return s.stop(ctx, srv)
}

// stop shuts srv down once; later calls return nil.
func (s *Server) stop(ctx context.Context, srv *http.Server) error {
	s.mu.Lock()
	if s.shutdown {
		s.mu.Unlock()
		return nil
	}
	s.shutdown = true
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(ctx, s.opts.shutdownTimeout)
	defer cancel()
	err := srv.Shutdown(ctx)
	s.opts.log.Info("http server stopped", slog.String("addr", s.opts.addr))

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}
