package httpserver

import (
	"log/slog"
	"time"
)

// Option configures the HTTP server.
type Option func(*options)

// WithAddr sets the address the server listens on.
func WithAddr(addr string) Option {
	if addr == "" {
		panic("WithAddr: addr cannot be empty")
	}
	return func(o *options) { o.addr = addr }
}

// WithReadHeaderTimeout bounds the time allowed to read request headers.
func WithReadHeaderTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithReadHeaderTimeout: duration must be > 0")
	}
	return func(o *options) { o.readHeaderTimeout = d }
}

// WithShutdownTimeout sets the time allowed for graceful shutdown.
func WithShutdownTimeout(d time.Duration) Option {
	if d <= 0 {
		panic("WithShutdownTimeout: duration must be > 0")
	}
	return func(o *options) { o.shutdownTimeout = d }
}

// WithLogger supplies a logger for lifecycle events. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.log = l
		}
	}
}
