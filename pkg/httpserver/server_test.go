package httpserver_test

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/devicekit/pkg/httpserver"
)

func freeAddr(t *testing.T) string {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err, "unable to get free port")
	addr := l.Addr().String()
	require.NoError(t, l.Close(), "close listener")
	return addr
}

func TestRunAndShutdown(t *testing.T) {
	t.Parallel()
	addr := freeAddr(t)
	srv := httpserver.New(httpserver.WithAddr(addr), httpserver.WithShutdownTimeout(100*time.Millisecond))
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) }))
	}()

	var resp *http.Response
	var err error
	for i := 0; i < 50; i++ {
		resp, err = http.Get("http://" + addr)
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	require.NoError(t, err, "http get after 50 retries")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.NoError(t, resp.Body.Close(), "close body")

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(time.Second):
		require.Fail(t, "run did not finish")
	}

	// shutdown after run returned is a no-op
	require.NoError(t, srv.Shutdown(context.Background()))
}

func TestRun_AddressInUse(t *testing.T) {
	t.Parallel()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer l.Close()

	srv := httpserver.New(httpserver.WithAddr(l.Addr().String()))
	err = srv.Run(context.Background(), nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, httpserver.ErrStart))
}

func TestShutdown_BeforeRun(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(freeAddr(t)), httpserver.WithShutdownTimeout(100*time.Millisecond))
	require.NoError(t, srv.Shutdown(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx, nil) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err, "run")
	case <-time.After(2 * time.Second):
		require.Fail(t, "run did not return after context cancel")
	}
}

func TestShutdown_StopsRun(t *testing.T) {
	t.Parallel()
	srv := httpserver.New(httpserver.WithAddr(freeAddr(t)), httpserver.WithShutdownTimeout(100*time.Millisecond))

	done := make(chan error, 1)
	go func() { done <- srv.Run(context.Background(), nil) }()

	require.Eventually(t, func() bool {
		return srv.Shutdown(context.Background()) == nil && len(done) == 1
	}, 2*time.Second, 20*time.Millisecond)
	require.NoError(t, <-done)
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()
	assert.Panics(t, func() { httpserver.WithAddr("") })
	assert.Panics(t, func() { httpserver.WithShutdownTimeout(0) })
	assert.Panics(t, func() { httpserver.WithReadHeaderTimeout(-time.Second) })
}

func TestNewFromConfig(t *testing.T) {
	t.Parallel()
	srv := httpserver.NewFromConfig(httpserver.Config{})
	require.NotNil(t, srv)
}

func TestHealthCheckHandler(t *testing.T) {
	t.Parallel()

	t.Run("liveness", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		httpserver.HealthCheckHandler(nil).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "ALIVE", rec.Body.String())
	})

	t.Run("ready", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		ok := func(context.Context) error { return nil }
		httpserver.HealthCheckHandler(nil, ok, ok).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "READY", rec.Body.String())
	})

	t.Run("not ready", func(t *testing.T) {
		t.Parallel()
		rec := httptest.NewRecorder()
		fail := func(context.Context) error { return errors.New("down") }
		httpserver.HealthCheckHandler(nil, fail).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Equal(t, "NOT_READY", rec.Body.String())
	})
}
