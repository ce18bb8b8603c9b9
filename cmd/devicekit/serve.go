package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/devicekit/pkg/device"
	"github.com/dmitrymomot/devicekit/pkg/httpserver"
)

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP classification service",
		Long: `Serve device classification over HTTP.

  GET /device   classification of the calling browser as JSON
  GET /health   liveness probe

The viewport comes from the Sec-CH-Viewport-Width and Sec-CH-Viewport-Height
client hints, which every response asks for. The override is read from the
query parameter and cookie named in DEVICE_MODE_QUERY and DEVICE_MODE_COOKIE.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := []httpserver.Option{httpserver.WithLogger(a.log)}
			if addr != "" {
				opts = append(opts, httpserver.WithAddr(addr))
			}
			srv := httpserver.NewFromConfig(a.cfg.HTTP, opts...)
			return srv.Run(cmd.Context(), newRouter(a))
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from HTTP_ADDR)")

	return cmd
}

func newRouter(a *app) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/health", httpserver.HealthCheckHandler(a.log))

	r.Group(func(r chi.Router) {
		r.Use(device.Middleware(a.cfg.Device, device.WithLogger(a.log)))
		r.Get("/device", device.Handler(a.cfg.Device))
	})

	return r
}
