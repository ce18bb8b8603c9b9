// Package httpserver runs an http.Handler with graceful shutdown and a
// health endpoint.
//
// Run blocks until the context is cancelled or the process receives an
// interrupt/TERM signal, then shuts the server down with a bounded deadline.
// Errors are wrapped with the ErrStart and ErrShutdown sentinels so callers can
// inspect them with errors.Is.
//
// # Usage
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//
//	r := chi.NewRouter()
//	r.Use(device.Middleware(deviceCfg))
//	r.Get("/health", httpserver.HealthCheckHandler(log))
//
//	if err := srv.Run(ctx, r); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
package httpserver
