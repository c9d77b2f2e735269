// Package httpserver runs an http.Handler with graceful shutdown, server
// timeouts, life-cycle hooks and health-check handlers.
//
// Run binds the listener first, then executes the start hooks, so a hook can
// log the real address (see Server.Addr). It blocks until the context is
// cancelled, SIGINT/SIGTERM is received or Shutdown is called, and then shuts
// the server down within the configured timeout.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Get("/healthz", httpserver.HealthCheckHandler(log))
//	r.Get("/readyz", httpserver.HealthCheckHandler(log, mongo.Healthcheck(client)))
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, r); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// # Errors
//
// Run joins bind and serve errors with ErrStart, Shutdown joins shutdown
// errors with ErrShutdown. Use errors.Is to distinguish them.
package httpserver
