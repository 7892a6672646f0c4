// Package httpserver wraps net/http.Server with functional options,
// signal-aware graceful shutdown, lifecycle logging, and a health check handler.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// Run blocks until ctx is cancelled, SIGINT/SIGTERM is received, or the
// listener fails.
package httpserver
