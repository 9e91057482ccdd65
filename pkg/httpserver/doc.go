// Package httpserver runs an http.Handler with sane timeouts and graceful
// shutdown.
//
// Run listens, serves, and blocks until its context is cancelled, the
// process receives SIGINT or SIGTERM, or Shutdown is called. In-flight
// requests get the configured shutdown timeout to finish. Config carries env
// tags so it can be embedded in an application config loaded by pkg/config.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server failed", logger.Error(err))
//	}
//
// HealthCheckHandler serves liveness and readiness checks.
package httpserver
