// Package httpserver runs an http.Handler with env-driven timeouts,
// structured logging and graceful shutdown on SIGINT/SIGTERM or context
// cancellation.
//
//	var cfg httpserver.Config
//	_ = config.Load(&cfg)
//
//	srv := httpserver.NewFromConfig(cfg, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//	    log.Error("server stopped", logger.Error(err))
//	}
//
// HealthHandler serves liveness and readiness probes as JSON.
package httpserver
