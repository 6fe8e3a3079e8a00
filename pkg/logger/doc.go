// Package logger builds *slog.Logger instances for the service.
//
// New applies functional options (format, level, output, static attributes,
// per-environment defaults) and wraps the handler in LogHandlerDecorator,
// which injects attributes taken from the record's context, such as the
// request ID or the environment name.
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Production, "staffdesk"),
//	    logger.WithContextExtractors(
//	        requestid.LoggerExtractor(),
//	        environment.LoggerExtractor(),
//	    ),
//	)
//	log.InfoContext(ctx, "staff form rejected", logger.Fields(errs.Fields()))
//
// Attribute helpers in attr.go keep key names consistent across packages.
package logger
