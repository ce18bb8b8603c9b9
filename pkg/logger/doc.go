// Package logger builds *slog.Logger instances with functional options and
// context-aware attribute injection.
//
// New picks a text or JSON handler, applies static attributes and wraps the
// result in LogHandlerDecorator, which runs registered ContextExtractor
// callbacks on every record. That is how request-scoped values such as the
// device category resolved by the HTTP middleware end up in every log line
// without being passed around explicitly.
//
// Attribute helpers (Error, Category, Mode, Viewport, ClassifierID, …) keep
// key names consistent across packages.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(config.ParseEnvironment(os.Getenv("APP_ENV")), "devicekit"),
//	    logger.WithContextExtractors(device.LogExtractor),
//	)
//
//	log.InfoContext(ctx, "category changed",
//	    logger.Category("tablet"),
//	    logger.Viewport(834, 1194),
//	)
//
// Discard returns a logger that drops everything; packages use it as the
// default when no logger is supplied.
package logger
