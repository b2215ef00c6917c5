// Package logger provides the structured logging setup shared across the
// SDK: a JSON slog factory, a no-op logger used as the adapter default, and
// optional Sentry forwarding.
//
// Context extractors inject request-scoped values (request IDs and the
// like) into every log record:
//
//	log := logger.New(middlewares.RequestIDExtractor())
//	log.InfoContext(ctx, "fragment rendered", slog.Int("status", 200))
//
// For production error tracking, NewWithSentry mirrors records to Sentry
// and degrades to stdout-only logging when no DSN is configured:
//
//	log := logger.NewWithSentry(logger.SentryConfig{
//		DSN:      os.Getenv("SENTRY_DSN"),
//		MinLevel: slog.LevelWarn,
//	})
package logger
