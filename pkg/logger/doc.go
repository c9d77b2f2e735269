// Package logger builds *slog.Logger instances with functional options and
// injects request-scoped values from context.Context into every record.
//
// New picks a JSON or text handler and applies static attributes. When
// ContextExtractor callbacks are registered (for example the request id
// extractor from pkg/requestid) the handler is wrapped so they run on every
// record logged with a context.
//
// Attribute helpers in attr.go keep key names consistent across the service.
//
// # Usage
//
//	log := logger.New(
//		logger.WithEnvironment("production", "foodstation"),
//		logger.WithContextExtractors(requestid.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.ErrorContext(ctx, "store call failed",
//		logger.Collection("food"),
//		logger.Error(err),
//	)
package logger
