// Package requestid attaches a correlation id to every HTTP request.
//
// Middleware reuses a client supplied "X-Request-ID" header when it is a
// short token of letters, digits, '-' or '_', and otherwise generates a UUIDv4
// with github.com/google/uuid. The id is stored in the request context
// (FromContext) and echoed in the response header. LoggerExtractor plugs it
// into pkg/logger so every record logged with the request context carries it.
//
//	r.Use(requestid.Middleware)
//
//	log := logger.New(logger.WithContextExtractors(requestid.LoggerExtractor()))
package requestid
