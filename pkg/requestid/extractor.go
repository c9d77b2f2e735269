package requestid

import (
	"context"
	"log/slog"
)

// LoggerExtractor returns a context extractor for pkg/logger that adds the
// request id under "request_id".
func LoggerExtractor() func(ctx context.Context) (slog.Attr, bool) {
	return func(ctx context.Context) (slog.Attr, bool) {
		if requestID := FromContext(ctx); requestID != "" {
			return slog.String("request_id", requestID), true
		}
		return slog.Attr{}, false
	}
}
