package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/foodstation/pkg/binder"
	"github.com/dmitrymomot/foodstation/pkg/logger"
	"github.com/dmitrymomot/foodstation/pkg/requestid"
)

var bindingErrors = []error{
	binder.ErrFailedToParseJSON,
	binder.ErrUnsupportedMediaType,
	binder.ErrMissingContentType,
	binder.ErrFailedToParsePath,
	binder.ErrFailedToParseQuery,
}

// Classify maps err to the HTTPError sent to the client.
// HTTPError values pass through, binder failures become 400 with the binder
// message, anything else is ErrInternal.
func Classify(err error) HTTPError {
	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	for _, target := range bindingErrors {
		if errors.Is(err, target) {
			return NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	return ErrInternal
}

func logLevel(status int) slog.Level {
	if status < http.StatusInternalServerError {
		return slog.LevelWarn
	}
	return slog.LevelError
}

// NewErrorHandler creates an error handler that logs the error and renders it
// as a JSON message. Configure it once in main and pass it to all routes.
func NewErrorHandler(log *slog.Logger) ErrorHandler {
	if log == nil {
		log = slog.Default()
	}

	return func(ctx Context, err error) {
		r := ctx.Request()
		httpErr := Classify(err)

		log.LogAttrs(r.Context(), logLevel(httpErr.Code), "request error",
			logger.RequestID(requestid.FromContext(r.Context())),
			logger.Error(err),
			logger.HTTPRequest(r.Method, r.URL.Path, httpErr.Code),
			logger.Component("error_handler"),
		)

		if renderErr := httpErr.Render(ctx.ResponseWriter(), r); renderErr != nil {
			log.Error("failed to render error response",
				logger.RequestID(requestid.FromContext(r.Context())),
				logger.Error(renderErr),
			)
		}
	}
}
