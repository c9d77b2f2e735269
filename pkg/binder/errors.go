package binder

import "errors"

// Common binding errors
var (
	ErrUnsupportedMediaType = errors.New("unsupported media type")
	ErrFailedToParseJSON    = errors.New("failed to parse JSON request body")
	ErrFailedToParseQuery   = errors.New("failed to parse query parameters")
	ErrFailedToParsePath    = errors.New("failed to parse path parameters")
	ErrMissingContentType   = errors.New("missing content type")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil pointer to struct")

	// ErrBinderNotApplicable lets a binder opt out for a request; Wrap skips it.
	ErrBinderNotApplicable = errors.New("binder not applicable")
)
