// Package api exposes the food station HTTP surface.
//
// NewRouter mounts the informational and health routes, POST /jwt behind a
// per-IP rate limiter, and the accounts, food and request routes behind the
// session guard. Handlers are typed handler.HandlerFunc values; resource
// errors are mapped to {"message": ...} bodies and anything unmapped is
// logged and reported as 500.
package api
