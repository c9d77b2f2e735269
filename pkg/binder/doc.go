// Package binder binds HTTP request data to Go structs.
//
// Each binder is a func(*http.Request, any) error, so several can be applied
// to one request struct in turn (see handler.WithBinders):
//
//   - JSON decodes the body, either into the struct in strict mode or, when
//     a field is tagged `body:"json"`, into that field as a whole
//   - Path reads `path` tagged fields through a router extractor such as chi.URLParam
//   - Query reads `query` tagged fields from the URL query string
//
// Example:
//
//	type updateFoodRequest struct {
//		ID     string         `path:"id"`
//		Fields map[string]any `body:"json"`
//	}
//
// Supported field types for path and query binding are string, signed
// integers, bool, pointers to those and slices of those.
//
// All failures wrap one of the package sentinels (ErrFailedToParseJSON,
// ErrUnsupportedMediaType and so on) and can be matched with errors.Is.
package binder
