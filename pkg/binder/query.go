package binder

import "net/http"

// Query creates a query parameter binder function. Fields are matched by the
// `query` tag; slices accept repeated or comma-separated values.
func Query() func(r *http.Request, v any) error {
	return func(r *http.Request, v any) error {
		values := r.URL.Query()
		return bindTagged(v, "query", func(name string) []string {
			return values[name]
		}, ErrFailedToParseQuery)
	}
}
