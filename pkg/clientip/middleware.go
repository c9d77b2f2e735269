package clientip

import "net/http"

// Middleware resolves the client IP once and stores it in the request
// context. Only the trusted headers are consulted; with none, the IP is the
// connection RemoteAddr.
func Middleware(trusted ...string) func(http.Handler) http.Handler {
	headers := make([]string, 0, len(trusted))
	for _, h := range trusted {
		if h != "" {
			headers = append(headers, http.CanonicalHeaderKey(h))
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(SetIPToContext(r.Context(), FromHeaders(r, headers...))))
		})
	}
}
