// Package clientip resolves the originating client IP of an HTTP request
// and carries it in the request context.
//
//	r.Use(clientip.Middleware())                             // RemoteAddr only
//	r.Use(clientip.Middleware(clientip.HeaderForwardedFor)) // behind a proxy
//	ip := clientip.FromRequest(req)
//
// Proxy headers are only consulted when listed as trusted, and their values
// only when they parse as IP addresses; otherwise the connection RemoteAddr
// is used.
package clientip
