package clientip

import (
	"net"
	"net/http"
	"strings"
)

// Common proxy headers. None is consulted unless passed to Middleware or
// FromHeaders, since any client can set them when no proxy overwrites them.
const (
	HeaderVercelForwardedFor = "X-Vercel-Forwarded-For"
	HeaderCFConnectingIP     = "CF-Connecting-IP"
	HeaderForwardedFor       = "X-Forwarded-For"
	HeaderRealIP             = "X-Real-IP"
)

// FromHeaders returns the first valid IP found in the given headers, in
// order. Comma separated lists (X-Forwarded-For) yield their last valid
// entry, the one appended by the nearest proxy. RemoteAddr is used when no
// header carries a valid IP, or when no headers are given.
func FromHeaders(r *http.Request, headers ...string) string {
	for _, h := range headers {
		if ip := lastValid(r.Header.Get(h)); ip != "" {
			return ip
		}
	}
	return FromRemoteAddr(r)
}

// FromRemoteAddr returns the IP of the connection peer.
func FromRemoteAddr(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return parseIP(r.RemoteAddr)
	}
	return parseIP(host)
}

func lastValid(value string) string {
	entries := strings.Split(value, ",")
	for i := len(entries) - 1; i >= 0; i-- {
		if ip := parseIP(entries[i]); ip != "" {
			return ip
		}
	}
	return ""
}

// parseIP validates and normalizes an IP address string.
// Returns empty string if the IP is invalid.
func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
