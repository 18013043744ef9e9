package middleware

import (
	"net"
	"net/http"
)

// ClientIP returns the host part of the connection's remote address.
// Forwarding headers are ignored here; behind a trusted proxy the router
// rewrites RemoteAddr before this runs.
func ClientIP(r *http.Request) string {
	if r == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && net.ParseIP(host) != nil {
		return host
	}
	return r.RemoteAddr
}
