// Package network provides small network-related helpers.
package network

import (
	"net/http"
	"strings"
)

// ClientIP returns the originating client address for a request. Behind a
// reverse proxy the X-Forwarded-For or X-Real-IP headers carry it; otherwise
// RemoteAddr does, with the port stripped.
func ClientIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		// The first entry in the chain is the client.
		if idx := strings.Index(xff, ","); idx != -1 {
			return strings.TrimSpace(xff[:idx])
		}
		return strings.TrimSpace(xff)
	}

	if xri := r.Header.Get("X-Real-IP"); xri != "" {
		return xri
	}

	if idx := strings.LastIndex(r.RemoteAddr, ":"); idx != -1 {
		return r.RemoteAddr[:idx]
	}
	return r.RemoteAddr
}
