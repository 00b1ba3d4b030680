package utils

import (
	"net"
	"net/http"
)

// ClientIP returns the request origin address. middleware.RealIP has already
// folded X-Real-IP / X-Forwarded-For into RemoteAddr when present.
func ClientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
