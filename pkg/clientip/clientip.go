package clientip

import (
	"net"
	"net/http"
	"net/textproto"
	"strings"
)

// Resolver extracts client IPs, checking trusted headers in order before
// falling back to RemoteAddr.
type Resolver struct {
	headers []string
}

// NewResolver creates a Resolver trusting the given headers in priority order.
func NewResolver(trustedHeaders ...string) Resolver {
	headers := make([]string, 0, len(trustedHeaders))
	for _, h := range trustedHeaders {
		if h = strings.TrimSpace(h); h != "" {
			headers = append(headers, textproto.CanonicalMIMEHeaderKey(h))
		}
	}
	return Resolver{headers: headers}
}

// IP returns the normalised client address, or the raw RemoteAddr when
// nothing parses.
func (res Resolver) IP(r *http.Request) string {
	for _, h := range res.headers {
		// X-Forwarded-For style lists carry the original client first.
		for candidate := range strings.SplitSeq(r.Header.Get(h), ",") {
			if ip := parseIP(candidate); ip != "" {
				return ip
			}
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		host = r.RemoteAddr
	}
	if ip := parseIP(host); ip != "" {
		return ip
	}
	return r.RemoteAddr
}

func parseIP(s string) string {
	ip := net.ParseIP(strings.TrimSpace(s))
	if ip == nil {
		return ""
	}
	return ip.String()
}
