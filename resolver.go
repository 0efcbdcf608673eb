package urlbuilder

import (
	"net/http"
	"net/url"
)

// Location mirrors a browsing context's current location. When set on a
// Builder it is authoritative: it wins over any candidate passed to Create,
// on the assumption that in an interactive context the current page location
// is always the right base.
type Location struct {
	Origin string
	Href   string
}

// HostProvider is the header/protocol candidate shape for framework request
// types that are not *http.Request. Both values must be non-empty for the
// shape to resolve.
type HostProvider interface {
	HostHeader() string
	Protocol() string
}

// resolveBase maps an optional candidate to a base origin string. Rules are
// tried strictly in order and the first match wins:
//
//  1. the builder's ambient Location (Href preferred over Origin)
//  2. a literal string candidate, returned unchanged
//  3. an outgoing *http.Request (absolute URL) or absolute *url.URL — the
//     full URL string, path and query included
//  4. an incoming *http.Request (Host set) or a HostProvider — protocol://host
//  5. an Endpoint descriptor with all fields set — protocol://host:port
//  6. the builder's fallback base
//
// A nil candidate falls back to the builder's default candidate before rules
// 2-5 are probed. When no rule matches the second return value is false.
func (b *Builder) resolveBase(candidate any) (string, bool) {
	if b.location != nil && b.location.Origin != "" {
		base := b.location.Origin
		if b.location.Href != "" {
			base = b.location.Href
		}
		b.log().Debug("resolveBase: ambient location takes precedence", "base", base)
		return base, true
	}

	if candidate == nil {
		candidate = b.defaultCandidate
	}
	if base, ok := baseFromCandidate(candidate); ok {
		b.log().Debug("resolveBase: resolved from candidate", "base", base)
		return base, true
	}

	if b.fallbackBase != "" {
		b.log().Debug("resolveBase: using fallback base", "base", b.fallbackBase)
		return b.fallbackBase, true
	}
	return "", false
}

func baseFromCandidate(candidate any) (string, bool) {
	switch c := candidate.(type) {
	case string:
		return c, true
	case *url.URL:
		if c != nil && c.IsAbs() {
			return c.String(), true
		}
	case *http.Request:
		if c == nil {
			return "", false
		}
		// Outgoing request: the URL carries the origin. Path and query are
		// returned as-is; an absolute path supplied later replaces them, a
		// relative one resolves against them.
		if c.URL != nil && c.URL.IsAbs() {
			return c.URL.String(), true
		}
		// Incoming request: origin from the Host header plus the scheme the
		// request arrived on.
		if c.Host != "" {
			return requestScheme(c) + "://" + c.Host, true
		}
	case HostProvider:
		host, proto := c.HostHeader(), c.Protocol()
		if host != "" && proto != "" {
			return proto + "://" + host, true
		}
	case Endpoint:
		if base := c.Base(); base != "" {
			return base, true
		}
	case *Endpoint:
		if c == nil {
			return "", false
		}
		if base := c.Base(); base != "" {
			return base, true
		}
	}
	return "", false
}

func requestScheme(req *http.Request) string {
	if proto := req.Header.Get("X-Forwarded-Proto"); proto != "" {
		return proto
	}
	if req.TLS != nil {
		return "https"
	}
	return "http"
}
