package urlbuilder

import (
	"fmt"
	"net"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// URL is a mutable absolute URL. Every mutator returns the receiver so calls
// can be chained; mutations apply to the one underlying value, not copies.
// The wrapped value stays a syntactically valid absolute URL throughout,
// relying on net/url's own field semantics for normalization.
type URL struct {
	u *url.URL
}

func newURL(u *url.URL) *URL {
	return &URL{u: u}
}

// SetPath replaces the entire pathname.
func (u *URL) SetPath(path string) *URL {
	u.u.Path = path
	u.u.RawPath = ""
	return u
}

// SetPathSegments joins the segments with "/" and sets the result as the
// pathname, replacing any prior path.
func (u *URL) SetPathSegments(segments ...string) *URL {
	u.u.Path = "/" + strings.Join(segments, "/")
	u.u.RawPath = ""
	return u
}

// SetQuery appends a query parameter. The value is stringified with its
// default string conversion. Existing occurrences of key are kept: calling
// SetQuery twice with the same key yields two occurrences, never an
// overwrite.
func (u *URL) SetQuery(key string, value any) *URL {
	q := u.u.Query()
	q.Add(key, fmt.Sprint(value))
	u.u.RawQuery = q.Encode()
	return u
}

// SetQueryMap appends each entry of params the same way SetQuery does.
func (u *URL) SetQueryMap(params map[string]any) *URL {
	q := u.u.Query()
	for key, value := range params {
		q.Add(key, fmt.Sprint(value))
	}
	u.u.RawQuery = q.Encode()
	return u
}

// SetUniqueQuery appends a freshly generated UUID value for key, for cache
// busting or request correlation.
func (u *URL) SetUniqueQuery(key string) *URL {
	return u.SetQuery(key, uuid.NewString())
}

// SetProtocol replaces the scheme. A trailing ":" is tolerated.
func (u *URL) SetProtocol(scheme string) *URL {
	u.u.Scheme = strings.TrimSuffix(scheme, ":")
	return u
}

// SetHost replaces the authority host. A host:port value replaces the port
// as well; a bare host keeps the existing port.
func (u *URL) SetHost(host string) *URL {
	if strings.Contains(host, ":") {
		u.u.Host = host
	} else if port := u.u.Port(); port != "" {
		u.u.Host = net.JoinHostPort(host, port)
	} else {
		u.u.Host = host
	}
	return u
}

// SetPort replaces the authority port. An empty port removes it.
func (u *URL) SetPort(port string) *URL {
	host := u.u.Hostname()
	if port == "" {
		u.u.Host = host
	} else {
		u.u.Host = net.JoinHostPort(host, port)
	}
	return u
}

// Origin returns scheme://host, without path, query or fragment.
func (u *URL) Origin() string {
	origin := url.URL{Scheme: u.u.Scheme, Host: u.u.Host}
	return origin.String()
}

// String returns the serialized URL.
func (u *URL) String() string {
	return u.u.String()
}

// Unwrap returns the underlying *url.URL. Mutating it mutates this value.
func (u *URL) Unwrap() *url.URL {
	return u.u
}
