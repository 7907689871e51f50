// Package wrapper implements the request and response objects handed to
// route handlers: a lazily-parsed view over the raw inbound message and
// an outbound container that keeps its Content-Length header in step
// with its body.
package wrapper

import (
	"mime"
	"net"
	"net/url"
	"strings"

	"graphite/dict"
	"graphite/header"
	"graphite/message"
)

// The transport cannot tell TLS-terminated connections apart at this
// layer, so the scheme is fixed.
const requestScheme = "http"

const (
	formMediaType       = "application/x-www-form-urlencoded"
	formMediaTypeLegacy = "application/x-url-encoded"
)

// Request wraps one raw inbound message. The absolute URL is derived
// once at construction; query arguments and form fields are decoded on
// first access and cached for the object's lifetime. A Request belongs
// to a single handling goroutine and needs no locking.
type Request struct {
	Raw *message.Request

	url  *url.URL
	args *dict.MultiDict
	form *dict.MultiDict
}

// New builds a Request around raw. The absolute URL is reconstructed
// from the fixed scheme, the Host header, and the request-target
// normalized to one leading slash. Without a Host header, or when the
// result does not parse, the URL stays nil and every URL-dependent
// accessor returns its empty value instead of failing.
func New(raw *message.Request) *Request {
	req := &Request{Raw: raw}

	host, ok := raw.Headers.Get("Host")
	if !ok {
		return req
	}

	full := requestScheme + "://" + host + "/" + strings.TrimLeft(raw.Target, "/")
	parsed, err := url.Parse(full)
	if err != nil {
		return req
	}
	req.url = parsed
	return req
}

// Args returns the parsed URL query parameters. The first call decodes
// the query string; later calls return the same MultiDict without
// re-parsing.
func (r *Request) Args() *dict.MultiDict {
	if r.args == nil {
		args := dict.New()
		if r.url != nil && r.url.RawQuery != "" {
			parseURLEncoded(r.url.RawQuery, args)
		}
		r.args = args
	}
	return r.args
}

// Form returns the submitted form fields. Only a body declared as
// url-encoded form data is decoded; any other content type, including
// a missing one, yields an empty MultiDict. The result is cached like
// Args.
func (r *Request) Form() *dict.MultiDict {
	if r.form == nil {
		form := dict.New()
		if contentType, ok := r.Raw.Headers.Get("Content-Type"); ok {
			mediaType, _, err := mime.ParseMediaType(contentType)
			if err == nil && (mediaType == formMediaType || mediaType == formMediaTypeLegacy) {
				parseURLEncoded(string(r.Raw.Body), form)
			}
		}
		r.form = form
	}
	return r.form
}

// Headers exposes the raw header set. Handlers treat it as read-only.
func (r *Request) Headers() *header.Headers {
	return r.Raw.Headers
}

// Path returns the percent-decoded path component, or "" when the URL
// could not be reconstructed.
func (r *Request) Path() string {
	if r.url == nil {
		return ""
	}
	return r.url.Path
}

// FullPath returns the path with "?" and the raw query string appended
// when both are present, else whichever half is available.
func (r *Request) FullPath() string {
	path := r.Path()
	queryString := r.QueryString()
	if path != "" && queryString != "" {
		return path + "?" + queryString
	}
	return path
}

// Host returns the raw Host header value, or "".
func (r *Request) Host() string {
	host, _ := r.Raw.Headers.Get("Host")
	return host
}

// QueryString returns the raw, undecoded query component, or "".
func (r *Request) QueryString() string {
	if r.url == nil {
		return ""
	}
	return r.url.RawQuery
}

// Method returns the HTTP method token as received.
func (r *Request) Method() string {
	return r.Raw.Method
}

// RemoteAddr returns the transport-reported peer address, nil when
// unknown.
func (r *Request) RemoteAddr() net.Addr {
	return r.Raw.RemoteAddr
}

// Scheme returns the fixed URL scheme.
func (r *Request) Scheme() string {
	return requestScheme
}

// HostURL returns "scheme://host/", or "" when the Host header is
// absent.
func (r *Request) HostURL() string {
	host := r.Host()
	if host == "" {
		return ""
	}
	return r.Scheme() + "://" + host + "/"
}

// URL returns the full requested URL including the query string, or ""
// when either half is unavailable.
func (r *Request) URL() string {
	hostURL := r.HostURL()
	fullPath := r.FullPath()
	if hostURL == "" || fullPath == "" {
		return ""
	}
	return hostURL + strings.TrimLeft(fullPath, "/")
}

// BaseURL returns the requested URL without the query string, or "".
func (r *Request) BaseURL() string {
	hostURL := r.HostURL()
	path := r.Path()
	if hostURL == "" || path == "" {
		return ""
	}
	return hostURL + strings.TrimLeft(path, "/")
}

// IsSecure reports whether the request arrived over https. Always
// false while the scheme is fixed.
func (r *Request) IsSecure() bool {
	return r.Scheme() == "https"
}

// parseURLEncoded decodes application/x-www-form-urlencoded pairs into
// md, keeping repeated keys and their order. Pairs that fail to
// percent-decode are dropped; net/url's ParseQuery is not used because
// it collects values into a map and loses cross-key ordering.
func parseURLEncoded(encoded string, md *dict.MultiDict) {
	for _, pair := range strings.Split(encoded, "&") {
		if pair == "" {
			continue
		}
		rawKey, rawValue, _ := strings.Cut(pair, "=")

		key, err := url.QueryUnescape(rawKey)
		if err != nil {
			continue
		}
		value, err := url.QueryUnescape(rawValue)
		if err != nil {
			continue
		}
		md.Add(key, value)
	}
}
