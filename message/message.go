// Package message holds the raw transport-level HTTP message types: the
// inbound request as parsed off the wire and the serializer for outbound
// responses. Higher-level views (lazy query args, form data, derived
// URLs) live in the wrapper package.
package message

import (
	"net"
	"strconv"

	"graphite/header"
)

// Request is one inbound HTTP message as produced by the transport
// layer: request line fields, parsed headers, and the raw body bytes.
type Request struct {
	Method     string
	Target     string
	Proto      string
	Headers    *header.Headers
	Body       []byte
	RemoteAddr net.Addr
}

// ContentLength parses the Content-Length header. An absent or
// malformed value yields (0, false).
func (r *Request) ContentLength() (int, bool) {
	raw, ok := r.Headers.Get("Content-Length")
	if !ok {
		return 0, false
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}
