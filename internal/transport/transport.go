package transport

import (
	"net"

	"graphite/wrapper"
)

// Handler produces the response for one wrapped request. Returning nil
// yields a 404.
type Handler func(req *wrapper.Request) *wrapper.Response

type Transport interface {
	Listen() (net.Listener, error)
	Serve(listener net.Listener) error
}
