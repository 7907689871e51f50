package middleware

import (
	"graphite/message"
	"graphite/wrapper"
)

// Request middlewares run on the raw message before it is wrapped and
// handed to the handler.
type Request interface {
	HandleRequest(req *message.Request) error
}

// Response middlewares run on the handler's response before it is
// serialized to the wire.
type Response interface {
	HandleResponse(resp *wrapper.Response) error
}
