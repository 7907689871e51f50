package middleware

import (
	"graphite/internal/random"
	"graphite/message"
)

const requestIDLength = 32

// RequestID stamps every inbound request with an X-Request-Id header so
// log lines from one handling flow can be correlated. A client-supplied
// id is kept.
type RequestID struct {
	rand random.Random
}

func NewRequestID(rand random.Random) *RequestID {
	return &RequestID{rand: rand}
}

func (rid *RequestID) HandleRequest(req *message.Request) error {
	if _, ok := req.Headers.Get("X-Request-Id"); ok {
		return nil
	}

	id, err := rid.rand.Hex(requestIDLength)
	if err != nil {
		return err
	}
	req.Headers.Set("X-Request-Id", id)
	return nil
}
