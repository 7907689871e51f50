package middleware

import (
	"fmt"

	"graphite/internal/version"
	"graphite/wrapper"
)

// Signature identifies the framework on outgoing responses.
type Signature struct{}

func NewSignature() *Signature {
	return &Signature{}
}

func (s *Signature) HandleResponse(resp *wrapper.Response) error {
	resp.Headers.Set("Server", fmt.Sprintf("graphite/%s", version.GetShortVersion()))
	return nil
}
