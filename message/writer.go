package message

import (
	"fmt"
	"io"

	"graphite/header"
	"graphite/httputil"
)

// WriteResponse serializes one outbound message: status line, header
// block, blank line, body.
func WriteResponse(w io.Writer, status int, h *header.Headers, body []byte) error {
	statusLine := fmt.Sprintf("HTTP/1.1 %d %s\r\n", status, httputil.StatusName(status))

	if _, err := io.WriteString(w, statusLine); err != nil {
		return fmt.Errorf("write status line: %w", err)
	}
	if _, err := w.Write(h.Finalize()); err != nil {
		return fmt.Errorf("write headers: %w", err)
	}
	if len(body) > 0 {
		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("write body: %w", err)
		}
	}
	return nil
}
