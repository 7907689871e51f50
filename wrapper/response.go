package wrapper

import (
	"strconv"

	"graphite/header"
	"graphite/httputil"
)

const defaultContentType = "text/html; charset=utf-8"

// Response is one outbound HTTP message under construction: status
// code, headers, and body. The body field is unexported so every
// mutation goes through SetData, which rewrites Content-Length in the
// same step; body and length cannot drift apart.
type Response struct {
	StatusCode int
	Headers    *header.Headers

	body string
}

// NewResponse builds a 200 response around body with the default
// content type and a matching Content-Length.
func NewResponse(body string) *Response {
	resp := &Response{
		StatusCode: 200,
		Headers:    header.New(),
		body:       body,
	}
	resp.Headers.Set("Content-Type", defaultContentType)
	resp.Headers.Set("Content-Length", strconv.Itoa(len(body)))
	return resp
}

// Body returns the current response body.
func (resp *Response) Body() string {
	return resp.body
}

// SetData replaces the body and recomputes Content-Length together.
func (resp *Response) SetData(value string) {
	resp.body = value
	resp.Headers.Set("Content-Length", strconv.Itoa(len(value)))
}

// StatusName returns the reason phrase for the current status code,
// "UNKNOWN" for codes outside the standard table.
func (resp *Response) StatusName() string {
	return httputil.StatusName(resp.StatusCode)
}

// ContentType returns the Content-Type header value, or "".
func (resp *Response) ContentType() string {
	contentType, _ := resp.Headers.Get("Content-Type")
	return contentType
}

// SetContentType writes the Content-Type header from a short media
// type, attaching the utf-8 charset parameter.
func (resp *Response) SetContentType(mediaType string) {
	resp.Headers.Set("Content-Type", httputil.ContentType(mediaType, "utf-8"))
}

// ContentLength parses the Content-Length header back to an integer.
// An absent or malformed header yields (0, false).
func (resp *Response) ContentLength() (int, bool) {
	raw, ok := resp.Headers.Get("Content-Length")
	if !ok {
		return 0, false
	}
	length, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return length, true
}
