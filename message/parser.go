package message

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"net"

	"graphite/header"
)

// ReadRequest parses one HTTP request from br: request line, header
// block, then a body of exactly Content-Length bytes. A missing or
// malformed Content-Length means no body is read; a malformed request
// line is an error.
func ReadRequest(br *bufio.Reader, remote net.Addr) (*Request, error) {
	req := &Request{
		Headers:    header.New(),
		RemoteAddr: remote,
	}

	startLine, err := br.ReadBytes('\n')
	if err != nil {
		return nil, err
	}
	startLine = bytes.TrimRight(startLine, "\r\n")

	req.Method, req.Target, req.Proto, err = parseRequestLine(startLine)
	if err != nil {
		return nil, err
	}

	if err := readHeaderLines(br, req.Headers); err != nil {
		return nil, err
	}

	length, ok := req.ContentLength()
	if !ok || length == 0 {
		return req, nil
	}

	req.Body = make([]byte, length)
	if _, err := io.ReadFull(br, req.Body); err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}
	return req, nil
}

func parseRequestLine(line []byte) (method, target, proto string, err error) {
	firstSpace := bytes.IndexByte(line, ' ')
	if firstSpace == -1 {
		return "", "", "", fmt.Errorf("invalid request line: missing method")
	}

	secondSpace := bytes.IndexByte(line[firstSpace+1:], ' ')
	if secondSpace == -1 {
		return "", "", "", fmt.Errorf("invalid request line: missing version")
	}
	secondSpace += firstSpace + 1

	method = string(line[:firstSpace])
	target = string(line[firstSpace+1 : secondSpace])
	proto = string(line[secondSpace+1:])

	return method, target, proto, nil
}

func readHeaderLines(br *bufio.Reader, h *header.Headers) error {
	for {
		line, err := br.ReadBytes('\n')
		if err != nil {
			return err
		}

		line = bytes.TrimRight(line, "\r\n")
		if len(line) == 0 {
			return nil
		}

		colonIdx := bytes.IndexByte(line, ':')
		if colonIdx == -1 {
			continue
		}

		name := bytes.TrimSpace(line[:colonIdx])
		value := bytes.TrimSpace(line[colonIdx+1:])
		h.Set(string(name), string(value))
	}
}
