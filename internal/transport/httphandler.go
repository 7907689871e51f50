package transport

import (
	"bufio"
	"errors"
	"log"
	"net"

	"graphite/httputil"
	"graphite/internal/middleware"
	"graphite/message"
	"graphite/wrapper"
)

type httpHandler struct {
	handler Handler
	reqMW   []middleware.Request
	respMW  []middleware.Response
}

func newHTTPHandler(handler Handler, reqMW []middleware.Request, respMW []middleware.Response) *httpHandler {
	return &httpHandler{
		handler: handler,
		reqMW:   reqMW,
		respMW:  respMW,
	}
}

// handle serves exactly one request and closes the connection;
// keep-alive is not supported.
func (hh *httpHandler) handle(conn net.Conn) {
	defer hh.closeConnection(conn)

	raw, err := message.ReadRequest(bufio.NewReader(conn), conn.RemoteAddr())
	if err != nil {
		log.Printf("Error reading request: %v", err)
		_ = hh.badRequest(conn)
		return
	}

	if err = hh.applyRequestMiddlewares(raw); err != nil {
		log.Printf("Error when applying request middleware: %v", err)
		hh.respond(conn, errorResponse(500))
		return
	}

	resp := hh.dispatch(wrapper.New(raw))

	if err = hh.applyResponseMiddlewares(resp); err != nil {
		log.Printf("Error when applying response middleware: %v", err)
		hh.respond(conn, errorResponse(500))
		return
	}

	hh.respond(conn, resp)
}

func (hh *httpHandler) dispatch(req *wrapper.Request) *wrapper.Response {
	if hh.handler == nil {
		return errorResponse(404)
	}
	resp := hh.handler(req)
	if resp == nil {
		return errorResponse(404)
	}
	return resp
}

func (hh *httpHandler) applyRequestMiddlewares(raw *message.Request) error {
	for _, m := range hh.reqMW {
		if err := m.HandleRequest(raw); err != nil {
			return err
		}
	}
	return nil
}

func (hh *httpHandler) applyResponseMiddlewares(resp *wrapper.Response) error {
	for _, m := range hh.respMW {
		if err := m.HandleResponse(resp); err != nil {
			return err
		}
	}
	return nil
}

func (hh *httpHandler) respond(conn net.Conn, resp *wrapper.Response) {
	resp.Headers.Set("Connection", "close")
	if err := message.WriteResponse(conn, resp.StatusCode, resp.Headers, []byte(resp.Body())); err != nil {
		log.Printf("Error writing response: %v", err)
	}
}

func (hh *httpHandler) badRequest(conn net.Conn) error {
	if _, err := conn.Write([]byte("HTTP/1.1 400 Bad Request\r\nConnection: close\r\n\r\n")); err != nil {
		return err
	}
	return nil
}

func (hh *httpHandler) closeConnection(conn net.Conn) {
	err := conn.Close()
	if err != nil && !errors.Is(err, net.ErrClosed) {
		log.Printf("Error closing connection: %v", err)
	}
}

func errorResponse(status int) *wrapper.Response {
	resp := wrapper.NewResponse(httputil.StatusName(status))
	resp.StatusCode = status
	resp.SetContentType("text/plain")
	return resp
}
