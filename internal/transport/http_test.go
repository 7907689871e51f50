package transport

import (
	"errors"
	"fmt"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"graphite/internal/middleware"
	"graphite/internal/random"
	"graphite/wrapper"
)

func TestNewHTTPServer(t *testing.T) {
	handler := func(req *wrapper.Request) *wrapper.Response {
		return wrapper.NewResponse("ok")
	}

	srv := NewHTTPServer("8080", handler, nil, nil)
	assert.NotNil(t, srv)

	httpSrv, ok := srv.(*httpServer)
	assert.True(t, ok)
	assert.Equal(t, "8080", httpSrv.port)
	assert.NotNil(t, httpSrv.handler)
}

func TestHTTPServer_Listen(t *testing.T) {
	srv := NewHTTPServer("0", nil, nil, nil)

	listener, err := srv.Listen()
	assert.NoError(t, err)
	assert.NotNil(t, listener)
	listener.Close()
}

func TestHTTPServer_Serve_ListenerClosed(t *testing.T) {
	srv := NewHTTPServer("0", nil, nil, nil)

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)

	go func() {
		time.Sleep(100 * time.Millisecond)
		listener.Close()
	}()

	err = srv.Serve(listener)
	assert.True(t, errors.Is(err, net.ErrClosed))
}

func TestHTTPServer_Serve_AcceptError(t *testing.T) {
	srv := NewHTTPServer("0", nil, nil, nil)

	ml := new(mockListener)
	ml.On("Accept").Return(nil, errors.New("accept error")).Once()
	ml.On("Accept").Return(nil, net.ErrClosed).Once()

	err := srv.Serve(ml)
	assert.True(t, errors.Is(err, net.ErrClosed))
	ml.AssertExpectations(t)
}

func serveOnce(t *testing.T, handler Handler, reqMW []middleware.Request, respMW []middleware.Response, request string) string {
	t.Helper()

	srv := NewHTTPServer("0", handler, reqMW, respMW)
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	assert.NoError(t, err)
	defer listener.Close()

	go func() {
		_ = srv.Serve(listener)
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	conn, err := net.Dial("tcp", fmt.Sprintf("127.0.0.1:%d", port))
	assert.NoError(t, err)
	defer conn.Close()

	_, err = conn.Write([]byte(request))
	assert.NoError(t, err)

	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	raw, err := io.ReadAll(conn)
	assert.NoError(t, err)
	return string(raw)
}

func TestHTTPServer_EndToEnd(t *testing.T) {
	handler := func(req *wrapper.Request) *wrapper.Response {
		name, _ := req.Args().GetFirst("name")
		resp := wrapper.NewResponse("hello " + name)
		resp.SetContentType("text/plain")
		return resp
	}

	reqMW := []middleware.Request{middleware.NewRequestID(random.New())}
	respMW := []middleware.Response{middleware.NewSignature()}

	got := serveOnce(t, handler, reqMW, respMW,
		"GET /greet?name=world HTTP/1.1\r\nHost: example.com\r\n\r\n")

	assert.Contains(t, got, "HTTP/1.1 200 OK\r\n")
	assert.Contains(t, got, "Content-Type: text/plain; charset=utf-8\r\n")
	assert.Contains(t, got, "Content-Length: 11\r\n")
	assert.Contains(t, got, "Server: graphite/")
	assert.Contains(t, got, "Connection: close\r\n")
	assert.Contains(t, got, "\r\n\r\nhello world")
}

func TestHTTPServer_EndToEnd_Form(t *testing.T) {
	handler := func(req *wrapper.Request) *wrapper.Response {
		resp := wrapper.NewResponse("")
		values := req.Form().GetAll("a")
		resp.SetData(fmt.Sprintf("a=%v", values))
		return resp
	}

	got := serveOnce(t, handler, nil, nil,
		"POST /submit HTTP/1.1\r\n"+
			"Host: example.com\r\n"+
			"Content-Type: application/x-www-form-urlencoded\r\n"+
			"Content-Length: 7\r\n"+
			"\r\n"+
			"a=1&a=2")

	assert.Contains(t, got, "HTTP/1.1 200 OK\r\n")
	assert.Contains(t, got, "a=[1 2]")
}

func TestHTTPServer_EndToEnd_BadRequest(t *testing.T) {
	got := serveOnce(t, nil, nil, nil, "NONSENSE\r\n\r\n")

	assert.Contains(t, got, "HTTP/1.1 400 Bad Request\r\n")
}

func TestHTTPServer_EndToEnd_NilHandler(t *testing.T) {
	got := serveOnce(t, nil, nil, nil, "GET / HTTP/1.1\r\nHost: example.com\r\n\r\n")

	assert.Contains(t, got, "HTTP/1.1 404 Not Found\r\n")
	assert.Contains(t, got, "\r\n\r\nNot Found")
}

type failingMiddleware struct{}

func (failingMiddleware) HandleResponse(resp *wrapper.Response) error {
	return errors.New("middleware broke")
}

func TestHTTPServer_EndToEnd_MiddlewareFailure(t *testing.T) {
	handler := func(req *wrapper.Request) *wrapper.Response {
		return wrapper.NewResponse("ok")
	}

	got := serveOnce(t, handler, nil, []middleware.Response{failingMiddleware{}},
		"GET / HTTP/1.1\r\nHost: example.com\r\n\r\n")

	assert.Contains(t, got, "HTTP/1.1 500 Internal Server Error\r\n")
}

type mockListener struct {
	mock.Mock
}

func (m *mockListener) Accept() (net.Conn, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(net.Conn), args.Error(1)
}

func (m *mockListener) Close() error {
	args := m.Called()
	return args.Error(0)
}

func (m *mockListener) Addr() net.Addr {
	args := m.Called()
	return args.Get(0).(net.Addr)
}
