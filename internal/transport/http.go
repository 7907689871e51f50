package transport

import (
	"errors"
	"log"
	"net"

	"graphite/internal/middleware"
)

type httpServer struct {
	handler *httpHandler
	port    string
}

func NewHTTPServer(port string, handler Handler, reqMW []middleware.Request, respMW []middleware.Response) Transport {
	return &httpServer{
		handler: newHTTPHandler(handler, reqMW, respMW),
		port:    port,
	}
}

func (ht *httpServer) Listen() (net.Listener, error) {
	return net.Listen("tcp", ":"+ht.port)
}

// Serve accepts connections until the listener closes, handling each on
// its own goroutine. No state is shared between handling flows.
func (ht *httpServer) Serve(listener net.Listener) error {
	log.Printf("HTTP server is starting on port %s", ht.port)
	for {
		conn, err := listener.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return err
			}
			log.Printf("Error accepting connection: %v", err)
			continue
		}

		go ht.handler.handle(conn)
	}
}
