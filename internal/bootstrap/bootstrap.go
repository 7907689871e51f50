package bootstrap

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"graphite/internal/config"
	"graphite/internal/middleware"
	"graphite/internal/random"
	"graphite/internal/transport"
	"graphite/internal/version"
)

type Bootstrap struct {
	Config     config.Config
	Handler    transport.Handler
	ErrChan    chan error
	SignalChan chan os.Signal
}

func New(cfg config.Config, handler transport.Handler) *Bootstrap {
	return &Bootstrap{
		Config:     cfg,
		Handler:    handler,
		ErrChan:    make(chan error, 1),
		SignalChan: make(chan os.Signal, 1),
	}
}

// Run starts the HTTP transport and blocks until the first service
// error or a termination signal.
func (b *Bootstrap) Run() error {
	reqMW := []middleware.Request{
		middleware.NewRequestID(random.New()),
	}
	respMW := []middleware.Response{
		middleware.NewSignature(),
	}

	srv := transport.NewHTTPServer(b.Config.String("port", "8080"), b.Handler, reqMW, respMW)

	signal.Notify(b.SignalChan, os.Interrupt, syscall.SIGTERM)

	go startHTTPServer(srv, b.ErrChan)

	log.Printf("%s started", version.GetVersion())

	select {
	case err := <-b.ErrChan:
		return fmt.Errorf("service error: %w", err)
	case sig := <-b.SignalChan:
		log.Printf("Received signal %s, initiating graceful shutdown", sig)
		return nil
	}
}

func startHTTPServer(srv transport.Transport, errChan chan<- error) {
	listener, err := srv.Listen()
	if err != nil {
		errChan <- fmt.Errorf("failed to start http server: %w", err)
		return
	}
	if err = srv.Serve(listener); err != nil {
		errChan <- fmt.Errorf("error when serving http server: %w", err)
	}
}
