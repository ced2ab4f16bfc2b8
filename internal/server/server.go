package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"

	"golang.org/x/sync/errgroup"
)

type Server struct {
	config *Config
	server *http.Server

	mu       sync.Mutex
	listener net.Listener
}

func New(config *Config) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	httpHandler := SetupRoutes(config)

	return &Server{
		config: config,
		server: &http.Server{
			Addr:              config.HTTP.Addr(),
			Handler:           httpHandler,
			ReadHeaderTimeout: config.HTTP.ReadHeaderTimeout,
			ReadTimeout:       config.HTTP.ReadTimeout,
			WriteTimeout:      config.HTTP.WriteTimeout,
			IdleTimeout:       config.HTTP.IdleTimeout,
		},
	}, nil
}

// Handler returns the router without binding a socket.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Listen binds the listener. Calling it again returns the already bound listener.
func (s *Server) Listen() (net.Listener, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener, nil
	}

	ln, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return nil, fmt.Errorf("listen %s: %w", s.server.Addr, err)
	}
	s.listener = ln

	slog.Info("server running", "addr", ln.Addr().String(), "port", listenerPort(ln), "version", s.config.AppVersion)
	return ln, nil
}

// Addr returns the bound address, or an empty string before Listen.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener == nil {
		return ""
	}
	return s.listener.Addr().String()
}

func (s *Server) Start(ctx context.Context) error {
	if _, err := s.Listen(); err != nil {
		return err
	}
	return s.Serve(ctx)
}

// Serve blocks until ctx is cancelled or the listener is closed.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}

	serveCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	eg, egCtx := errgroup.WithContext(serveCtx)

	eg.Go(func() error {
		defer cancel()
		if err := s.server.Serve(ln); err != nil && !isClosedErr(err) {
			return fmt.Errorf("http serve: %w", err)
		}
		slog.Info("http server stopped")
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		if ctx.Err() == nil {
			// listener went away on its own
			return nil
		}

		slog.Info("server shutdown signal")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), s.config.HTTP.ShutdownTimeout)
		defer cancel()
		return s.Stop(shutdownCtx)
	})

	return eg.Wait()
}

// Stop shuts the http server down, waiting for in-flight requests until ctx expires.
func (s *Server) Stop(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}

// Close closes the listener and every open connection immediately.
func (s *Server) Close() error {
	err := s.server.Close()

	s.mu.Lock()
	ln := s.listener
	s.mu.Unlock()

	if ln != nil {
		if lnErr := ln.Close(); lnErr != nil && !isClosedErr(lnErr) && err == nil {
			err = lnErr
		}
	}

	if err != nil {
		return fmt.Errorf("http close: %w", err)
	}
	return nil
}

func isClosedErr(err error) bool {
	return errors.Is(err, http.ErrServerClosed) || errors.Is(err, net.ErrClosed)
}

func listenerPort(ln net.Listener) int {
	if addr, ok := ln.Addr().(*net.TCPAddr); ok {
		return addr.Port
	}
	return 0
}
