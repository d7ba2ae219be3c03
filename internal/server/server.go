// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

type httpServer struct {
	server   *http.Server
	listener net.Listener

	logger *logger.Logger
}

// NewServer binds the forwarder address immediately so that a taken port is
// reported before any worker starts.
func NewServer(handlers *handler.Handlers, cfg config.ClientForwarder, logger *logger.Logger) (Server, error) {
	if cfg.Address == "" {
		return nil, ErrNoAddress
	}

	listener, err := net.Listen("tcp", cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("listen on %s: %w", cfg.Address, err)
	}

	logger.Info().Str("address", listener.Addr().String()).Msg("forwarding shim bound")

	return &httpServer{
		server: &http.Server{
			Handler:           handlers.HTTP.Init(),
			ReadHeaderTimeout: readHeaderTimeout,
		},
		listener: listener,
		logger:   logger,
	}, nil
}

func (s *httpServer) Addr() string {
	return s.listener.Addr().String()
}

func (s *httpServer) Run(ctx context.Context) error {
	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.server.Serve(s.listener)
	}()

	select {
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("forwarding shim: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info().Str("func", "*httpServer.Run").Msg("forwarding shim shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("forwarding shim shutdown: %w", err)
	}
	<-serveErr

	return nil
}
