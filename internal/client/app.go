// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/server"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/syncengine"
	"github.com/MKhiriev/go-note-keeper/internal/workers"
	"github.com/MKhiriev/go-note-keeper/models"
)

// ErrNothingToRun is returned by Run when neither a sync URL nor a
// forwarder address is configured.
var ErrNothingToRun = errors.New("neither sync URL nor forwarder address is configured")

type App struct {
	cfg *config.ClientConfig

	storages *store.ClientStorages
	cipher   crypto.NoteCipher
	services *service.ClientServices
	handlers *handler.Handlers

	logger *logger.Logger
}

var _ Client = (*App)(nil)

func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, logger)
	if err != nil {
		return nil, fmt.Errorf("create local storage: %w", err)
	}

	cipher := crypto.NewNoteCipher(cfg.Crypto)
	noteAdapter := adapter.NewHTTPNoteAdapter(cfg.Adapter.RequestTimeout, logger)

	services, err := service.NewClientServices(storages, noteAdapter, cipher, cfg, buildInfo, logger)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("create client services: %w", err)
	}

	return &App{
		cfg:      cfg,
		storages: storages,
		cipher:   cipher,
		services: services,
		handlers: handler.NewHandlers(services, logger),
		logger:   logger,
	}, nil
}

func (a *App) Services() *service.ClientServices {
	return a.services
}

// Run starts the sync engine when a sync URL is configured and the
// forwarding shim when an address is configured, and blocks until ctx is
// cancelled or one of them fails.
func (a *App) Run(ctx context.Context) error {
	var ws []workers.Worker

	if a.cfg.Adapter.SyncURL != "" {
		engine := syncengine.NewEngine(
			a.cfg.Sync,
			a.cfg.Adapter.SyncURL,
			adapter.NewWebSocketDialer(
				a.cfg.Adapter.RequestTimeout,
				syncengine.MissedHeartbeats*a.cfg.Sync.HeartbeatInterval,
				a.logger,
			),
			a.storages.NoteCache,
			a.cipher,
			a.cfg,
			a.logger,
		)
		ws = append(ws, workers.NewSyncWorker(engine, a.logger))
	} else {
		a.logger.Warn().Str("func", "*App.Run").Msg("sync URL not configured, sync engine disabled")
	}

	srv, err := server.NewServer(a.handlers, a.cfg.Forwarder, a.logger)
	switch {
	case err == nil:
		ws = append(ws, srv)
	case errors.Is(err, server.ErrNoAddress):
		a.logger.Warn().Str("func", "*App.Run").Msg("forwarder address not configured, forwarding shim disabled")
	default:
		return err
	}

	if len(ws) == 0 {
		return ErrNothingToRun
	}

	a.logger.Info().Str("func", "*App.Run").Int("workers", len(ws)).Msg("client running")
	return workers.NewWorkers(ws...).Run(ctx)
}

// ServeMCP serves the tool adapter over in and out until ctx is cancelled.
func (a *App) ServeMCP(ctx context.Context, in io.Reader, out io.Writer) error {
	return a.handlers.MCP.Serve(ctx, in, out)
}

func (a *App) Close() error {
	return a.storages.Close()
}
