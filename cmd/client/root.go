// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/models"
)

const defaultVersion = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "go-note-keeper",
		Short: "End-to-end encrypted note capture client",
		Long: `go-note-keeper captures notes, encrypts them on this device and sends them
to your note store. A local cache kept in sync over a WebSocket channel
answers searches offline.

Configuration is read from a JSON file (--config), APP_/ADAPTER_/STORAGE_/
SYNC_/CRYPTO_/FORWARDER_/LOG_ environment variables and flags, in that
order of increasing priority.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	config.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newRunCmd(),
		newNoteCmd(),
		newSearchCmd(),
		newRecentCmd(),
		newStatsCmd(),
		newImportCmd(),
		newMCPCmd(),
		newResetCmd(),
		newVersionCmd(),
	)

	return root
}

func buildInfo() models.AppBuildInfo {
	version := buildVersion
	if version == "" {
		version = defaultVersion
	}
	return models.NewAppBuildInfo(version, buildDate, buildCommit)
}

// openApp loads the configuration from every source and assembles the
// client. The caller must Close the returned app.
func openApp(cmd *cobra.Command) (*client.App, *logger.Logger, error) {
	cfg, err := config.GetClientConfig(cmd.Flags())
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.NewClientLogger("go-note-keeper", cfg.Log.FilePath, cfg.Log.Level)

	app, err := client.NewApp(cmd.Context(), cfg, buildInfo(), log)
	if err != nil {
		return nil, nil, err
	}
	return app, log, nil
}
