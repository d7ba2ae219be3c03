// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func newMCPCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "mcp",
		Short: "Serve the capture_note tool over stdio",
		Long: `Starts a Model Context Protocol server on stdin/stdout with a single tool,
capture_note{content, channel}, that encrypts and sends a note. Logs go to
stderr or --log-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return app.ServeMCP(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
