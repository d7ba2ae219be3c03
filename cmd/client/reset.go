// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newResetCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the sync cursor so the next run fetches the full history",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			if err = app.Services().QueryService.Reset(cmd.Context(), all); err != nil {
				return err
			}

			if all {
				fmt.Fprintln(cmd.OutOrStdout(), "Local cache cleared.")
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), "Sync cursor reset.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Also delete every cached note")
	return cmd
}
