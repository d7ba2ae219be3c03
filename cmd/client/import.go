// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.ndjson|->",
		Short: "Send every note of an NDJSON export",
		Long: `Reads one JSON object per line: {"text", "channel", "ts", "encrypted"}.
"content" and "timestamp" are accepted as aliases. Lines marked encrypted are
sent as they are; the others are encrypted first. Bad lines are reported and
skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}

			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			report, err := app.Services().ImportService.ImportNDJSON(cmd.Context(), in)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Imported %d of %d notes, %d failed.\n", report.Submitted, report.Total, report.Failed)
			for _, e := range report.Errors {
				fmt.Fprintf(out, "  line %d: %s\n", e.Line, e.Message)
			}
			return err
		},
	}
}
