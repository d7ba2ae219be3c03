// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-note-keeper/models"
)

func newSearchCmd() *cobra.Command {
	var (
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Search the local cache",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			notes, err := app.Services().QueryService.Search(cmd.Context(), strings.Join(args, " "), limit)
			if err != nil {
				return err
			}
			return printNotes(cmd.OutOrStdout(), notes, asJSON)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of notes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newRecentCmd() *cobra.Command {
	var (
		days   int
		limit  int
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:   "recent",
		Short: "List notes from the last days",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			notes, err := app.Services().QueryService.Recent(cmd.Context(), days, limit)
			if err != nil {
				return err
			}
			return printNotes(cmd.OutOrStdout(), notes, asJSON)
		},
	}

	cmd.Flags().IntVar(&days, "days", 7, "Look back this many days")
	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "Maximum number of notes")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

func newStatsCmd() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarise the local cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			stats, err := app.Services().QueryService.Stats(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				return writeJSON(out, stats)
			}

			fmt.Fprintf(out, "Notes:      %d\n", stats.Count)
			if stats.Oldest != nil {
				fmt.Fprintf(out, "Oldest:     %s\n", stats.Oldest.Local().Format(timeLayout))
			}
			fmt.Fprintf(out, "Last sync:  %d\n", stats.Cursor.LastSyncID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print JSON")
	return cmd
}

const timeLayout = "2006-01-02 15:04"

func printNotes(w io.Writer, notes []models.Note, asJSON bool) error {
	if asJSON {
		if notes == nil {
			notes = []models.Note{}
		}
		return writeJSON(w, notes)
	}

	if len(notes) == 0 {
		fmt.Fprintln(w, "No notes found.")
		return nil
	}
	for _, n := range notes {
		fmt.Fprintf(w, "%s  [%s]  %s\n", n.CreatedAt.Local().Format(timeLayout), n.Channel, n.Content)
	}
	return nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
