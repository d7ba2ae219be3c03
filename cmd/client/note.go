// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func newNoteCmd() *cobra.Command {
	var (
		channel   string
		ts        string
		encrypted bool
	)

	cmd := &cobra.Command{
		Use:   "note [text...]",
		Short: "Encrypt and send a note",
		Long: `Encrypts the note under the configured passcode and sends it to the note
endpoint. With no arguments, or "-", the note is read from stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := noteText(cmd.InOrStdin(), args)
			if err != nil {
				return err
			}

			var at time.Time
			if ts != "" {
				if at, err = time.Parse(time.RFC3339Nano, ts); err != nil {
					return fmt.Errorf("invalid --ts %q: %w", ts, err)
				}
			}

			app, _, err := openApp(cmd)
			if err != nil {
				return err
			}
			defer app.Close()

			notes := app.Services().NoteService
			submit := notes.Submit
			if encrypted {
				submit = notes.SubmitPreEncrypted
			}

			res := submit(cmd.Context(), text, channel, at)
			if !res.Success {
				return errors.New(res.Message)
			}

			if res.AssignedID != nil {
				fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", res.Message, *res.AssignedID)
			} else {
				fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&channel, "channel", "", `Channel tag (default "inbox")`)
	cmd.Flags().StringVar(&ts, "ts", "", "Note timestamp in RFC 3339 (default now)")
	cmd.Flags().BoolVar(&encrypted, "encrypted", false, "The note is an envelope that is already encrypted")

	return cmd
}

func noteText(stdin io.Reader, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", fmt.Errorf("read note from stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\r\n"), nil
}
