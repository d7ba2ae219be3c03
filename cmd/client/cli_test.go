// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/models"
)

// isolate clears every configuration variable and points the cache at a
// temp file. It returns the --db flag to pass.
func isolate(t *testing.T) []string {
	t.Helper()
	for _, name := range []string{
		"CONFIG", "APP_TOKEN", "APP_PASSCODE",
		"ADAPTER_NOTE_ENDPOINT", "ADAPTER_SYNC_URL", "ADAPTER_REQUEST_TIMEOUT",
		"STORAGE_DB_DSN", "FORWARDER_ADDRESS", "LOG_FILE_PATH",
		"SYNC_HEARTBEAT_INTERVAL", "SYNC_RECONNECT_INITIAL_DELAY",
		"SYNC_RECONNECT_MAX_DELAY", "SYNC_MAX_RECONNECT_ATTEMPTS",
		"CRYPTO_MAX_ENVELOPE_AGE",
	} {
		t.Setenv(name, "")
	}
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("CRYPTO_ARGON_TIME", "1")
	t.Setenv("CRYPTO_ARGON_MEMORY_KIB", "8")
	t.Setenv("CRYPTO_ARGON_THREADS", "1")

	return []string{"--db", filepath.Join(t.TempDir(), "notes.db")}
}

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// noteServer accepts every note and answers with increasing ids.
func noteServer(t *testing.T) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req models.NoteRequest
		if !assert.NoError(t, json.NewDecoder(r.Body).Decode(&req)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		assert.True(t, req.Encrypted)
		assert.Equal(t, "Bearer token", r.Header.Get("Authorization"))
		id := calls.Add(1)
		_ = json.NewEncoder(w).Encode(map[string]int64{"id": id})
	}))
	t.Cleanup(srv.Close)
	return srv, &calls
}

func TestCLI_HelpListsCommands(t *testing.T) {
	out, err := execute(t, "", "--help")
	require.NoError(t, err)

	for _, name := range []string{"run", "note", "search", "recent", "stats", "import", "mcp", "reset", "version"} {
		assert.Contains(t, out, name)
	}
}

func TestCLI_Version(t *testing.T) {
	out, err := execute(t, "", "version")
	require.NoError(t, err)

	assert.Contains(t, out, "Build version: dev")
	assert.Contains(t, out, "Build date: N/A")
	assert.Contains(t, out, "Build commit: N/A")
}

func TestCLI_NoteWithoutPasscodeFails(t *testing.T) {
	db := isolate(t)
	srv, calls := noteServer(t)

	_, err := execute(t, "", append(db, "--note-endpoint", srv.URL, "--token", "token", "note", "hello")...)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "Passcode not configured")
	assert.Zero(t, calls.Load())
}

func TestCLI_NoteIsSent(t *testing.T) {
	db := isolate(t)
	srv, calls := noteServer(t)
	t.Setenv("APP_PASSCODE", "secret")

	out, err := execute(t, "", append(db, "--note-endpoint", srv.URL, "--token", "token",
		"note", "--channel", "work", "ship", "it")...)

	require.NoError(t, err)
	assert.Equal(t, "Note sent (id 1)\n", out)
	assert.Equal(t, int64(1), calls.Load())
}

func TestCLI_NoteFromStdin(t *testing.T) {
	db := isolate(t)
	srv, calls := noteServer(t)

	out, err := execute(t, "from stdin\n", append(db, "--note-endpoint", srv.URL, "--token", "token",
		"--passcode", "secret", "note", "-")...)

	require.NoError(t, err)
	assert.Contains(t, out, "Note sent")
	assert.Equal(t, int64(1), calls.Load())
}

func TestCLI_NoteRejectsBadTimestamp(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, "", append(db, "note", "--ts", "tomorrow", "x")...)

	assert.ErrorContains(t, err, "invalid --ts")
}

func TestCLI_ImportReportsEveryLine(t *testing.T) {
	db := isolate(t)
	srv, calls := noteServer(t)

	path := filepath.Join(t.TempDir(), "export.ndjson")
	require.NoError(t, os.WriteFile(path, []byte(strings.Join([]string{
		`{"text":"one","channel":"inbox","ts":"2026-01-02T03:04:05Z"}`,
		`{"content":"two"}`,
		`not json`,
		`{"text":""}`,
	}, "\n")), 0o600))

	out, err := execute(t, "", append(db, "--note-endpoint", srv.URL, "--token", "token",
		"--passcode", "secret", "import", path)...)

	require.NoError(t, err)
	assert.Contains(t, out, "Imported 2 of 4 notes, 2 failed.")
	assert.Contains(t, out, "line 3:")
	assert.Contains(t, out, "line 4:")
	assert.Equal(t, int64(2), calls.Load())
}

func TestCLI_QueriesOnEmptyCache(t *testing.T) {
	db := isolate(t)

	out, err := execute(t, "", append(db, "search", "anything")...)
	require.NoError(t, err)
	assert.Equal(t, "No notes found.\n", out)

	out, err = execute(t, "", append(db, "recent", "--json")...)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, out)

	out, err = execute(t, "", append(db, "stats", "--json")...)
	require.NoError(t, err)
	var stats models.Stats
	require.NoError(t, json.Unmarshal([]byte(out), &stats))
	assert.Zero(t, stats.Count)

	_, err = execute(t, "", append(db, "recent", "--days", "0")...)
	assert.Error(t, err)
}

func TestCLI_Reset(t *testing.T) {
	db := isolate(t)

	out, err := execute(t, "", append(db, "reset")...)
	require.NoError(t, err)
	assert.Equal(t, "Sync cursor reset.\n", out)

	out, err = execute(t, "", append(db, "reset", "--all")...)
	require.NoError(t, err)
	assert.Equal(t, "Local cache cleared.\n", out)
}

func TestCLI_InvalidConfig(t *testing.T) {
	db := isolate(t)

	_, err := execute(t, "", append(db, "--sync-url", "http://not-a-websocket", "stats")...)

	assert.ErrorContains(t, err, "load config")
}
