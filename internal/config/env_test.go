// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allEnvVars = []string{
	"CONFIG",
	"APP_TOKEN", "APP_PASSCODE",
	"ADAPTER_NOTE_ENDPOINT", "ADAPTER_SYNC_URL", "ADAPTER_REQUEST_TIMEOUT",
	"STORAGE_DB_DSN",
	"SYNC_HEARTBEAT_INTERVAL", "SYNC_RECONNECT_INITIAL_DELAY", "SYNC_RECONNECT_MAX_DELAY", "SYNC_MAX_RECONNECT_ATTEMPTS",
	"CRYPTO_ARGON_TIME", "CRYPTO_ARGON_MEMORY_KIB", "CRYPTO_ARGON_THREADS", "CRYPTO_MAX_ENVELOPE_AGE",
	"FORWARDER_ADDRESS",
	"LOG_FILE_PATH", "LOG_LEVEL",
}

// setEnvVars clears every known variable and sets vars for the duration of the test.
func setEnvVars(t *testing.T, vars map[string]string) {
	t.Helper()
	for _, k := range allEnvVars {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
	for k, v := range vars {
		t.Setenv(k, v)
	}
}

func TestParseEnv_AllFields(t *testing.T) {
	// Arrange
	setEnvVars(t, map[string]string{
		"CONFIG": "/path/to/config.json",

		"APP_TOKEN":    "bearer",
		"APP_PASSCODE": "Correct1",

		"ADAPTER_NOTE_ENDPOINT":   "https://notes.example.com/api/notes",
		"ADAPTER_SYNC_URL":        "wss://notes.example.com/ws",
		"ADAPTER_REQUEST_TIMEOUT": "15s",

		// Storage has nested prefixes: STORAGE_ + DB_
		"STORAGE_DB_DSN": "/var/lib/notes.db",

		"SYNC_HEARTBEAT_INTERVAL":      "20s",
		"SYNC_RECONNECT_INITIAL_DELAY": "2s",
		"SYNC_RECONNECT_MAX_DELAY":     "1m",
		"SYNC_MAX_RECONNECT_ATTEMPTS":  "7",

		"CRYPTO_ARGON_TIME":       "3",
		"CRYPTO_ARGON_MEMORY_KIB": "32768",
		"CRYPTO_ARGON_THREADS":    "2",
		"CRYPTO_MAX_ENVELOPE_AGE": "8760h",

		"FORWARDER_ADDRESS": "127.0.0.1:9000",
		"LOG_FILE_PATH":     "/tmp/client.log",
		"LOG_LEVEL":         "debug",
	})

	// Act
	cfg := &StructuredConfig{}
	err := parseEnv(cfg)

	// Assert
	require.NoError(t, err)

	assert.Equal(t, "/path/to/config.json", cfg.JSONFilePath)
	assert.Equal(t, "bearer", cfg.App.Token)
	assert.Equal(t, "Correct1", cfg.App.Passcode)
	assert.Equal(t, "https://notes.example.com/api/notes", cfg.Adapter.NoteEndpoint)
	assert.Equal(t, "wss://notes.example.com/ws", cfg.Adapter.SyncURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "/var/lib/notes.db", cfg.Storage.DB.DSN)
	assert.Equal(t, 20*time.Second, cfg.Sync.HeartbeatInterval)
	assert.Equal(t, 2*time.Second, cfg.Sync.ReconnectInitialDelay)
	assert.Equal(t, time.Minute, cfg.Sync.ReconnectMaxDelay)
	assert.Equal(t, 7, cfg.Sync.MaxReconnectAttempts)
	assert.Equal(t, uint32(3), cfg.Crypto.ArgonTime)
	assert.Equal(t, uint32(32768), cfg.Crypto.ArgonMemoryKiB)
	assert.Equal(t, uint8(2), cfg.Crypto.ArgonThreads)
	assert.Equal(t, 8760*time.Hour, cfg.Crypto.MaxEnvelopeAge)
	assert.Equal(t, "127.0.0.1:9000", cfg.Forwarder.Address)
	assert.Equal(t, "/tmp/client.log", cfg.Log.FilePath)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestParseEnv_Empty(t *testing.T) {
	setEnvVars(t, nil)

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseEnv_InvalidDuration(t *testing.T) {
	setEnvVars(t, map[string]string{"SYNC_HEARTBEAT_INTERVAL": "soon"})

	err := parseEnv(&StructuredConfig{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error getting env configs")
}

func TestParseEnv_InvalidThreads(t *testing.T) {
	setEnvVars(t, map[string]string{"CRYPTO_ARGON_THREADS": "300"})

	assert.Error(t, parseEnv(&StructuredConfig{}))
}
