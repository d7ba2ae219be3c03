// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"

	"github.com/spf13/pflag"
)

// StructuredConfig is the top-level configuration container for the
// go-note-keeper client. It aggregates all sub-configurations and is
// populated by merging values from an optional JSON file, environment
// variables and command-line flags.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the user's secrets: the bearer token for the write path and
	// the passcode notes are encrypted under.
	App App `envPrefix:"APP_"`

	// Adapter holds the remote endpoints and the outbound request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local cache settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Sync holds heartbeat and reconnect tuning of the sync engine.
	Sync Sync `envPrefix:"SYNC_"`

	// Crypto holds Argon2id cost parameters and the envelope age bound.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Forwarder holds the local HTTP forwarding shim settings.
	Forwarder Forwarder `envPrefix:"FORWARDER_"`

	// Log holds the client log file settings.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / --config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds secrets that authorise and protect the user's notes.
type App struct {
	// Token is the bearer token sent with every write-path request.
	// Env: APP_TOKEN
	Token string `env:"TOKEN"`

	// Passcode is the secret every note is encrypted under. It never leaves
	// the device.
	// Env: APP_PASSCODE
	Passcode string `env:"PASSCODE"`
}

// Adapter holds the remote endpoints used by the client.
type Adapter struct {
	// NoteEndpoint is the full URL notes are POSTed to
	// (e.g. "https://notes.example.com/api/notes").
	// Env: ADAPTER_NOTE_ENDPOINT
	NoteEndpoint string `env:"NOTE_ENDPOINT"`

	// SyncURL is the WebSocket URL of the sync channel
	// (e.g. "wss://notes.example.com/ws").
	// Env: ADAPTER_SYNC_URL
	SyncURL string `env:"SYNC_URL"`

	// RequestTimeout bounds a single outbound HTTP request and the
	// WebSocket handshake.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for the local cache.
type Storage struct {
	// DB holds the SQLite cache settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds the local SQLite cache settings.
type DB struct {
	// DSN is the path of the SQLite cache file. Connection parameters are
	// appended by the driver-specific opener.
	// Env: STORAGE_DB_DSN
	DSN string `env:"DSN"`
}

// Sync holds the sync engine tuning.
type Sync struct {
	// HeartbeatInterval is how often the engine sends its own ping.
	// Env: SYNC_HEARTBEAT_INTERVAL
	HeartbeatInterval time.Duration `env:"HEARTBEAT_INTERVAL"`

	// ReconnectInitialDelay is the delay before the first reconnect attempt.
	// Every following attempt doubles it.
	// Env: SYNC_RECONNECT_INITIAL_DELAY
	ReconnectInitialDelay time.Duration `env:"RECONNECT_INITIAL_DELAY"`

	// ReconnectMaxDelay caps the doubled delay.
	// Env: SYNC_RECONNECT_MAX_DELAY
	ReconnectMaxDelay time.Duration `env:"RECONNECT_MAX_DELAY"`

	// MaxReconnectAttempts is the number of consecutive failed attempts after
	// which the engine stops retrying until Connect is called again.
	// Env: SYNC_MAX_RECONNECT_ATTEMPTS
	MaxReconnectAttempts int `env:"MAX_RECONNECT_ATTEMPTS"`
}

// Crypto holds the cipher tuning. Zero values select the cipher's defaults.
type Crypto struct {
	// Env: CRYPTO_ARGON_TIME
	ArgonTime uint32 `env:"ARGON_TIME"`

	// ArgonMemoryKiB is the Argon2id memory cost in KiB.
	// Env: CRYPTO_ARGON_MEMORY_KIB
	ArgonMemoryKiB uint32 `env:"ARGON_MEMORY_KIB"`

	// Env: CRYPTO_ARGON_THREADS
	ArgonThreads uint8 `env:"ARGON_THREADS"`

	// MaxEnvelopeAge rejects envelopes whose embedded timestamp is older.
	// Env: CRYPTO_MAX_ENVELOPE_AGE
	MaxEnvelopeAge time.Duration `env:"MAX_ENVELOPE_AGE"`
}

// Forwarder holds the local HTTP forwarding shim settings.
type Forwarder struct {
	// Address is the loopback address the shim listens on, in "host:port" form.
	// Env: FORWARDER_ADDRESS
	Address string `env:"ADDRESS"`
}

// Log holds logging settings.
type Log struct {
	// FilePath is the rotated log file. Empty means stderr.
	// Env: LOG_FILE_PATH
	FilePath string `env:"FILE_PATH"`

	// Level is a zerolog level name ("debug", "info", ...).
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources in the following priority order (last source wins for non-zero
// fields):
//  1. JSON file (path resolved from sources 2 and 3)
//  2. Environment variables
//  3. Command-line flags registered on fs by [RegisterFlags]
//
// fs may be nil, in which case flags are skipped.
func GetStructuredConfig(fs *pflag.FlagSet) (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(fs).
		withJSON().
		build()
}
