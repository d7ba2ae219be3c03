// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"
)

// Client defaults applied to zero-valued fields by [GetClientConfig].
const (
	DefaultDSN                   = "go-note-keeper.db"
	DefaultRequestTimeout        = 10 * time.Second
	DefaultHeartbeatInterval     = 30 * time.Second
	DefaultReconnectInitialDelay = time.Second
	DefaultReconnectMaxDelay     = 10 * time.Minute
	DefaultMaxReconnectAttempts  = 10
	DefaultForwarderAddress      = "127.0.0.1:8765"
	DefaultLogLevel              = "info"
)

// ClientApp holds the user's secrets.
type ClientApp struct {
	// Token is the bearer token for the write path.
	Token string
	// Passcode is the encryption passcode.
	Passcode string
}

// ClientAdapter holds remote endpoints used by the client transport layer.
type ClientAdapter struct {
	// NoteEndpoint is the URL notes are POSTed to.
	NoteEndpoint string
	// SyncURL is the WebSocket URL of the sync channel.
	SyncURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite cache file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientSync holds sync engine tuning.
type ClientSync struct {
	HeartbeatInterval     time.Duration
	ReconnectInitialDelay time.Duration
	ReconnectMaxDelay     time.Duration
	MaxReconnectAttempts  int
}

// ClientForwarder holds the forwarding shim settings.
type ClientForwarder struct {
	Address string
}

// ClientLog holds the client logging settings.
type ClientLog struct {
	FilePath string
	Level    string
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// App contains the token and passcode.
	App ClientApp
	// Adapter contains client transport addresses and timeouts.
	Adapter ClientAdapter
	// Storage contains client storage settings.
	Storage ClientStorage
	// Sync contains sync engine settings.
	Sync ClientSync
	// Crypto contains cipher tuning.
	Crypto Crypto
	// Forwarder contains forwarding shim settings.
	Forwarder ClientForwarder
	// Log contains logging settings.
	Log ClientLog
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration.
//
// It loads the base config via [GetStructuredConfig], maps it onto
// [ClientConfig], fills zero-valued tuning fields with defaults and validates
// the result. Missing credentials are not a configuration error: the write
// path reports them per submission.
func GetClientConfig(fs *pflag.FlagSet) (*ClientConfig, error) {
	cfg, err := GetStructuredConfig(fs)
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := NewClientConfig(cfg)
	return clientCfg, clientCfg.validate()
}

// NewClientConfig maps cfg onto a [ClientConfig] and applies defaults.
func NewClientConfig(cfg *StructuredConfig) *ClientConfig {
	clientCfg := &ClientConfig{
		App: ClientApp{
			Token:    cfg.App.Token,
			Passcode: cfg.App.Passcode,
		},
		Adapter: ClientAdapter{
			NoteEndpoint:   cfg.Adapter.NoteEndpoint,
			SyncURL:        cfg.Adapter.SyncURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Sync: ClientSync{
			HeartbeatInterval:     cfg.Sync.HeartbeatInterval,
			ReconnectInitialDelay: cfg.Sync.ReconnectInitialDelay,
			ReconnectMaxDelay:     cfg.Sync.ReconnectMaxDelay,
			MaxReconnectAttempts:  cfg.Sync.MaxReconnectAttempts,
		},
		Crypto:    cfg.Crypto,
		Forwarder: ClientForwarder{Address: cfg.Forwarder.Address},
		Log: ClientLog{
			FilePath: cfg.Log.FilePath,
			Level:    cfg.Log.Level,
		},
	}
	clientCfg.applyDefaults()

	return clientCfg
}

func (cfg *ClientConfig) applyDefaults() {
	setDefault(&cfg.Storage.DB.DSN, DefaultDSN)
	setDefault(&cfg.Adapter.RequestTimeout, DefaultRequestTimeout)
	setDefault(&cfg.Sync.HeartbeatInterval, DefaultHeartbeatInterval)
	setDefault(&cfg.Sync.ReconnectInitialDelay, DefaultReconnectInitialDelay)
	setDefault(&cfg.Sync.ReconnectMaxDelay, DefaultReconnectMaxDelay)
	setDefault(&cfg.Sync.MaxReconnectAttempts, DefaultMaxReconnectAttempts)
	setDefault(&cfg.Forwarder.Address, DefaultForwarderAddress)
	setDefault(&cfg.Log.Level, DefaultLogLevel)
}

func setDefault[T comparable](field *T, value T) {
	var zero T
	if *field == zero {
		*field = value
	}
}
