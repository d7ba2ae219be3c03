// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validClientConfig() *ClientConfig {
	return NewClientConfig(&StructuredConfig{})
}

func TestClientConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *ClientConfig)
		wantErr error
	}{
		{name: "defaults are valid", mutate: func(*ClientConfig) {}},
		{
			name:    "in-memory dsn",
			mutate:  func(cfg *ClientConfig) { cfg.Storage.DB.DSN = ":memory:" },
			wantErr: ErrInvalidStorageConfigs,
		},
		{
			name:    "negative request timeout",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.RequestTimeout = -time.Second },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "http sync url",
			mutate:  func(cfg *ClientConfig) { cfg.Adapter.SyncURL = "http://example.com/ws" },
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:   "wss sync url",
			mutate: func(cfg *ClientConfig) { cfg.Adapter.SyncURL = "wss://example.com/ws" },
		},
		{
			name: "max delay below initial",
			mutate: func(cfg *ClientConfig) {
				cfg.Sync.ReconnectInitialDelay = time.Minute
				cfg.Sync.ReconnectMaxDelay = time.Second
			},
			wantErr: ErrInvalidSyncConfigs,
		},
		{
			name:    "bad forwarder address",
			mutate:  func(cfg *ClientConfig) { cfg.Forwarder.Address = "anywhere" },
			wantErr: ErrInvalidForwarderConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validClientConfig()
			tt.mutate(cfg)

			err := cfg.validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestStaticCredentials(t *testing.T) {
	var creds Credentials = StaticCredentials{NoteEndpoint: "http://x", BearerToken: "t", Secret: "p"}
	assert.Equal(t, "http://x", creds.Endpoint())
	assert.Equal(t, "t", creds.Token())
	assert.Equal(t, "p", creds.Passcode())
}

func TestCredentials_TokenDropsBearerScheme(t *testing.T) {
	cfg := &ClientConfig{}
	cfg.App.Token = "Bearer abc.def"
	assert.Equal(t, "abc.def", cfg.Token())

	cfg.App.Token = "opaque"
	assert.Equal(t, "opaque", cfg.Token())

	assert.Equal(t, "xyz", StaticCredentials{BearerToken: "bearer xyz"}.Token())
}
