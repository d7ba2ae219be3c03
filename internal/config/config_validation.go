// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net/url"
	"strings"
)

// validate checks invariants that hold for any source combination. Fields
// that have defaults are checked on [ClientConfig] instead.
func (cfg *StructuredConfig) validate() error {
	if cfg.Sync.MaxReconnectAttempts < 0 {
		return fmt.Errorf("%w: negative max reconnect attempts", ErrInvalidSyncConfigs)
	}
	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.RequestTimeout <= 0 {
		return ErrInvalidAdapterConfigs
	}
	if cfg.Adapter.SyncURL != "" {
		u, err := url.Parse(cfg.Adapter.SyncURL)
		if err != nil || (u.Scheme != "ws" && u.Scheme != "wss") || u.Host == "" {
			return fmt.Errorf("%w: sync url must be ws:// or wss://", ErrInvalidAdapterConfigs)
		}
	}

	if cfg.Sync.HeartbeatInterval <= 0 ||
		cfg.Sync.ReconnectInitialDelay <= 0 ||
		cfg.Sync.ReconnectMaxDelay < cfg.Sync.ReconnectInitialDelay ||
		cfg.Sync.MaxReconnectAttempts <= 0 {
		return ErrInvalidSyncConfigs
	}

	if err := new(NetAddress).Set(cfg.Forwarder.Address); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidForwarderConfigs, err)
	}

	return nil
}
