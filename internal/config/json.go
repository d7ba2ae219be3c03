// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the shape of the JSON
// config file. Durations are written as strings ("30s") or nanoseconds.
type StructuredJSONConfig struct {
	App struct {
		Token    string `json:"token"`
		Passcode string `json:"passcode"`
	} `json:"app,omitempty"`

	Adapter struct {
		NoteEndpoint   string   `json:"note_endpoint"`
		SyncURL        string   `json:"sync_url"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Sync struct {
		HeartbeatInterval     Duration `json:"heartbeat_interval"`
		ReconnectInitialDelay Duration `json:"reconnect_initial_delay"`
		ReconnectMaxDelay     Duration `json:"reconnect_max_delay"`
		MaxReconnectAttempts  int      `json:"max_reconnect_attempts"`
	} `json:"sync,omitempty"`

	Crypto struct {
		ArgonTime      uint32   `json:"argon_time"`
		ArgonMemoryKiB uint32   `json:"argon_memory_kib"`
		ArgonThreads   uint8    `json:"argon_threads"`
		MaxEnvelopeAge Duration `json:"max_envelope_age"`
	} `json:"crypto,omitempty"`

	Forwarder struct {
		Address string `json:"address"`
	} `json:"forwarder,omitempty"`

	Log struct {
		FilePath string `json:"file_path"`
		Level    string `json:"level"`
	} `json:"log,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		App: App{
			Token:    jsonCfg.App.Token,
			Passcode: jsonCfg.App.Passcode,
		},
		Adapter: Adapter{
			NoteEndpoint:   jsonCfg.Adapter.NoteEndpoint,
			SyncURL:        jsonCfg.Adapter.SyncURL,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Sync: Sync{
			HeartbeatInterval:     time.Duration(jsonCfg.Sync.HeartbeatInterval),
			ReconnectInitialDelay: time.Duration(jsonCfg.Sync.ReconnectInitialDelay),
			ReconnectMaxDelay:     time.Duration(jsonCfg.Sync.ReconnectMaxDelay),
			MaxReconnectAttempts:  jsonCfg.Sync.MaxReconnectAttempts,
		},
		Crypto: Crypto{
			ArgonTime:      jsonCfg.Crypto.ArgonTime,
			ArgonMemoryKiB: jsonCfg.Crypto.ArgonMemoryKiB,
			ArgonThreads:   jsonCfg.Crypto.ArgonThreads,
			MaxEnvelopeAge: time.Duration(jsonCfg.Crypto.MaxEnvelopeAge),
		},
		Forwarder: Forwarder{
			Address: jsonCfg.Forwarder.Address,
		},
		Log: Log{
			FilePath: jsonCfg.Log.FilePath,
			Level:    jsonCfg.Log.Level,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
