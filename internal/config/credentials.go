// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import "github.com/MKhiriev/go-note-keeper/internal/utils"

// Credentials is a read-only view of the settings the write path and the
// sync engine need on every call. Implementations may return different values
// over time, so callers must not cache them.
type Credentials interface {
	Endpoint() string
	Token() string
	Passcode() string
}

// Endpoint implements [Credentials].
func (cfg *ClientConfig) Endpoint() string { return cfg.Adapter.NoteEndpoint }

// Token implements [Credentials]. A value pasted together with its
// "Bearer " scheme is reduced to the bare token.
func (cfg *ClientConfig) Token() string { return bareToken(cfg.App.Token) }

// Passcode implements [Credentials].
func (cfg *ClientConfig) Passcode() string { return cfg.App.Passcode }

// StaticCredentials is a fixed [Credentials] value.
type StaticCredentials struct {
	NoteEndpoint string
	BearerToken  string
	Secret       string
}

// Endpoint implements [Credentials].
func (c StaticCredentials) Endpoint() string { return c.NoteEndpoint }

// Token implements [Credentials].
func (c StaticCredentials) Token() string { return bareToken(c.BearerToken) }

// Passcode implements [Credentials].
func (c StaticCredentials) Passcode() string { return c.Secret }

func bareToken(token string) string {
	if t, err := utils.ParseBearerToken(token); err == nil {
		return t
	}
	return token
}
