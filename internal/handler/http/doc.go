// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the local forwarding shim.
//
// The shim listens on a loopback address and lets other local programs
// capture notes over plain HTTP. Every captured note goes through the same
// encrypted write path as the CLI; the shim never sends plaintext anywhere.
// It also exposes read-only queries over the local cache.
//
// Routes:
//
//	POST /api/notes          {text, channel, ts} → Result
//	GET  /api/notes/search   ?q=&limit=
//	GET  /api/notes/recent   ?days=&limit=
//	GET  /api/health         {status, version}
package http
