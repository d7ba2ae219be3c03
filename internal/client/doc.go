// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the note client from its configuration: local
// cache, cipher, write path, sync engine and local entry points.
package client
