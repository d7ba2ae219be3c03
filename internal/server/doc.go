// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the forwarding shim's HTTP listener with graceful
// shutdown.
package server
