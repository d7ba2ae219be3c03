// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "errors"

// ErrNoAddress is returned by NewServer when the forwarder address is empty,
// which disables the shim.
var ErrNoAddress = errors.New("forwarder address is not configured")
