// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides small helpers shared by the transport layers:
// JSON response writing, the outbound HTTP client, bearer token inspection
// and client id generation.
package utils
