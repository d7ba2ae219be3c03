// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

//go:build cgo

package store

import (
	_ "github.com/mattn/go-sqlite3"
)

const sqliteDriverName = "sqlite3"

func sqliteDSN(path string) string {
	return "file:" + path + "?_busy_timeout=5000&_journal_mode=WAL&_txlock=immediate"
}
