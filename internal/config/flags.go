// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/pflag"
)

// Flag names registered by [RegisterFlags].
const (
	flagConfig           = "config"
	flagToken            = "token"
	flagPasscode         = "passcode"
	flagNoteEndpoint     = "note-endpoint"
	flagSyncURL          = "sync-url"
	flagRequestTimeout   = "request-timeout"
	flagDSN              = "db"
	flagHeartbeat        = "heartbeat-interval"
	flagReconnectInitial = "reconnect-initial-delay"
	flagReconnectMax     = "reconnect-max-delay"
	flagReconnectLimit   = "max-reconnect-attempts"
	flagForwarderAddress = "forwarder-address"
	flagLogFile          = "log-file"
	flagLogLevel         = "log-level"
)

// NetAddress holds structured network address data for host and port.
// It implements the [pflag.Value] interface.
type NetAddress struct {
	Host string
	Port int
}

// RegisterFlags defines every configuration flag on fs. Only flags the user
// actually set take part in the merge, so flag defaults never shadow values
// from the environment or the JSON file.
//
// Flags:
//
//	-c/--config                JSON config file path
//	--token                    bearer token for the write path
//	--passcode                 encryption passcode
//	--note-endpoint            write-path URL
//	--sync-url                 sync channel WebSocket URL
//	--request-timeout          outbound request timeout (e.g. "10s")
//	-d/--db                    SQLite cache file path
//	--heartbeat-interval       engine ping interval
//	--reconnect-initial-delay  first reconnect delay
//	--reconnect-max-delay      reconnect delay cap
//	--max-reconnect-attempts   consecutive reconnect attempts before giving up
//	-a/--forwarder-address     forwarding shim listen address host:port
//	--log-file                 rotated log file path
//	--log-level                log level
func RegisterFlags(fs *pflag.FlagSet) {
	fs.StringP(flagConfig, "c", "", "JSON config file path")
	fs.String(flagToken, "", "Bearer token for the note endpoint")
	fs.String(flagPasscode, "", "Passcode notes are encrypted under")
	fs.String(flagNoteEndpoint, "", "URL notes are submitted to")
	fs.String(flagSyncURL, "", "WebSocket URL of the sync channel")
	fs.Duration(flagRequestTimeout, 0, "Outbound request timeout (e.g. 10s)")
	fs.StringP(flagDSN, "d", "", "Local cache file path")
	fs.Duration(flagHeartbeat, 0, "Sync channel ping interval")
	fs.Duration(flagReconnectInitial, 0, "Delay before the first reconnect attempt")
	fs.Duration(flagReconnectMax, 0, "Upper bound of the reconnect delay")
	fs.Int(flagReconnectLimit, 0, "Consecutive reconnect attempts before giving up")
	fs.VarP(&NetAddress{}, flagForwarderAddress, "a", "Forwarding shim address host:port")
	fs.String(flagLogFile, "", "Log file path (stderr when empty)")
	fs.String(flagLogLevel, "", "Log level")
}

// parseFlags reads the flags the user changed on fs into a partial config.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}
	var errs []error

	str := func(name string, dst *string) {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			return
		}
		v, err := fs.GetString(name)
		errs = append(errs, err)
		*dst = v
	}

	str(flagConfig, &cfg.JSONFilePath)
	str(flagToken, &cfg.App.Token)
	str(flagPasscode, &cfg.App.Passcode)
	str(flagNoteEndpoint, &cfg.Adapter.NoteEndpoint)
	str(flagSyncURL, &cfg.Adapter.SyncURL)
	str(flagDSN, &cfg.Storage.DB.DSN)
	str(flagLogFile, &cfg.Log.FilePath)
	str(flagLogLevel, &cfg.Log.Level)

	for name, dst := range map[string]*time.Duration{
		flagRequestTimeout:   &cfg.Adapter.RequestTimeout,
		flagHeartbeat:        &cfg.Sync.HeartbeatInterval,
		flagReconnectInitial: &cfg.Sync.ReconnectInitialDelay,
		flagReconnectMax:     &cfg.Sync.ReconnectMaxDelay,
	} {
		if fs.Lookup(name) == nil || !fs.Changed(name) {
			continue
		}
		v, err := fs.GetDuration(name)
		errs = append(errs, err)
		*dst = v
	}

	if fs.Lookup(flagReconnectLimit) != nil && fs.Changed(flagReconnectLimit) {
		v, err := fs.GetInt(flagReconnectLimit)
		errs = append(errs, err)
		cfg.Sync.MaxReconnectAttempts = v
	}

	if f := fs.Lookup(flagForwarderAddress); f != nil && fs.Changed(flagForwarderAddress) {
		cfg.Forwarder.Address = f.Value.String()
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("error reading flags: %w", err)
	}
	return cfg, nil
}

// String returns a canonical host:port string for a NetAddress.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}

// Type implements [pflag.Value].
func (a *NetAddress) Type() string {
	return "host:port"
}
