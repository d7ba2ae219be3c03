// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/handler"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
)

func testHandlers(t *testing.T) *handler.Handlers {
	t.Helper()
	appInfo, err := service.NewAppInfoService(models.NewAppBuildInfo("0.9.0", "", ""), logger.Nop())
	require.NoError(t, err)
	return handler.NewHandlers(&service.ClientServices{AppInfoService: appInfo}, logger.Nop())
}

func TestNewServer_EmptyAddress(t *testing.T) {
	srv, err := NewServer(testHandlers(t), config.ClientForwarder{}, logger.Nop())

	assert.Nil(t, srv)
	assert.ErrorIs(t, err, ErrNoAddress)
}

func TestNewServer_AddressInUse(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer taken.Close()

	_, err = NewServer(testHandlers(t), config.ClientForwarder{Address: taken.Addr().String()}, logger.Nop())
	assert.Error(t, err)
}

func TestServer_ServesUntilCancelled(t *testing.T) {
	srv, err := NewServer(testHandlers(t), config.ClientForwarder{Address: "127.0.0.1:0"}, logger.Nop())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Run(ctx) }()

	resp, err := http.Get("http://" + srv.Addr() + "/api/health")
	require.NoError(t, err)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	_ = resp.Body.Close()
	assert.Equal(t, "0.9.0", body["version"])

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}

	_, err = http.Get("http://" + srv.Addr() + "/api/health")
	assert.Error(t, err)
}
