// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

var upgrader = websocket.Upgrader{}

func wsURL(srv *httptest.Server) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http")
}

// echoServer answers every text frame with the same payload.
func echoServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			mt, data, err := conn.ReadMessage()
			if err != nil {
				return
			}
			if err = conn.WriteMessage(mt, data); err != nil {
				return
			}
		}
	}))
}

func TestWebSocketDialer_RoundTrip(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	conn, err := NewWebSocketDialer(time.Second, 0, logger.Nop()).Dial(context.Background(), wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))

	data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"ping"}`, string(data))
}

func TestWebSocketDialer_SendsHeaders(t *testing.T) {
	got := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got <- r.Header.Get("Authorization")
		conn, err := upgrader.Upgrade(w, r, nil)
		if err == nil {
			conn.Close()
		}
	}))
	defer srv.Close()

	header := http.Header{}
	header.Set("Authorization", "Bearer tok")
	conn, err := NewWebSocketDialer(time.Second, 0, logger.Nop()).Dial(context.Background(), wsURL(srv), header)
	require.NoError(t, err)
	defer conn.Close()

	assert.Equal(t, "Bearer tok", <-got)
}

func TestWebSocketDialer_RejectedUpgrade(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "token expired", http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := NewWebSocketDialer(time.Second, 0, logger.Nop()).Dial(context.Background(), wsURL(srv), nil)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Contains(t, err.Error(), "token expired")
}

func TestWebSocketDialer_Unreachable(t *testing.T) {
	srv := echoServer(t)
	url := wsURL(srv)
	srv.Close()

	_, err := NewWebSocketDialer(time.Second, 0, logger.Nop()).Dial(context.Background(), url, nil)

	assert.ErrorIs(t, err, ErrTransport)
}

func TestWebSocketDialer_InvalidURL(t *testing.T) {
	d := NewWebSocketDialer(time.Second, 0, logger.Nop())
	for _, raw := range []string{"", "http://host/sync", "host:1234"} {
		_, err := d.Dial(context.Background(), raw, nil)
		assert.ErrorIs(t, err, ErrInvalidEndpoint, raw)
	}
}

func TestWSConn_CloseIsIdempotent(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	conn, err := NewWebSocketDialer(time.Second, 0, logger.Nop()).Dial(context.Background(), wsURL(srv), nil)
	require.NoError(t, err)

	assert.NoError(t, conn.Close())
	assert.NoError(t, conn.Close())
	assert.ErrorIs(t, conn.WriteJSON(map[string]string{"type": "pong"}), ErrConnClosed)

	_, err = conn.ReadMessage()
	assert.Error(t, err)
}

func TestWSConn_ConcurrentWriters(t *testing.T) {
	srv := echoServer(t)
	defer srv.Close()

	conn, err := NewWebSocketDialer(time.Second, 0, logger.Nop()).Dial(context.Background(), wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	const writers = 8
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, conn.WriteJSON(map[string]string{"type": "ping"}))
		}()
	}
	wg.Wait()

	for i := 0; i < writers; i++ {
		data, err := conn.ReadMessage()
		require.NoError(t, err)
		assert.JSONEq(t, `{"type":"ping"}`, string(data))
	}
}

// silentServer upgrades and then never writes until the client leaves.
func silentServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
}

func TestWSConn_ReadTimesOutOnSilentPeer(t *testing.T) {
	srv := silentServer(t)
	defer srv.Close()

	conn, err := NewWebSocketDialer(time.Second, 50*time.Millisecond, logger.Nop()).
		Dial(context.Background(), wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	start := time.Now()
	_, err = conn.ReadMessage()
	require.Error(t, err)

	var netErr net.Error
	require.True(t, errors.As(err, &netErr), "got %v", err)
	assert.True(t, netErr.Timeout())
	assert.Less(t, time.Since(start), 2*time.Second)
}

func TestWSConn_ControlFramesExtendReadDeadline(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for i := 0; i < 10; i++ {
			time.Sleep(20 * time.Millisecond)
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(time.Second)); err != nil {
				return
			}
		}
		_ = conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"pong"}`))
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}))
	defer srv.Close()

	conn, err := NewWebSocketDialer(time.Second, 80*time.Millisecond, logger.Nop()).
		Dial(context.Background(), wsURL(srv), nil)
	require.NoError(t, err)
	defer conn.Close()

	data, err := conn.ReadMessage()
	require.NoError(t, err, "pings every 20ms must keep an 80ms deadline alive for 200ms")
	assert.JSONEq(t, `{"type":"pong"}`, string(data))
}

func TestIsNormalClose(t *testing.T) {
	assert.True(t, IsNormalClose(&websocket.CloseError{Code: websocket.CloseNormalClosure}))
	assert.True(t, IsNormalClose(&websocket.CloseError{Code: websocket.CloseGoingAway}))
	assert.False(t, IsNormalClose(&websocket.CloseError{Code: websocket.CloseAbnormalClosure}))
	assert.False(t, IsNormalClose(assert.AnError))
}
