// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

const (
	defaultHandshakeTimeout = 10 * time.Second
	writeWait               = 10 * time.Second
)

type wsDialer struct {
	dialer      *websocket.Dialer
	readTimeout time.Duration

	logger *logger.Logger
}

// NewWebSocketDialer returns a gorilla/websocket implementation of
// [SyncDialer]. A non-positive handshakeTimeout falls back to 10s.
//
// With a positive readTimeout a connection that receives no frame at all,
// control frames included, for that long fails its pending ReadMessage with
// a timeout error. Zero disables the deadline.
func NewWebSocketDialer(handshakeTimeout, readTimeout time.Duration, logger *logger.Logger) SyncDialer {
	if handshakeTimeout <= 0 {
		handshakeTimeout = defaultHandshakeTimeout
	}

	return &wsDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		readTimeout: readTimeout,
		logger:      logger,
	}
}

// Dial implements [SyncDialer].
func (d *wsDialer) Dial(ctx context.Context, rawURL string, header http.Header) (SyncConn, error) {
	target, err := normalizeURL(rawURL, "ws", "wss")
	if err != nil {
		return nil, err
	}

	conn, resp, err := d.dialer.DialContext(ctx, target, header)
	if err != nil {
		if resp != nil {
			defer resp.Body.Close()
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			if statusErr := mapStatus(resp.StatusCode, string(body)); statusErr != nil {
				return nil, fmt.Errorf("dial sync channel: %w", statusErr)
			}
		}
		return nil, fmt.Errorf("%w: dial sync channel: %w", ErrTransport, err)
	}

	d.logger.Debug().Str("func", "wsDialer.Dial").Str("url", target).Msg("sync channel connected")
	return newWSConn(conn, d.readTimeout), nil
}

type wsConn struct {
	conn        *websocket.Conn
	readTimeout time.Duration

	// writeMu serializes writers; gorilla allows one concurrent writer.
	writeMu   sync.Mutex
	closeOnce sync.Once
	closed    bool
	closeErr  error
}

func newWSConn(conn *websocket.Conn, readTimeout time.Duration) *wsConn {
	c := &wsConn{conn: conn, readTimeout: readTimeout}
	if readTimeout <= 0 {
		return c
	}

	conn.SetPongHandler(func(string) error {
		return c.extendReadDeadline()
	})
	conn.SetPingHandler(func(data string) error {
		if err := c.extendReadDeadline(); err != nil {
			return err
		}
		err := conn.WriteControl(websocket.PongMessage, []byte(data), time.Now().Add(writeWait))
		if errors.Is(err, websocket.ErrCloseSent) {
			return nil
		}
		var netErr net.Error
		if errors.As(err, &netErr) && netErr.Timeout() {
			return nil
		}
		return err
	})
	return c
}

func (c *wsConn) extendReadDeadline() error {
	if c.readTimeout <= 0 {
		return nil
	}
	return c.conn.SetReadDeadline(time.Now().Add(c.readTimeout))
}

// ReadMessage implements [SyncConn]. Control frames are handled by gorilla
// internally and never returned; they still count as traffic for the read
// deadline.
func (c *wsConn) ReadMessage() ([]byte, error) {
	for {
		if err := c.extendReadDeadline(); err != nil {
			return nil, err
		}
		messageType, data, err := c.conn.ReadMessage()
		if err != nil {
			return nil, err
		}
		if messageType == websocket.TextMessage || messageType == websocket.BinaryMessage {
			return data, nil
		}
	}
}

// WriteJSON implements [SyncConn].
func (c *wsConn) WriteJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if c.closed {
		return ErrConnClosed
	}

	_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return c.conn.WriteJSON(v)
}

// Close implements [SyncConn]. It sends a normal-closure frame before
// closing the socket.
func (c *wsConn) Close() error {
	c.closeOnce.Do(func() {
		c.writeMu.Lock()
		c.closed = true
		_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		_ = c.conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		c.writeMu.Unlock()

		if err := c.conn.Close(); err != nil && !errors.Is(err, net.ErrClosed) {
			c.closeErr = err
		}
	})
	return c.closeErr
}

// IsNormalClose reports whether err is the peer closing the channel in an
// orderly way.
func IsNormalClose(err error) bool {
	return websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway)
}
