// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package syncengine keeps the local cache consistent with the remote store
// over a duplex channel.
//
// On every connection the [Engine] sends a handshake carrying the cache's
// cursor, receives the missed history as sync_batch messages, flushes them
// into the cache in one transaction on sync_complete and only then advances
// the cursor. Afterwards it applies realtime_update pushes as they arrive.
// Lost connections are retried with exponential backoff until the attempt
// budget is spent.
//
// Threading: Connect, Disconnect and Shutdown may be called from any
// goroutine and return without waiting for the network. Messages of one
// connection are handled on its read goroutine in receipt order.
package syncengine

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/adapter"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/crypto"
	"github.com/MKhiriev/go-note-keeper/internal/events"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
	"github.com/MKhiriev/go-note-keeper/internal/store"
	"github.com/MKhiriev/go-note-keeper/internal/utils"
	"github.com/MKhiriev/go-note-keeper/models"
)

// Engine is the sync protocol state machine. Construct with [NewEngine].
type Engine struct {
	cfg      config.ClientSync
	url      string
	clientID string

	dialer      adapter.SyncDialer
	cache       store.NoteCache
	cipher      crypto.NoteCipher
	credentials config.Credentials

	events *events.Bus[Event]
	logger *logger.Logger
	now    func() time.Time

	// ctx is cancelled by Shutdown and aborts in-flight dials.
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	mu         sync.Mutex
	state      State
	terminated bool
	// generation invalidates goroutines of a previous Connect once
	// Disconnect or Shutdown ran.
	generation uint64
	session    *session
	policy     *reconnectPolicy
	timer      *time.Timer
}

// NewEngine builds an idle engine. Zero values in cfg fall back to the
// client defaults. The client id is generated once per engine.
func NewEngine(
	cfg config.ClientSync,
	syncURL string,
	dialer adapter.SyncDialer,
	cache store.NoteCache,
	cipher crypto.NoteCipher,
	credentials config.Credentials,
	logger *logger.Logger,
) *Engine {
	cfg = withDefaults(cfg)
	ctx, cancel := context.WithCancel(context.Background())
	clientID := utils.NewUUIDGenerator().Generate()

	return &Engine{
		cfg:         cfg,
		url:         syncURL,
		clientID:    clientID,
		dialer:      dialer,
		cache:       cache,
		cipher:      cipher,
		credentials: credentials,
		events:      events.NewBus[Event]("sync", logger),
		logger:      logger.GetChildLogger(),
		now:         time.Now,
		ctx:         ctx,
		cancel:      cancel,
		state:       StateDisconnected,
		policy:      newReconnectPolicy(cfg.ReconnectInitialDelay, cfg.ReconnectMaxDelay, cfg.MaxReconnectAttempts),
	}
}

func withDefaults(cfg config.ClientSync) config.ClientSync {
	if cfg.HeartbeatInterval <= 0 {
		cfg.HeartbeatInterval = config.DefaultHeartbeatInterval
	}
	if cfg.ReconnectInitialDelay <= 0 {
		cfg.ReconnectInitialDelay = config.DefaultReconnectInitialDelay
	}
	if cfg.ReconnectMaxDelay <= 0 {
		cfg.ReconnectMaxDelay = config.DefaultReconnectMaxDelay
	}
	if cfg.ReconnectMaxDelay < cfg.ReconnectInitialDelay {
		cfg.ReconnectMaxDelay = cfg.ReconnectInitialDelay
	}
	if cfg.MaxReconnectAttempts <= 0 {
		cfg.MaxReconnectAttempts = config.DefaultMaxReconnectAttempts
	}
	return cfg
}

// ClientID returns the id sent in every handshake.
func (e *Engine) ClientID() string {
	return e.clientID
}

// State returns the current state.
func (e *Engine) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Subscribe registers a listener for engine events.
func (e *Engine) Subscribe(buffer int) (<-chan Event, func()) {
	return e.events.Subscribe(buffer)
}

// Connect starts connecting in the background and returns immediately. It
// is a no-op while connecting, connected, syncing or after Shutdown. From
// Reconnecting it cancels the pending timer and dials at once; from Failed it
// starts over with a fresh attempt budget.
func (e *Engine) Connect() {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.terminated || e.state.active() {
		return
	}

	e.stopTimerLocked()
	e.policy.reset()
	e.dialLocked()
}

// Disconnect closes the current connection and cancels any scheduled
// reconnect. The engine can be connected again afterwards.
func (e *Engine) Disconnect() {
	e.mu.Lock()
	if e.terminated {
		e.mu.Unlock()
		return
	}

	e.generation++
	e.stopTimerLocked()
	sess := e.session
	e.session = nil
	e.setStateLocked(StateDisconnected)
	e.mu.Unlock()

	if sess != nil {
		sess.close()
	}
}

// Shutdown stops the engine for good: no dial starts and no event is
// published afterwards. It waits for the engine's goroutines to exit and is
// idempotent. It must not be called from an engine event handler that the
// engine waits on.
func (e *Engine) Shutdown() {
	e.mu.Lock()
	if e.terminated {
		e.mu.Unlock()
		e.wg.Wait()
		return
	}

	e.generation++
	e.stopTimerLocked()
	sess := e.session
	e.session = nil
	e.setStateLocked(StateShutDown)
	e.terminated = true
	e.mu.Unlock()

	e.cancel()
	if sess != nil {
		sess.close()
	}
	e.wg.Wait()
	e.events.Close()

	e.logger.Info().Str("func", "Engine.Shutdown").Msg("sync engine shut down")
}

// dialLocked moves to Connecting and starts a dial goroutine for the
// current generation. e.mu must be held.
func (e *Engine) dialLocked() {
	e.setStateLocked(StateConnecting)
	gen := e.generation

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.run(gen)
	}()
}

// run owns one connection from dial to loss.
func (e *Engine) run(gen uint64) {
	log := e.logger

	header := http.Header{}
	if token := e.credentials.Token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, err := e.dialer.Dial(e.ctx, e.url, header)
	if err != nil {
		log.Warn().Err(err).Str("func", "Engine.run").Msg("sync channel dial failed")
		e.connectionLost(gen, nil, err)
		return
	}

	e.mu.Lock()
	if e.terminated || gen != e.generation {
		e.mu.Unlock()
		_ = conn.Close()
		return
	}
	sess := newSession(e.ctx, conn)
	e.session = sess
	e.mu.Unlock()

	if err = e.sendHandshake(sess); err != nil {
		log.Warn().Err(err).Str("func", "Engine.run").Msg("handshake failed")
		sess.close()
		e.connectionLost(gen, sess, err)
		return
	}

	e.mu.Lock()
	if e.terminated || gen != e.generation {
		e.mu.Unlock()
		sess.close()
		return
	}
	e.policy.reset()
	e.setStateLocked(StateConnected)
	e.wg.Add(1)
	e.mu.Unlock()

	go func() {
		defer e.wg.Done()
		sess.heartbeat(e.cfg.HeartbeatInterval, func(err error) {
			log.Warn().Err(err).Str("func", "Engine.heartbeat").Msg("heartbeat failed")
		})
	}()

	for {
		data, readErr := conn.ReadMessage()
		if readErr != nil {
			err = readErr
			break
		}
		sess.touch()
		e.handleMessage(sess, data)
	}

	sess.close()
	if cause := sess.closeCause(); cause != nil {
		err = cause
	}
	if adapter.IsNormalClose(err) {
		log.Info().Str("func", "Engine.run").Msg("sync channel closed by remote store")
	} else {
		log.Warn().Err(err).Str("func", "Engine.run").Msg("sync channel lost")
	}
	e.connectionLost(gen, sess, err)
}

func (e *Engine) sendHandshake(sess *session) error {
	cursor, err := e.cache.GetCursor(sess.ctx)
	if err != nil {
		// A full replay is safe because upserts are idempotent.
		e.logger.Err(err).Str("func", "Engine.sendHandshake").Msg("failed to read cursor, requesting full history")
		cursor = models.SyncCursor{LastSyncID: models.NoCursor}
	}

	e.logger.Info().
		Str("func", "Engine.sendHandshake").
		Str("client_id", e.clientID).
		Int64("last_sync_id", cursor.LastSyncID).
		Msg("sending handshake")

	return sess.conn.WriteJSON(models.HandshakeMessage{
		Type:       models.MessageHandshake,
		ClientID:   e.clientID,
		LastSyncID: cursor.LastSyncID,
	})
}

// connectionLost moves to Disconnected and schedules the next attempt, or
// to Failed when the budget is spent or retrying cannot help. Calls from a
// stale generation or a session that is no longer current are ignored.
func (e *Engine) connectionLost(gen uint64, sess *session, cause error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.terminated || gen != e.generation || e.session != sess {
		return
	}
	e.session = nil
	e.setStateLocked(StateDisconnected)

	if errors.Is(cause, adapter.ErrInvalidEndpoint) {
		e.failLocked(cause)
		return
	}

	delay, attempt, ok := e.policy.next()
	if !ok {
		e.failLocked(cause)
		return
	}

	e.setStateLocked(StateReconnecting)
	e.timer = time.AfterFunc(delay, func() { e.reconnect(gen) })
	e.events.Publish(Event{Kind: EventReconnectScheduled, Attempt: attempt, Delay: delay, Err: cause})

	e.logger.Info().
		Str("func", "Engine.connectionLost").
		Int("attempt", attempt).
		Dur("delay", delay).
		Msg("reconnect scheduled")
}

func (e *Engine) failLocked(cause error) {
	e.setStateLocked(StateFailed)
	e.events.Publish(Event{Kind: EventReconnectExhausted, Attempt: e.policy.attempts, Err: cause})
	e.logger.Error().
		Err(cause).
		Str("func", "Engine.connectionLost").
		Int("attempts", e.policy.attempts).
		Msg("giving up on the sync channel until the next explicit connect")
}

func (e *Engine) reconnect(gen uint64) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.terminated || gen != e.generation || e.state != StateReconnecting {
		return
	}
	e.timer = nil
	e.dialLocked()
}

func (e *Engine) stopTimerLocked() {
	if e.timer != nil {
		e.timer.Stop()
		e.timer = nil
	}
}

// setStateLocked publishes StateChanged when the state actually changes.
// e.mu must be held.
func (e *Engine) setStateLocked(state State) {
	if e.state == state {
		return
	}
	e.state = state
	e.events.Publish(Event{Kind: EventStateChanged, State: state})
}

// setStateIfCurrent changes the state only while sess is the current session.
func (e *Engine) setStateIfCurrent(sess *session, from, to State) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == sess && e.state == from {
		e.setStateLocked(to)
	}
}

// publishIfCurrent drops events of sessions that were closed by Disconnect
// or Shutdown.
func (e *Engine) publishIfCurrent(sess *session, event Event) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session == sess && !e.terminated {
		e.events.Publish(event)
	}
}
