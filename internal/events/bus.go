// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events provides the channel-based observer used by the cache and
// the sync engine to notify listeners.
//
// Delivery guarantees:
//   - Publish runs on the publisher's goroutine and never blocks: each
//     subscriber has its own buffered channel, and an event that does not
//     fit into a full buffer is dropped for that subscriber and logged.
//   - Events reach a given subscriber in publish order.
//   - After Close, or after a subscriber unsubscribes, its channel is closed
//     and no further events are delivered to it.
package events

import (
	"sync"

	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

// DefaultBuffer is used when Subscribe is called with a non-positive buffer.
const DefaultBuffer = 64

// Bus fans events of type T out to any number of subscribers.
// The zero value is not usable; construct with [NewBus].
type Bus[T any] struct {
	mu     sync.Mutex
	subs   map[uint64]chan T
	nextID uint64
	closed bool

	name   string
	logger *logger.Logger
}

// NewBus creates a Bus. name identifies the bus in drop warnings.
func NewBus[T any](name string, log *logger.Logger) *Bus[T] {
	if log == nil {
		log = logger.Nop()
	}
	return &Bus[T]{
		subs:   make(map[uint64]chan T),
		name:   name,
		logger: log,
	}
}

// Subscribe registers a new subscriber and returns its receive channel along
// with a function that unsubscribes and closes the channel. Calling the
// returned function more than once is safe. Subscribing to a closed bus
// returns an already closed channel.
func (b *Bus[T]) Subscribe(buffer int) (<-chan T, func()) {
	if buffer <= 0 {
		buffer = DefaultBuffer
	}
	ch := make(chan T, buffer)

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		close(ch)
		return ch, func() {}
	}

	id := b.nextID
	b.nextID++
	b.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			if sub, ok := b.subs[id]; ok {
				delete(b.subs, id)
				close(sub)
			}
		})
	}
}

// Publish delivers event to every subscriber without blocking.
func (b *Bus[T]) Publish(event T) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}

	for id, ch := range b.subs {
		select {
		case ch <- event:
		default:
			b.logger.Warn().
				Str("func", "Bus.Publish").
				Str("bus", b.name).
				Uint64("subscriber", id).
				Msg("subscriber buffer full, event dropped")
		}
	}
}

// Subscribers returns the current number of subscribers.
func (b *Bus[T]) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Close closes every subscriber channel. Further publishes are ignored.
// Close is idempotent.
func (b *Bus[T]) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.closed {
		return
	}
	b.closed = true
	for id, ch := range b.subs {
		delete(b.subs, id)
		close(ch)
	}
}
