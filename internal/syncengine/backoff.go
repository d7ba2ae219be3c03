// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package syncengine

import (
	"time"

	"github.com/cenkalti/backoff"
)

// reconnectPolicy yields the delays between reconnect attempts: the initial
// delay doubles on every attempt up to maxDelay, without jitter, and stops
// after maxAttempts.
type reconnectPolicy struct {
	backoff  backoff.BackOff
	attempts int
}

func newReconnectPolicy(initialDelay, maxDelay time.Duration, maxAttempts int) *reconnectPolicy {
	exp := backoff.NewExponentialBackOff()
	exp.InitialInterval = initialDelay
	exp.MaxInterval = maxDelay
	exp.Multiplier = 2
	exp.RandomizationFactor = 0
	exp.MaxElapsedTime = 0
	exp.Reset()

	if maxAttempts < 0 {
		maxAttempts = 0
	}

	return &reconnectPolicy{backoff: backoff.WithMaxRetries(exp, uint64(maxAttempts))}
}

// next returns the delay before the next attempt and its 1-based number, or
// ok=false when attempts are exhausted.
func (p *reconnectPolicy) next() (delay time.Duration, attempt int, ok bool) {
	delay = p.backoff.NextBackOff()
	if delay == backoff.Stop {
		return 0, p.attempts, false
	}
	p.attempts++
	return delay, p.attempts, true
}

func (p *reconnectPolicy) reset() {
	p.backoff.Reset()
	p.attempts = 0
}
