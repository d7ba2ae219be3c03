// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"encoding/binary"
	"time"
)

// Envelope layout, version 0x02:
//
//	[0]      version
//	[1:17]   salt
//	[17:29]  nonce
//	[29:37]  timestamp, unix milliseconds, big-endian
//	[37:]    ciphertext ‖ 16-byte GCM tag
const (
	VersionV2 byte = 0x02

	saltSize      = 16
	nonceSize     = 12
	timestampSize = 8
	tagSize       = 16

	saltOffset      = 1
	nonceOffset     = saltOffset + saltSize
	timestampOffset = nonceOffset + nonceSize
	payloadOffset   = timestampOffset + timestampSize

	// MinEnvelopeSize is the size of an envelope sealing an empty plaintext.
	MinEnvelopeSize = payloadOffset + tagSize
)

// KeyContext is the HKDF info label. Changing it changes every derived key,
// so it is tied to the envelope version.
const KeyContext = "go-note-keeper/v2/aes-256-gcm note key"

type envelope struct {
	version   byte
	salt      []byte
	nonce     []byte
	timestamp []byte
	payload   []byte
}

func (e envelope) marshal() []byte {
	blob := make([]byte, 0, payloadOffset+len(e.payload))
	blob = append(blob, e.version)
	blob = append(blob, e.salt...)
	blob = append(blob, e.nonce...)
	blob = append(blob, e.timestamp...)
	return append(blob, e.payload...)
}

// parseEnvelope checks the version byte before the size so that an envelope
// from a different scheme is reported as such, whatever its length.
func parseEnvelope(blob []byte) (envelope, error) {
	if len(blob) == 0 {
		return envelope{}, ErrInvalidFormat
	}
	if blob[0] != VersionV2 {
		return envelope{}, ErrUnsupportedScheme
	}
	if len(blob) < MinEnvelopeSize {
		return envelope{}, ErrInvalidFormat
	}

	return envelope{
		version:   blob[0],
		salt:      blob[saltOffset:nonceOffset],
		nonce:     blob[nonceOffset:timestampOffset],
		timestamp: blob[timestampOffset:payloadOffset],
		payload:   blob[payloadOffset:],
	}, nil
}

func encodeTimestamp(t time.Time) []byte {
	ts := make([]byte, timestampSize)
	binary.BigEndian.PutUint64(ts, uint64(t.UnixMilli()))
	return ts
}

func decodeTimestamp(ts []byte) time.Time {
	return time.UnixMilli(int64(binary.BigEndian.Uint64(ts)))
}
