// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"io"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/config"
	"golang.org/x/crypto/argon2"
	"golang.org/x/crypto/hkdf"
)

// Default Argon2id parameters recommended by OWASP (2024).
const (
	DefaultArgonTime    uint32 = 1
	DefaultArgonMemory  uint32 = 64 * 1024 // KiB
	DefaultArgonThreads uint8  = 4

	// DefaultMaxEnvelopeAge bounds the embedded timestamp. It is a sanity
	// screen for corrupted or forged timestamps, not a replay defence.
	DefaultMaxEnvelopeAge = 100 * 365 * 24 * time.Hour

	keyLen = 32 // AES-256
)

// noteCipher is the private implementation of [NoteCipher].
type noteCipher struct {
	argonTime    uint32
	argonMemory  uint32
	argonThreads uint8
	maxAge       time.Duration

	now func() time.Time
}

// NewNoteCipher constructs a [NoteCipher]. Zero-valued fields of cfg fall
// back to the package defaults, so a zero [config.Crypto] is valid.
func NewNoteCipher(cfg config.Crypto) NoteCipher {
	c := &noteCipher{
		argonTime:    cfg.ArgonTime,
		argonMemory:  cfg.ArgonMemoryKiB,
		argonThreads: cfg.ArgonThreads,
		maxAge:       cfg.MaxEnvelopeAge,
		now:          time.Now,
	}
	if c.argonTime == 0 {
		c.argonTime = DefaultArgonTime
	}
	if c.argonMemory == 0 {
		c.argonMemory = DefaultArgonMemory
	}
	if c.argonThreads == 0 {
		c.argonThreads = DefaultArgonThreads
	}
	if c.maxAge == 0 {
		c.maxAge = DefaultMaxEnvelopeAge
	}
	return c
}

// DeriveKey implements [NoteCipher].
func (c *noteCipher) DeriveKey(passcode string, salt []byte) ([]byte, error) {
	if passcode == "" {
		return nil, ErrNotConfigured
	}

	ikm := argon2.IDKey([]byte(passcode), salt, c.argonTime, c.argonMemory, c.argonThreads, keyLen)

	key := make([]byte, keyLen)
	if _, err := io.ReadFull(hkdf.New(sha256.New, ikm, nil, []byte(KeyContext)), key); err != nil {
		return nil, fmt.Errorf("expand key: %w", err)
	}
	return key, nil
}

// Encrypt implements [NoteCipher].
func (c *noteCipher) Encrypt(passcode, plaintext string) (string, error) {
	if passcode == "" {
		return "", ErrNotConfigured
	}

	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return "", fmt.Errorf("generate salt: %w", err)
	}
	nonce := make([]byte, nonceSize)
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", fmt.Errorf("generate nonce: %w", err)
	}
	timestamp := encodeTimestamp(c.now())

	gcm, err := c.newGCM(passcode, salt)
	if err != nil {
		return "", err
	}

	env := envelope{
		version:   VersionV2,
		salt:      salt,
		nonce:     nonce,
		timestamp: timestamp,
		payload:   gcm.Seal(nil, nonce, []byte(plaintext), timestamp),
	}
	return base64.StdEncoding.EncodeToString(env.marshal()), nil
}

// Decrypt implements [NoteCipher].
func (c *noteCipher) Decrypt(passcode, encoded string) (string, error) {
	if passcode == "" {
		return "", ErrNotConfigured
	}

	blob, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", fmt.Errorf("%w: decode base64: %v", ErrInvalidFormat, err)
	}

	env, err := parseEnvelope(blob)
	if err != nil {
		return "", err
	}

	gcm, err := c.newGCM(passcode, env.salt)
	if err != nil {
		return "", err
	}

	plaintext, err := gcm.Open(nil, env.nonce, env.payload, env.timestamp)
	if err != nil {
		return "", ErrAuthentication
	}

	// The timestamp is only trusted once the tag has been verified.
	if sealedAt := decodeTimestamp(env.timestamp); c.now().Sub(sealedAt) > c.maxAge {
		return "", fmt.Errorf("%w: sealed at %s", ErrStaleEnvelope, sealedAt.UTC().Format(time.RFC3339))
	}

	return string(plaintext), nil
}

func (c *noteCipher) newGCM(passcode string, salt []byte) (cipher.AEAD, error) {
	key, err := c.DeriveKey(passcode, salt)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
