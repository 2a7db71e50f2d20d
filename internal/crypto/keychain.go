// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"
)

const (
	saltSize = 16
	keySize  = 32 // AES-256
)

// Upper bounds accepted when reading parameters back from a ciphertext.
// A tampered header must not make Decrypt allocate gigabytes.
const (
	maxArgonTime    = 16
	maxArgonMemory  = 256 * 1024 // 256 MiB
	maxArgonThreads = 16
)

var errShortCiphertext = errors.New("ciphertext too short")

// argonParams are the Argon2id cost parameters. They are embedded into every
// ciphertext so they can change without breaking old records.
type argonParams struct {
	Time    uint32
	Memory  uint32 // KiB
	Threads uint8
}

// defaultArgonParams follows the OWASP recommendation:
//   - time cost:   1 iteration
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
func defaultArgonParams() argonParams {
	return argonParams{
		Time:    1,
		Memory:  64 * 1024,
		Threads: 4,
	}
}

func (p argonParams) valid() bool {
	return p.Time >= 1 && p.Time <= maxArgonTime &&
		p.Memory >= 8 && p.Memory <= maxArgonMemory &&
		p.Threads >= 1 && p.Threads <= maxArgonThreads
}

// newSalt reads a fresh random salt from the OS CSPRNG.
func newSalt() ([]byte, error) {
	salt := make([]byte, saltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, err
	}
	return salt, nil
}

// deriveKey stretches passphrase into a 256-bit AES key with Argon2id.
func deriveKey(passphrase string, salt []byte, p argonParams) []byte {
	return argon2.IDKey([]byte(passphrase), salt, p.Time, p.Memory, p.Threads, keySize)
}

// seal encrypts plaintext with key using AES-256-GCM and returns
// nonce ‖ ciphertext.
func seal(key, plaintext []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err = io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, fmt.Errorf("generate nonce: %w", err)
	}

	return gcm.Seal(nonce, nonce, plaintext, nil), nil
}

// open reverses seal. A wrong key or any modification of blob fails the
// GCM authentication check.
func open(key, blob []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonceSize := gcm.NonceSize()
	if len(blob) < nonceSize+gcm.Overhead() {
		return nil, errShortCiphertext
	}

	nonce, ciphertext := blob[:nonceSize], blob[nonceSize:]
	return gcm.Open(nil, nonce, ciphertext, nil)
}

func newGCM(key []byte) (cipher.AEAD, error) {
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
