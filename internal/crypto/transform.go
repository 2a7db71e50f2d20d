// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-pass-vault/models"
)

// Ciphertext layout:
//
//	v1$argon2id$t=<time>,m=<memory>,p=<threads>$<salt>$<nonce‖ciphertext>
//
// Binary fields use unpadded standard base64.
const (
	formatVersion = "v1"
	kdfName       = "argon2id"
	fieldSep      = "$"
)

// fingerprintDomain separates fingerprint keys from encryption keys derived
// from the same passphrase.
const fingerprintDomain = "go-pass-vault/fingerprint/v1"

// fingerprintParams are pinned: changing them would make every stored
// fingerprint incomparable with new ones.
var fingerprintParams = argonParams{Time: 1, Memory: 64 * 1024, Threads: 4}

var b64 = base64.RawStdEncoding

type credentialTransform struct {
	params argonParams
}

// Option customizes a transform built by NewCredentialTransform.
type Option func(*credentialTransform)

// WithArgonParams overrides the Argon2id cost used by Encrypt. Decrypt
// always uses the parameters stored in the ciphertext. Values outside the
// accepted range are ignored and the defaults are kept.
func WithArgonParams(time, memoryKiB uint32, threads uint8) Option {
	return func(c *credentialTransform) {
		c.params = argonParams{Time: time, Memory: memoryKiB, Threads: threads}
	}
}

// NewCredentialTransform returns a CredentialTransform with default Argon2id
// parameters.
func NewCredentialTransform(opts ...Option) CredentialTransform {
	c := &credentialTransform{params: defaultArgonParams()}
	for _, opt := range opts {
		opt(c)
	}
	if !c.params.valid() {
		c.params = defaultArgonParams()
	}
	return c
}

func (c *credentialTransform) Encrypt(plaintext, passphrase string) (string, error) {
	if plaintext == "" {
		return "", fmt.Errorf("%w: empty plaintext", ErrEncryptionFailure)
	}
	salt, err := newSalt()
	if err != nil {
		return "", fmt.Errorf("%w: generate salt: %w", ErrEncryptionFailure, err)
	}

	key := deriveKey(passphrase, salt, c.params)
	blob, err := seal(key, []byte(plaintext))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrEncryptionFailure, err)
	}

	return strings.Join([]string{
		formatVersion,
		kdfName,
		fmt.Sprintf("t=%d,m=%d,p=%d", c.params.Time, c.params.Memory, c.params.Threads),
		b64.EncodeToString(salt),
		b64.EncodeToString(blob),
	}, fieldSep), nil
}

func (c *credentialTransform) Decrypt(ciphertext, passphrase string) (string, error) {
	params, salt, blob, err := parseCiphertext(ciphertext)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}

	key := deriveKey(passphrase, salt, params)
	plaintext, err := open(key, blob)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrDecryptionFailure, err)
	}
	if !utf8.Valid(plaintext) {
		return "", fmt.Errorf("%w: plaintext is not valid utf-8", ErrDecryptionFailure)
	}

	return string(plaintext), nil
}

func (c *credentialTransform) Fingerprint(plaintext, passphrase string, userID int64) string {
	key := deriveKey(passphrase, fingerprintSalt(userID), fingerprintParams)
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(plaintext))
	return hex.EncodeToString(mac.Sum(nil))
}

func fingerprintSalt(userID int64) []byte {
	return binary.BigEndian.AppendUint64([]byte(fingerprintDomain), uint64(userID))
}

func (c *credentialTransform) GeneratePassword(policy models.PasswordPolicy) (string, error) {
	return GeneratePassword(policy)
}

func (c *credentialTransform) ScorePasswordStrength(password string) models.StrengthAssessment {
	return ScorePasswordStrength(password)
}

func parseCiphertext(s string) (argonParams, []byte, []byte, error) {
	var p argonParams

	parts := strings.Split(s, fieldSep)
	if len(parts) != 5 {
		return p, nil, nil, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}
	if parts[0] != formatVersion {
		return p, nil, nil, fmt.Errorf("unsupported version %q", parts[0])
	}
	if parts[1] != kdfName {
		return p, nil, nil, fmt.Errorf("unsupported kdf %q", parts[1])
	}

	var t, m, threads uint32
	n, err := fmt.Sscanf(parts[2], "t=%d,m=%d,p=%d", &t, &m, &threads)
	if err != nil || n != 3 {
		return p, nil, nil, fmt.Errorf("malformed kdf parameters %q", parts[2])
	}
	if threads > maxArgonThreads {
		return p, nil, nil, fmt.Errorf("kdf parameters out of range")
	}
	p = argonParams{Time: t, Memory: m, Threads: uint8(threads)}
	if !p.valid() {
		return p, nil, nil, fmt.Errorf("kdf parameters out of range")
	}

	salt, err := b64.DecodeString(parts[3])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decode salt: %w", err)
	}
	if len(salt) != saltSize {
		return p, nil, nil, fmt.Errorf("salt must be %d bytes", saltSize)
	}

	blob, err := b64.DecodeString(parts[4])
	if err != nil {
		return p, nil, nil, fmt.Errorf("decode payload: %w", err)
	}

	return p, salt, blob, nil
}

var defaultTransform = NewCredentialTransform()

// Encrypt seals plaintext under passphrase with the default parameters.
func Encrypt(plaintext, passphrase string) (string, error) {
	return defaultTransform.Encrypt(plaintext, passphrase)
}

// Decrypt opens a ciphertext produced by Encrypt.
func Decrypt(ciphertext, passphrase string) (string, error) {
	return defaultTransform.Decrypt(ciphertext, passphrase)
}

// Fingerprint returns the reuse-detection fingerprint of plaintext for the
// user userID.
func Fingerprint(plaintext, passphrase string, userID int64) string {
	return defaultTransform.Fingerprint(plaintext, passphrase, userID)
}
