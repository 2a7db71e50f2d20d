package crypto

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cheap parameters keep the suite fast; production defaults are covered by
// TestEncrypt_DefaultParamsRoundTrip.
func newTestTransform() CredentialTransform {
	return NewCredentialTransform(WithArgonParams(1, 64, 1))
}

// ─── round trip ───────────────────────────────────────────────────────────────

func TestEncryptDecrypt_RoundTrip(t *testing.T) {
	tr := newTestTransform()

	cases := []struct {
		name       string
		plaintext  string
		passphrase string
	}{
		{"ascii", "hunter2", "correct horse battery staple"},
		{"unicode", "пароль-密码-🔑", "ключ"},
		{"empty passphrase", "secret", ""},
		{"long", strings.Repeat("x", 4096), "k"},
		{"separator inside", "a$b$c$d$e", "p$q"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ct, err := tr.Encrypt(tc.plaintext, tc.passphrase)
			require.NoError(t, err)
			assert.NotContains(t, ct, tc.plaintext)

			got, err := tr.Decrypt(ct, tc.passphrase)
			require.NoError(t, err)
			assert.Equal(t, tc.plaintext, got)
		})
	}
}

func TestEncrypt_DefaultParamsRoundTrip(t *testing.T) {
	ct, err := Encrypt("s3cret!", "master")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(ct, "v1$argon2id$t=1,m=65536,p=4$"))

	got, err := Decrypt(ct, "master")
	require.NoError(t, err)
	assert.Equal(t, "s3cret!", got)
}

func TestEncrypt_IsRandomized(t *testing.T) {
	tr := newTestTransform()

	a, err := tr.Encrypt("same", "key")
	require.NoError(t, err)
	b, err := tr.Encrypt("same", "key")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestEncrypt_EmptyPlaintext(t *testing.T) {
	_, err := newTestTransform().Encrypt("", "key")
	assert.ErrorIs(t, err, ErrEncryptionFailure)
}

// ─── rejection ────────────────────────────────────────────────────────────────

func TestDecrypt_WrongPassphrase(t *testing.T) {
	tr := newTestTransform()

	for _, p := range []string{"a", "password123", "пароль"} {
		ct, err := tr.Encrypt(p, "key-one")
		require.NoError(t, err)

		got, err := tr.Decrypt(ct, "key-two")
		require.ErrorIs(t, err, ErrDecryptionFailure)
		assert.Empty(t, got)
	}
}

func TestDecrypt_Malformed(t *testing.T) {
	tr := newTestTransform()
	valid, err := tr.Encrypt("payload", "key")
	require.NoError(t, err)
	parts := strings.Split(valid, "$")

	replace := func(i int, v string) string {
		cp := append([]string(nil), parts...)
		cp[i] = v
		return strings.Join(cp, "$")
	}

	cases := map[string]string{
		"empty":            "",
		"garbage":          "not a ciphertext",
		"missing field":    strings.Join(parts[:4], "$"),
		"extra field":      valid + "$x",
		"bad version":      replace(0, "v2"),
		"bad kdf":          replace(1, "scrypt"),
		"bad params":       replace(2, "t=x,m=1,p=1"),
		"zero time":        replace(2, "t=0,m=64,p=1"),
		"huge memory":      replace(2, "t=1,m=4294967295,p=1"),
		"huge threads":     replace(2, "t=1,m=64,p=300"),
		"bad salt base64":  replace(3, "!!!"),
		"short salt":       replace(3, "AAAA"),
		"bad payload b64":  replace(4, "@@@"),
		"short payload":    replace(4, "AAAA"),
		"other params":     replace(2, "t=2,m=64,p=1"),
		"swapped salt":     replace(3, strings.Repeat("A", 22)),
		"tampered payload": replace(4, flipFirst(parts[4])),
	}

	for name, ct := range cases {
		t.Run(name, func(t *testing.T) {
			got, err := tr.Decrypt(ct, "key")
			require.ErrorIs(t, err, ErrDecryptionFailure)
			assert.Empty(t, got)
		})
	}
}

func flipFirst(s string) string {
	b := []byte(s)
	if b[0] == 'A' {
		b[0] = 'B'
	} else {
		b[0] = 'A'
	}
	return string(b)
}

func TestDecrypt_ErrorDoesNotLeakPlaintext(t *testing.T) {
	tr := newTestTransform()
	ct, err := tr.Encrypt("top-secret-value", "right")
	require.NoError(t, err)

	_, err = tr.Decrypt(ct, "wrong")
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "top-secret-value")
}

// ─── fingerprint ──────────────────────────────────────────────────────────────

func TestFingerprint(t *testing.T) {
	tr := newTestTransform()

	a := tr.Fingerprint("reused", "master", 1)
	b := tr.Fingerprint("reused", "master", 1)
	c := tr.Fingerprint("different", "master", 1)
	d := tr.Fingerprint("reused", "other-master", 1)
	e := tr.Fingerprint("reused", "master", 2)

	assert.Len(t, a, 64)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.NotEqual(t, a, d)
	assert.NotEqual(t, a, e, "same secret of another user must not match")
	assert.NotContains(t, a, "reused")
}

func TestFingerprint_IndependentOfEncryptionCost(t *testing.T) {
	cheap := NewCredentialTransform(WithArgonParams(1, 64, 1))
	costly := NewCredentialTransform(WithArgonParams(2, 128, 2))

	assert.Equal(t, cheap.Fingerprint("reused", "master", 7), costly.Fingerprint("reused", "master", 7))
	assert.Equal(t, Fingerprint("reused", "master", 7), cheap.Fingerprint("reused", "master", 7))
}

func TestNewCredentialTransform_InvalidParamsFallBack(t *testing.T) {
	tests := []struct {
		name         string
		time, memory uint32
		threads      uint8
	}{
		{"zero time", 0, 64, 1},
		{"zero threads", 1, 64, 0},
		{"memory too small", 1, 1, 1},
		{"memory too large", 1, maxArgonMemory + 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewCredentialTransform(WithArgonParams(tt.time, tt.memory, tt.threads))

			assert.NotPanics(t, func() { _ = tr.Fingerprint("secret", "master", 1) })

			ct, err := tr.Encrypt("secret", "master")
			require.NoError(t, err)
			d := defaultArgonParams()
			assert.Contains(t, ct, fmt.Sprintf("$t=%d,m=%d,p=%d$", d.Time, d.Memory, d.Threads))

			plain, err := tr.Decrypt(ct, "master")
			require.NoError(t, err)
			assert.Equal(t, "secret", plain)
		})
	}
}

// ─── concurrency ──────────────────────────────────────────────────────────────

func TestTransform_ConcurrentUse(t *testing.T) {
	tr := newTestTransform()

	var wg sync.WaitGroup
	errs := make(chan error, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			ct, err := tr.Encrypt("concurrent", "key")
			if err != nil {
				errs <- err
				return
			}
			if _, err = tr.Decrypt(ct, "key"); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
}
