package crypto

import "errors"

var (
	// ErrEncryptionFailure is returned when a secret cannot be encrypted.
	ErrEncryptionFailure = errors.New("encryption failure")

	// ErrDecryptionFailure is returned for a wrong passphrase or a corrupted
	// ciphertext. Both cases are deliberately indistinguishable.
	ErrDecryptionFailure = errors.New("incorrect passphrase or corrupted ciphertext")

	// ErrInvalidPolicy is returned when a password policy has a length out of
	// range or no character class enabled.
	ErrInvalidPolicy = errors.New("invalid password policy")
)
