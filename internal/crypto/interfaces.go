package crypto

import "github.com/MKhiriev/go-pass-vault/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/credential_transform_mock.go -package=mock

// CredentialTransform is the cryptographic core of the vault.
//
// It turns plaintext secrets into self-describing ciphertexts and back under
// a caller-supplied passphrase, generates random passwords from a policy and
// scores password strength. It knows nothing about users, the network or the
// database; the passphrase is always passed explicitly.
//
// Implementations are stateless and safe for concurrent use.
type CredentialTransform interface {
	// Encrypt seals plaintext under passphrase. Two calls with equal inputs
	// produce different ciphertexts. Returns ErrEncryptionFailure for empty
	// plaintext or when a primitive fails.
	Encrypt(plaintext, passphrase string) (string, error)

	// Decrypt opens a ciphertext produced by Encrypt. Any malformed input or
	// wrong passphrase yields ErrDecryptionFailure; a wrong plaintext is
	// never returned.
	Decrypt(ciphertext, passphrase string) (string, error)

	// Fingerprint returns a deterministic keyed hash of plaintext, used to
	// detect reused passwords without comparing ciphertexts. The key is
	// salted with userID and derived with fixed parameters, so fingerprints
	// stay comparable across releases but not across users.
	Fingerprint(plaintext, passphrase string, userID int64) string

	// GeneratePassword returns a random password satisfying policy, or
	// ErrInvalidPolicy.
	GeneratePassword(policy models.PasswordPolicy) (string, error)

	// ScorePasswordStrength assigns password to one of five strength buckets.
	ScorePasswordStrength(password string) models.StrengthAssessment
}
