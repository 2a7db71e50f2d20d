package crypto

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/MKhiriev/go-pass-vault/models"
)

const (
	MinPasswordLength = 8
	MaxPasswordLength = 64
)

// Character classes available to the generator.
const (
	UppercaseChars = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	LowercaseChars = "abcdefghijklmnopqrstuvwxyz"
	NumberChars    = "0123456789"
	SymbolChars    = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// GeneratePassword returns a random password of exactly policy.Length
// characters. Every enabled class contributes at least one character; the
// rest is drawn from the union of enabled classes and the result is shuffled.
// All randomness comes from crypto/rand.
func GeneratePassword(policy models.PasswordPolicy) (string, error) {
	if policy.Length < MinPasswordLength || policy.Length > MaxPasswordLength {
		return "", fmt.Errorf("%w: length must be between %d and %d",
			ErrInvalidPolicy, MinPasswordLength, MaxPasswordLength)
	}

	sets := enabledClasses(policy)
	if len(sets) == 0 {
		return "", fmt.Errorf("%w: at least one character class must be enabled", ErrInvalidPolicy)
	}

	pw, err := generate(policy.Length, sets)
	if err != nil {
		return "", fmt.Errorf("generate password: %w", err)
	}
	return pw, nil
}

func enabledClasses(policy models.PasswordPolicy) []string {
	sets := make([]string, 0, 4)
	if policy.Uppercase {
		sets = append(sets, UppercaseChars)
	}
	if policy.Lowercase {
		sets = append(sets, LowercaseChars)
	}
	if policy.Numbers {
		sets = append(sets, NumberChars)
	}
	if policy.Symbols {
		sets = append(sets, SymbolChars)
	}
	return sets
}

// generate builds the password. When length is smaller than the number of
// sets the shuffled guaranteed characters are truncated, so coverage holds
// only for length >= len(sets).
func generate(length int, sets []string) (string, error) {
	var union string
	for _, s := range sets {
		union += s
	}

	password := make([]byte, 0, max(length, len(sets)))
	for _, s := range sets {
		c, err := randomChar(s)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	for len(password) < length {
		c, err := randomChar(union)
		if err != nil {
			return "", err
		}
		password = append(password, c)
	}

	if err := shuffleBytes(password); err != nil {
		return "", err
	}

	return string(password[:length]), nil
}

func randomChar(set string) (byte, error) {
	idx, err := cryptoRandInt(len(set))
	if err != nil {
		return 0, err
	}
	return set[idx], nil
}

// shuffleBytes is a Fisher-Yates shuffle.
func shuffleBytes(data []byte) error {
	for i := len(data) - 1; i > 0; i-- {
		j, err := cryptoRandInt(i + 1)
		if err != nil {
			return err
		}
		data[i], data[j] = data[j], data[i]
	}
	return nil
}

func cryptoRandInt(n int) (int, error) {
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, err
	}
	return int(v.Int64()), nil
}
