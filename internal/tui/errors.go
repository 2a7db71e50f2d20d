// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
	"github.com/MKhiriev/go-pass-vault/internal/crypto"
	"github.com/MKhiriev/go-pass-vault/internal/service"
)

// ErrUserQuit is returned by the TUI flows when the user leaves the program.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns client-side errors into a single line for the status bar.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return "Invalid email or password"
	case errors.Is(err, service.ErrWrongPassword):
		return "Current master password is incorrect"
	case errors.Is(err, service.ErrSessionRequired), errors.Is(err, adapter.ErrUnauthorized):
		return "Session expired, log in again"
	case errors.Is(err, crypto.ErrDecryptionFailure):
		return "Unable to decrypt the secret with the current master password"
	case errors.Is(err, crypto.ErrInvalidPolicy):
		return "Enable at least one character class"
	case errors.Is(err, adapter.ErrConflict):
		return "Already exists"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found"
	case errors.Is(err, adapter.ErrServerUnavailable):
		return "No network or the server is unavailable"
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}
