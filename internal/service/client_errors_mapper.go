// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-pass-vault/internal/adapter"
)

// ErrSessionRequired is returned by client calls made before Login or
// Register.
var ErrSessionRequired = errors.New("not logged in")

// mapAdapterError translates a transport error into the service error a
// server-side caller would have seen, keeping the server's message.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, adapter.ErrBadRequest) {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return err
}
