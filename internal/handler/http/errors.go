// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used while reading the request itself, before any service
// is called. Callers can match against them with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// request carries no "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader is returned when the header is not of the
	// form "Bearer <token>".
	ErrInvalidAuthorizationHeader = errors.New("invalid `Authorization` header")

	// ErrInvalidPathID is returned when an {id} URL parameter is not a
	// positive integer.
	ErrInvalidPathID = errors.New("invalid id in request path")

	// ErrInvalidQueryParam is returned for a malformed query string value.
	ErrInvalidQueryParam = errors.New("invalid query parameter")
)
