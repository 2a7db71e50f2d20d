// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks request payloads and domain models before they
// reach storage.
//
// A Validator dispatches on the dynamic type of its input. The optional
// field names restrict validation to a subset of fields, which lets update
// paths check only what they change.
package validators

import "context"

// Validator validates arbitrary input values.
type Validator interface {

	// Validate validates the provided input and optionally
	// restricts validation to specific named fields.
	Validate(context.Context, any, ...string) error
}
