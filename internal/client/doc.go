// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive client application runtime.
//
// It alternates the terminal login flow and the vault screens for as long as
// the user keeps logging out and back in, and drops the in-memory session
// (including the master password) on exit.
package client
