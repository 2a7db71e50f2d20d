// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing error codes and messages shared by the
// HTTP handlers, the middleware and the client adapter.
//
// Codes travel in the "error" field of every error response; messages are
// safe to show to an end user and never contain driver or cipher detail.
package app

// Error codes.
const (
	CodeUnauthorized    = "UNAUTHORIZED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeValidationError = "VALIDATION_ERROR"
	CodeConflict        = "CONFLICT"
	CodeServerError     = "SERVER_ERROR"
	CodeDatabaseError   = "DATABASE_ERROR"
	CodeNetworkError    = "NETWORK_ERROR"
)

// Messages.
const (
	MsgUnauthorized       = "You must be logged in to perform this action"
	MsgForbidden          = "You don't have permission to access this resource"
	MsgNotFound           = "The requested resource was not found"
	MsgValidationError    = "Invalid input provided"
	MsgServerError        = "Something went wrong on our end. Please try again later"
	MsgDatabaseError      = "Unable to process your request. Please try again"
	MsgNetworkError       = "Network error occurred. Please check your connection"
	MsgAlreadyExists      = "This item already exists"
	MsgUserAlreadyExists  = "User already exists"
	MsgInvalidCredentials = "Invalid email or password"
	MsgWrongPassword      = "Current password is incorrect"
	MsgTokenInvalid       = "token is expired or invalid"
	MsgInvalidCategory    = "Category does not exist"
	MsgVaultChanged       = "Your vault changed while re-encrypting. Please try again"
	MsgInvalidID          = "Invalid ID format"
	MsgMethodNotAllowed   = "method not allowed"
)
