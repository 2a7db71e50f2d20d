// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and
// context helpers used by the vault server and client.
//
// Request-scoped loggers travel in the context (zerolog's WithContext) and
// are recovered with FromContext or FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger on stdout tagged with role
// (e.g. "server", "worker"). Every entry carries a timestamp and the
// calling function name in the "func" field.
func NewLogger(role string) *Logger {
	return New(role, os.Stdout)
}

// New is NewLogger with an explicit destination.
func New(role string, w io.Writer) *Logger {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	logger := zerolog.New(w).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{logger}
}

// NewClientLogger returns a logger for the terminal client. The TUI owns the
// terminal, so entries go to go-pass-vault/client.log under the user cache
// directory. When debug is false, or the file cannot be opened, output is
// discarded.
func NewClientLogger(role string, debug bool) *Logger {
	if !debug {
		return Nop()
	}

	dir, err := os.UserCacheDir()
	if err != nil {
		return Nop()
	}
	dir = filepath.Join(dir, "go-pass-vault")
	if err = os.MkdirAll(dir, 0o700); err != nil {
		return Nop()
	}

	f, err := os.OpenFile(filepath.Join(dir, "client.log"), os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return Nop()
	}

	return New(role, f)
}

// Nop returns a *Logger that discards all output.
func Nop() *Logger {
	return &Logger{zerolog.Nop()}
}

// GetChildLogger returns a copy of l that can be enriched with fields
// without affecting l.
func (l *Logger) GetChildLogger() *Logger {
	return &Logger{l.With().Logger()}
}

// FromRequest returns the logger attached to the request context.
func FromRequest(r *http.Request) *Logger {
	return FromContext(r.Context())
}

// FromContext returns the logger attached to ctx, or zerolog's disabled
// default logger when none is attached. It never returns nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
