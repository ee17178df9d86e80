// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package logger wraps zerolog.Logger with the constructors and context
// helpers used by the storefront server and client.
//
// Loggers are passed around as *Logger; request-scoped loggers (carrying a
// trace id) are attached to a context and recovered with FromContext or
// FromRequest.
package logger

import (
	"context"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Logger is a thin wrapper around zerolog.Logger.
type Logger struct {
	zerolog.Logger
}

// NewLogger returns a JSON logger writing to os.Stdout, tagged with role.
//
// Every entry carries:
//   - "role", the component label (e.g. "storefront-server");
//   - "ts"-style timestamp;
//   - "func", the fully-qualified name of the calling function.
func NewLogger(role string) *Logger {
	return newLogger(role, os.Stdout)
}

// NewClientLogger returns a logger for the terminal client.
//
// The TUI owns the terminal, so entries go to fileName in the directory of
// the executable. When the file cannot be opened the logger falls back to
// os.Stderr.
func NewClientLogger(role, fileName string) *Logger {
	if fileName == "" {
		fileName = "storefront-client.log"
	}

	execPath, _ := os.Executable()
	logPath := filepath.Join(filepath.Dir(execPath), fileName)

	var out io.Writer = os.Stderr
	if f, err := os.OpenFile(logPath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644); err == nil {
		out = f
	}

	return newLogger(role, out)
}

func newLogger(role string, out io.Writer) *Logger {
	zerolog.CallerMarshalFunc = func(pc uintptr, file string, line int) string {
		return runtime.FuncForPC(pc).Name()
	}
	zerolog.CallerFieldName = "func"

	l := zerolog.New(out).With().
		Str("role", role).
		Timestamp().
		Caller().
		Logger()

	return &Logger{l}
}

// SetLevel sets the global log level from its name ("debug", "info", ...).
// Unknown or empty names select debug, which is also the default.
func SetLevel(level string) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

// Nop returns a *Logger that discards all output. Used in tests.
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

// FromContext returns the logger attached to ctx. If none was attached,
// zerolog's default logger is returned, so the result is never nil.
func FromContext(ctx context.Context) *Logger {
	return &Logger{*log.Ctx(ctx)}
}
