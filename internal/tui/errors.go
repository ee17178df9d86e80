// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-storefront/internal/adapter"
	"github.com/MKhiriev/go-storefront/internal/session"
)

// humanizeError turns an error from the session store or the adapter into a
// message for the status line.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, session.ErrInvalidCredentials):
		return "Invalid username or passphrase"
	case errors.Is(err, session.ErrInactiveUser):
		return "This account is inactive"
	case errors.Is(err, adapter.ErrNotFound):
		return "Not found"
	}

	return humanizeServerUnavailableError(err)
}

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unavailable"
	}

	return err.Error()
}
