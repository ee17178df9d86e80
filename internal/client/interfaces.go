// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the lifecycle contract for runnable client applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error

	// Render prints the page at path once and returns.
	Render(ctx context.Context, path string) error

	// Close releases client storages.
	Close() error
}
