// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal storefront runtime.
//
// It wires client storages, the server adapter, the session store, the
// route guard and the terminal UI into a single process lifecycle.
package client
