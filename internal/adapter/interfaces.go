// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter talks to the storefront server on behalf of the client.
//
// The HTTP implementation ([NewHTTPServerAdapter]) shares the client's cookie
// jar, so the auth cookie written by the session store travels with every
// same-origin request. Non-2xx responses are mapped by mapHTTPError to the
// sentinel errors in errors.go and can be matched with [errors.Is].
package adapter

import (
	"context"

	"github.com/MKhiriev/go-storefront/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic access to the storefront server.
type ServerAdapter interface {
	// FetchUsers returns the whole user directory from GET /api/users.
	FetchUsers(ctx context.Context) ([]models.User, error)

	// FetchProducts returns the catalog from GET /api/products.
	FetchProducts(ctx context.Context) ([]models.Product, error)

	// FetchProduct returns one product from GET /api/products/{id}.
	// A missing product yields [ErrNotFound].
	FetchProduct(ctx context.Context, id int64) (models.Product, error)

	// Version returns the server version reported by GET /api/version/.
	Version(ctx context.Context) (string, error)
}
