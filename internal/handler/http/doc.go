// Package http implements the HTTP transport of the storefront server.
//
// It wires the chi router, the public endpoints (landing page, user
// directory, product catalog, version) and the middleware chain: panic
// recovery, request timeout, trace id, access logging, the advisory request
// filter and response compression.
package http
