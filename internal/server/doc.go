// Package server wires and runs the storefront HTTP server.
//
// It owns the server lifecycle: startup, signal handling and graceful
// shutdown.
package server
