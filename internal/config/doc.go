// Package config provides configuration loading, merging, and validation
// for the storefront server and client.
//
// Configuration is assembled from the following sources, each one
// overriding the non-zero fields of the previous:
//  0. Built-in defaults
//  1. Environment variables
//  2. Command-line flags
//  3. JSON config file
//
// The main entry points are [GetStructuredConfig] for the server and
// [GetClientConfig] for the terminal client.
package config
