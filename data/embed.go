// Package data embeds the default user directory and product catalog served
// when no file path or database is configured.
package data

import _ "embed"

// Users is the default user directory in JSON.
//
//go:embed users.json
var Users []byte

// Products is the default product catalog in JSON.
//
//go:embed products.json
var Products []byte
