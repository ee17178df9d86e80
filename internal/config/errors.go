package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates a missing listen address.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAdapterConfigs indicates a missing server address on the
	// client side.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates an unknown cache backend or a
	// backend without its address/file.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidSessionConfigs indicates a non-positive cookie lifetime or a
	// landing path that is not absolute.
	ErrInvalidSessionConfigs = errors.New("invalid session configuration")
)
