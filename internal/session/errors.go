package session

import "errors"

var (
	// ErrInvalidCredentials means no directory record matches both fields.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInactiveUser means the matching record has active=false.
	ErrInactiveUser = errors.New("user is inactive")

	ErrCacheUnavailable     = errors.New("session cache unavailable")
	ErrParse                = errors.New("malformed session entry")
	ErrDirectoryUnavailable = errors.New("user directory unavailable")
)
