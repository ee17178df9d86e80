package adapter

import "errors"

var (
	ErrInvalidAddress          = errors.New("invalid adapter http address")
	ErrRequestFailed           = errors.New("request to server failed")
	ErrDecodingResponse        = errors.New("error decoding server response")
	ErrBadRequest              = errors.New("bad request")
	ErrUnauthorized            = errors.New("client unauthorized")
	ErrForbidden               = errors.New("forbidden")
	ErrNotFound                = errors.New("not found")
	ErrConflict                = errors.New("conflict")
	ErrInternalServerError     = errors.New("internal server error")
	ErrBadGateway              = errors.New("bad gateway")
	ErrServiceUnavailable      = errors.New("service unavailable")
	ErrUnexpectedResponseState = errors.New("unexpected response status")
)
