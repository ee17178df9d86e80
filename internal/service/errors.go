package service

import "errors"

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	ErrProductNotFound  = errors.New("product not found")
	ErrInvalidProductID = errors.New("invalid product id")
	ErrDirectoryFailure = errors.New("user directory is unavailable")
	ErrCatalogFailure   = errors.New("product catalog is unavailable")
)
