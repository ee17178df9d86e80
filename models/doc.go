// Package models contains the data types shared by the storefront server and
// client: directory users, their credentials, catalog products and build
// metadata.
package models
