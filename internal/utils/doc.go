// Package utils provides helpers shared by the server and the client:
// HTTP response writing, the resty client constructor and trace id
// generation.
package utils
