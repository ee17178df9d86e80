package http

import (
	"net/http"

	"github.com/klauspost/compress/gzhttp"
)

// withGZip compresses responses for clients that accept gzip.
func (h *Handler) withGZip(next http.Handler) http.Handler {
	return gzhttp.GzipHandler(next)
}
