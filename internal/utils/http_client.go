package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a new HTTPClient with a default-configured
// underlying resty.Client. Each call returns an independent client.
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}

// NewHTTPClientWithJar creates an HTTPClient that stores and sends cookies
// through jar. A zero timeout leaves requests unbounded.
func NewHTTPClientWithJar(jar http.CookieJar, timeout time.Duration) *HTTPClient {
	client := resty.New()
	if jar != nil {
		client.SetCookieJar(jar)
	}
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
