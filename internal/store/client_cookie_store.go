package store

import (
	"context"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"time"

	"golang.org/x/net/publicsuffix"

	"github.com/MKhiriev/go-storefront/internal/logger"
)

// NewCookieJar returns an in-memory cookie jar that honours public suffix
// boundaries. The adapter and the cookie store share it.
func NewCookieJar() (http.CookieJar, error) {
	return cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
}

// cookieStore is a [Cache] whose entries are cookies of the server origin.
// Values are query-escaped so that arbitrary text survives the cookie value
// grammar. Expiry is enforced by the jar.
type cookieStore struct {
	jar    http.CookieJar
	origin *url.URL
	maxAge int
	logger *logger.Logger
}

// NewCookieStore constructs a [Cache] over jar for the server at address.
// Saved cookies carry Path=/ and Max-Age=ttl (rounded down to seconds,
// at least one).
func NewCookieStore(jar http.CookieJar, address string, ttl time.Duration, log *logger.Logger) (Cache, error) {
	origin, err := cookieOrigin(address)
	if err != nil {
		log.Err(err).Str("func", "NewCookieStore").Str("address", address).Msg("invalid cookie origin")
		return nil, err
	}

	maxAge := int(ttl / time.Second)
	if maxAge < 1 {
		maxAge = 1
	}

	return &cookieStore{jar: jar, origin: origin, maxAge: maxAge, logger: log}, nil
}

func cookieOrigin(address string) (*url.URL, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return nil, fmt.Errorf("%w: empty address", ErrInvalidCookieURL)
	}
	if !strings.HasPrefix(address, "http://") && !strings.HasPrefix(address, "https://") {
		address = "http://" + address
	}
	u, err := url.Parse(address)
	if err != nil || u.Host == "" {
		return nil, fmt.Errorf("%w: %q", ErrInvalidCookieURL, address)
	}
	return &url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/"}, nil
}

func (c *cookieStore) Load(_ context.Context, key string) (string, error) {
	for _, cookie := range c.jar.Cookies(c.origin) {
		if cookie.Name != key {
			continue
		}
		value, err := url.QueryUnescape(cookie.Value)
		if err != nil {
			c.logger.Err(err).Str("func", "*cookieStore.Load").Str("key", key).Msg("error decoding cookie value")
			return "", fmt.Errorf("%w: %w", ErrCacheRead, err)
		}
		return value, nil
	}
	return "", ErrCacheMiss
}

func (c *cookieStore) Save(_ context.Context, key, value string) error {
	c.jar.SetCookies(c.origin, []*http.Cookie{{
		Name:   key,
		Value:  url.QueryEscape(value),
		Path:   "/",
		MaxAge: c.maxAge,
	}})
	return nil
}

func (c *cookieStore) Delete(_ context.Context, key string) error {
	c.jar.SetCookies(c.origin, []*http.Cookie{{
		Name:   key,
		Path:   "/",
		MaxAge: -1,
	}})
	return nil
}
