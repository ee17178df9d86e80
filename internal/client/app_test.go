package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-storefront/internal/config"
	"github.com/MKhiriev/go-storefront/internal/logger"
	"github.com/MKhiriev/go-storefront/internal/session"
	"github.com/MKhiriev/go-storefront/internal/store"
	"github.com/MKhiriev/go-storefront/models"
)

var testUsers = []models.User{
	{ID: 1, Name: "Alice", Credentials: models.Credentials{Username: "alice", Passphrase: "pw"}, Active: true},
}

func newStorefrontServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/users", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(testUsers)
	})
	mux.HandleFunc("/api/products", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]models.Product{{ID: 1, Name: "Merlot", Price: 12}})
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newTestApp(t *testing.T, serverURL string) (*App, *miniredis.Miniredis, *bytes.Buffer) {
	t.Helper()

	mr := miniredis.RunT(t)
	cfg := &config.ClientConfig{
		App:     config.App{StoreName: "go-storefront"},
		Adapter: config.Adapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second},
		Storage: config.ClientStorage{Cache: config.Cache{Backend: config.CacheBackendRedis, RedisAddress: mr.Addr()}},
		Session: config.Session{CookieTTL: time.Hour, LandingPath: "/"},
	}

	app, err := NewApp(context.Background(), cfg, models.NewAppBuildInfo("v1", "", ""), logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })

	var out bytes.Buffer
	app.out = &out
	return app, mr, &out
}

// ── NewApp ──

func TestNewApp_UnknownBackend(t *testing.T) {
	cfg := &config.ClientConfig{
		Adapter: config.Adapter{HTTPAddress: "localhost:8080"},
		Storage: config.ClientStorage{Cache: config.Cache{Backend: "memcached"}},
		Session: config.Session{CookieTTL: time.Hour, LandingPath: "/"},
	}

	app, err := NewApp(context.Background(), cfg, models.AppBuildInfo{}, logger.Nop())

	assert.Nil(t, app)
	assert.ErrorIs(t, err, store.ErrUnknownCacheBackend)
}

// ── Render ──

func TestApp_RenderProductsIsPrerendered(t *testing.T) {
	srv := newStorefrontServer(t)
	app, mr, out := newTestApp(t, srv.URL)

	require.NoError(t, app.Render(context.Background(), "/products"))

	assert.Contains(t, out.String(), "Merlot")
	assert.Empty(t, mr.Keys(), "pre-render must not touch the durable cache")
}

func TestApp_RenderDefaultsToHome(t *testing.T) {
	srv := newStorefrontServer(t)
	app, _, out := newTestApp(t, srv.URL)

	require.NoError(t, app.Render(context.Background(), ""))

	assert.Contains(t, out.String(), "Sign in to browse the catalog.")
}

// ── session wiring ──

func TestApp_LoginWritesBothCaches(t *testing.T) {
	srv := newStorefrontServer(t)
	app, mr, _ := newTestApp(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, app.session.Login(ctx, models.Credentials{Username: "alice", Passphrase: "pw"}))

	durable, err := mr.Get(store.RedisKeyPrefix + session.AuthKey)
	require.NoError(t, err)
	var stored models.User
	require.NoError(t, json.Unmarshal([]byte(durable), &stored))
	assert.Equal(t, "pw", stored.Credentials.Passphrase)

	cookie, err := app.storages.Cookie.Load(ctx, session.AuthKey)
	require.NoError(t, err)
	var redacted models.User
	require.NoError(t, json.Unmarshal([]byte(cookie), &redacted))
	assert.Equal(t, "alice", redacted.Credentials.Username)
	assert.Empty(t, redacted.Credentials.Passphrase)
}

func TestApp_SessionSurvivesRestart(t *testing.T) {
	srv := newStorefrontServer(t)
	app, mr, _ := newTestApp(t, srv.URL)
	ctx := context.Background()

	require.NoError(t, app.session.Login(ctx, models.Credentials{Username: "alice", Passphrase: "pw"}))

	cfg := &config.ClientConfig{
		Adapter: config.Adapter{HTTPAddress: srv.URL},
		Storage: config.ClientStorage{Cache: config.Cache{Backend: config.CacheBackendRedis, RedisAddress: mr.Addr()}},
		Session: config.Session{CookieTTL: time.Hour, LandingPath: "/"},
	}
	restarted, err := NewApp(ctx, cfg, models.AppBuildInfo{}, logger.Nop())
	require.NoError(t, err)
	defer restarted.Close()

	_, err = restarted.storages.Cookie.Load(ctx, session.AuthKey)
	require.ErrorIs(t, err, store.ErrCacheMiss, "the cookie jar does not outlive the process")

	assert.True(t, restarted.session.CheckAuth(ctx))
	user, ok := restarted.session.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, int64(1), user.ID)

	cookie, err := restarted.storages.Cookie.Load(ctx, session.AuthKey)
	require.NoError(t, err, "the missing cookie is restored from the durable cache")
	assert.Contains(t, cookie, "alice")
}
