package config

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func newTestBuilder(args ...string) *configBuilder {
	b := newConfigBuilder()
	b.args = args
	return b
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newTestBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newTestBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterConfigsOverride verifies that a later non-zero field wins and
// a later zero field keeps the earlier value.
func TestBuild_LaterConfigsOverride(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{Version: "1.0.0", StoreName: "first"}},
		&StructuredConfig{App: App{Version: "2.0.0"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "2.0.0", cfg.App.Version)
	assert.Equal(t, "first", cfg.App.StoreName)
}

func TestBuild_InvalidLandingPath(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{Session: Session{LandingPath: "home"}})

	_, err := b.build()
	assert.ErrorIs(t, err, ErrInvalidSessionConfigs)
}

// ── withDefaults ──────────────────────────────────────────────────────────────

func TestWithDefaults_FillsSessionAndCache(t *testing.T) {
	cfg, err := newTestBuilder().withDefaults().build()
	require.NoError(t, err)

	assert.Equal(t, DefaultCookieTTL, cfg.Session.CookieTTL)
	assert.Equal(t, "/", cfg.Session.LandingPath)
	assert.Equal(t, CacheBackendSQLite, cfg.Storage.Cache.Backend)
	assert.Equal(t, DefaultServerAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, DefaultServerAddress, cfg.Adapter.HTTPAddress)
}

// ── withEnv ───────────────────────────────────────────────────────────────────

func TestWithEnv_ReturnsBuilder(t *testing.T) {
	b := newTestBuilder()
	assert.Same(t, b, b.withEnv())
}

func TestWithEnv_OverridesDefaults(t *testing.T) {
	t.Setenv("APP_VERSION", "env-version")
	t.Setenv("SESSION_COOKIE_TTL", "1h")

	cfg, err := newTestBuilder().withDefaults().withEnv().build()
	require.NoError(t, err)

	assert.Equal(t, "env-version", cfg.App.Version)
	assert.Equal(t, time.Hour, cfg.Session.CookieTTL)
	assert.Equal(t, "/", cfg.Session.LandingPath)
}

func TestWithEnv_InvalidDurationSetsError(t *testing.T) {
	t.Setenv("SESSION_COOKIE_TTL", "forever")

	b := newTestBuilder().withEnv()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

// ── withFlags ─────────────────────────────────────────────────────────────────

func TestWithFlags_OverridesEnv(t *testing.T) {
	t.Setenv("ADAPTER_ADDRESS", "env-host:9000")

	cfg, err := newTestBuilder("-server", "flag-host:9100").
		withDefaults().
		withEnv().
		withFlags().
		build()
	require.NoError(t, err)

	assert.Equal(t, "flag-host:9100", cfg.Adapter.HTTPAddress)
}

func TestWithFlags_UnknownFlagSetsError(t *testing.T) {
	b := newTestBuilder("-no-such-flag").withFlags()
	assert.Error(t, b.err)
}

// ── withJSON ──────────────────────────────────────────────────────────────────

func TestWithJSON_NoOp_WhenNoPathSet(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()

	assert.Len(t, b.configs, 1)
	assert.NoError(t, b.err)
}

func TestWithJSON_AppendsConfig_WhenValidFile(t *testing.T) {
	payload := StructuredJSONConfig{}
	payload.App.Version = "json-version"
	payload.Session.CookieTTL = Duration(2 * time.Hour)
	path := writeTempJSONConfig(t, payload)

	cfg, err := newTestBuilder("-c", path).
		withDefaults().
		withFlags().
		withJSON().
		build()
	require.NoError(t, err)

	assert.Equal(t, "json-version", cfg.App.Version)
	assert.Equal(t, 2*time.Hour, cfg.Session.CookieTTL)
}

func TestWithJSON_SetsError_WhenFileMissing(t *testing.T) {
	b := newTestBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/nonexistent/config.json"})
	b.withJSON()

	assert.Error(t, b.err)
}
