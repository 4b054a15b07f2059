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

func validConfig() *StructuredConfig {
	cfg := defaultConfig()
	cfg.App.SessionSignKey = "secret"
	return cfg
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder([]string{"-a", "localhost:9000"})
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
	assert.Equal(t, []string{"-a", "localhost:9000"}, b.args)
}

// ── build ─────────────────────────────────────────────────────────────────────

func TestBuild_EmptyBuilderFailsValidation(t *testing.T) {
	cfg, err := newConfigBuilder(nil).build()
	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrInvalidServerConfigs)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestBuild_FirstSourceWins(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs,
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:9000"}},
		&StructuredConfig{Server: Server{HTTPAddress: "localhost:7000"}, App: App{SessionSignKey: "secret"}},
		defaultConfig(),
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "secret", cfg.App.SessionSignKey)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
}

// ── withFlags / withJSON ──────────────────────────────────────────────────────

func TestWithFlags_InvalidFlagSetsError(t *testing.T) {
	b := newConfigBuilder([]string{"-unknown"}).withFlags()
	assert.Error(t, b.err)
	assert.Empty(t, b.configs)
}

func TestWithJSON_NoPathIsNoop(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{})
	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithJSON_MissingFileSetsError(t *testing.T) {
	b := newConfigBuilder(nil)
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: "/does/not/exist.json"})
	b.withJSON()
	assert.Error(t, b.err)
}

func TestBuilder_FullChain(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{
			"session_sign_key": "json-secret",
			"session_ttl":      "2h",
		},
		"storage": map[string]any{
			"db": map[string]any{"dsn": "from-json.db"},
		},
	})
	t.Setenv("STORAGE_DB_DATABASE_URI", "from-env.db")

	cfg, err := newConfigBuilder([]string{"-c", path, "-a", "127.0.0.1:8081"}).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
	require.NoError(t, err)

	assert.Equal(t, "from-env.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "127.0.0.1:8081", cfg.Server.HTTPAddress)
	assert.Equal(t, "json-secret", cfg.App.SessionSignKey)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, defaultSpellAPIURL, cfg.Adapter.SpellAPIURL)
	assert.Equal(t, defaultSessionCookie, cfg.App.SessionCookie)
}
