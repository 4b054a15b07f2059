package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags_AllFlags(t *testing.T) {
	cfg, err := parseFlags([]string{
		"-a", "127.0.0.1:9000",
		"-d", "saves.db",
		"-config", "/etc/spellbook.json",
		"-static-dir", "public",
		"-request-timeout", "15s",
		"-spell-api", "http://localhost:3000/api",
		"-spell-api-timeout", "3s",
		"-session-sign-key", "secret",
		"-session-issuer", "issuer",
		"-session-ttl", "2h",
		"-session-sweep-interval", "-1s",
		"-log-level", "warn",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, "saves.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "/etc/spellbook.json", cfg.JSONFilePath)
	assert.Equal(t, "public", cfg.Server.StaticDir)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:3000/api", cfg.Adapter.SpellAPIURL)
	assert.Equal(t, 3*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "secret", cfg.App.SessionSignKey)
	assert.Equal(t, "issuer", cfg.App.SessionIssuer)
	assert.Equal(t, 2*time.Hour, cfg.App.SessionTTL)
	assert.Equal(t, -time.Second, cfg.Workers.SessionSweepInterval)
	assert.Equal(t, "warn", cfg.App.LogLevel)
}

func TestParseFlags_NoFlagsLeavesZeroValues(t *testing.T) {
	cfg, err := parseFlags(nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestParseFlags_InvalidAddress(t *testing.T) {
	_, err := parseFlags([]string{"-a", "not-an-address"})
	assert.Error(t, err)
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8000", want: "localhost:8000"},
		{name: "ip", input: "10.0.0.1:80", want: "10.0.0.1:80"},
		{name: "empty host", input: ":8000", want: ":8000"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "port not a number", input: "localhost:http", wantErr: true},
		{name: "bad host", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestNetAddress_StringEmpty(t *testing.T) {
	var a NetAddress
	assert.Equal(t, "", a.String())
}
