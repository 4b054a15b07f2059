// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// spellbook server. It aggregates all sub-configurations and is populated by
// merging values from environment variables, command-line flags, an optional
// JSON file and the built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: version, log level and the
	// session cookie parameters.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational row store.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the settings of the reference spell API client.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background workers.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the version string exposed via /api/version.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// SessionSignKey is the HMAC secret used to sign session cookies.
	// Must be kept confidential.
	// Env: APP_SESSION_SIGN_KEY
	SessionSignKey string `env:"SESSION_SIGN_KEY"`

	// SessionIssuer is the "iss" claim of every session cookie token.
	// Env: APP_SESSION_ISSUER
	SessionIssuer string `env:"SESSION_ISSUER"`

	// SessionTTL is how long an idle session survives (e.g. "24h").
	// Env: APP_SESSION_TTL
	SessionTTL time.Duration `env:"SESSION_TTL"`

	// SessionCookie is the name of the session cookie.
	// Env: APP_SESSION_COOKIE
	SessionCookie string `env:"SESSION_COOKIE"`
}

// Storage groups the configuration for the storage backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend: a "postgres://" or "postgresql://" URI opens
	// PostgreSQL, anything else is treated as an SQLite database file path
	// (e.g. "dnd-saves.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "localhost:8000").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// StaticDir is an optional directory served at "/" (the browser client).
	// Env: SERVER_STATIC_DIR
	StaticDir string `env:"STATIC_DIR"`
}

// Adapter holds configuration of the reference spell API client.
type Adapter struct {
	// SpellAPIURL is the base URL of the reference spell API.
	// Env: ADAPTER_SPELL_API_URL
	SpellAPIURL string `env:"SPELL_API_URL"`

	// RequestTimeout bounds every outbound request to the reference API.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// SessionSweepInterval is how often expired sessions are removed.
	// A negative value disables the sweeper; zero falls back to the default.
	// Env: WORKERS_SESSION_SWEEP_INTERVAL
	SessionSweepInterval time.Duration `env:"SESSION_SWEEP_INTERVAL"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (a source wins over the ones after it):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Defaults
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder(os.Args[1:]).
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
