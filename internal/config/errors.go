package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidServerConfigs indicates invalid inbound server settings
	// (for example, missing HTTP address).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, empty DSN). In-memory SQLite DSNs are rejected later by
	// the store when the connection is opened.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")

	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, missing session sign key or unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")

	// ErrInvalidAdapterConfigs indicates invalid reference API settings.
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
)
