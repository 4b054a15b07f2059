package config

import "time"

// defaults mirror the original deployment: port 8000 and the dnd-saves.db
// SQLite file next to the binary.
const (
	defaultHTTPAddress          = "localhost:8000"
	defaultRequestTimeout       = 30 * time.Second
	defaultDSN                  = "dnd-saves.db"
	defaultSpellAPIURL          = "https://www.dnd5eapi.co/api"
	defaultAdapterTimeout       = 10 * time.Second
	defaultLogLevel             = "debug"
	defaultVersion              = "N/A"
	defaultSessionIssuer        = "go-spellbook"
	defaultSessionTTL           = 24 * time.Hour
	defaultSessionCookie        = "spellbook_session"
	defaultSessionSweepInterval = 10 * time.Minute
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:       defaultVersion,
			LogLevel:      defaultLogLevel,
			SessionIssuer: defaultSessionIssuer,
			SessionTTL:    defaultSessionTTL,
			SessionCookie: defaultSessionCookie,
		},
		Storage: Storage{
			DB: DB{DSN: defaultDSN},
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Adapter: Adapter{
			SpellAPIURL:    defaultSpellAPIURL,
			RequestTimeout: defaultAdapterTimeout,
		},
		Workers: Workers{
			SessionSweepInterval: defaultSessionSweepInterval,
		},
	}
}
