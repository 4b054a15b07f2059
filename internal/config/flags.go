package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses all configuration flags from args.
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-d database DSN (SQLite file path or postgres:// URI)
//	-c/-config json file path with configs
//	-static-dir directory with the browser client
//	-request-timeout inbound request timeout (e.g., "30s")
//	-spell-api reference spell API base URL
//	-spell-api-timeout outbound request timeout (e.g., "10s")
//	-session-sign-key session cookie signing key
//	-session-issuer session cookie issuer
//	-session-ttl idle session lifetime (e.g., "24h")
//	-session-sweep-interval expired session sweep interval (e.g., "10m")
//	-log-level zerolog level name
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var databaseDSN string
	var jsonConfigPath string
	var staticDir string
	var requestTimeout time.Duration
	var spellAPIURL string
	var spellAPITimeout time.Duration
	var sessionSignKey string
	var sessionIssuer string
	var sessionTTL time.Duration
	var sessionSweepInterval time.Duration
	var logLevel string

	fs := flag.NewFlagSet("spellbook-server", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&databaseDSN, "d", "", "Database DSN")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&staticDir, "static-dir", "", "Directory with static client files")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Request timeout (e.g., 30s, 1m)")
	fs.StringVar(&spellAPIURL, "spell-api", "", "Reference spell API base URL")
	fs.DurationVar(&spellAPITimeout, "spell-api-timeout", 0, "Reference spell API timeout (e.g., 10s)")
	fs.StringVar(&sessionSignKey, "session-sign-key", "", "Session cookie signing key")
	fs.StringVar(&sessionIssuer, "session-issuer", "", "Session cookie issuer")
	fs.DurationVar(&sessionTTL, "session-ttl", 0, "Idle session lifetime (e.g., 24h)")
	fs.DurationVar(&sessionSweepInterval, "session-sweep-interval", 0, "Expired session sweep interval (e.g., 10m)")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel:       logLevel,
			SessionSignKey: sessionSignKey,
			SessionIssuer:  sessionIssuer,
			SessionTTL:     sessionTTL,
		},
		Storage: Storage{
			DB: DB{
				DSN: databaseDSN,
			},
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			StaticDir:      staticDir,
		},
		Adapter: Adapter{
			SpellAPIURL:    spellAPIURL,
			RequestTimeout: spellAPITimeout,
		},
		Workers: Workers{
			SessionSweepInterval: sessionSweepInterval,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}
	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost"
// or empty, and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}
	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1..65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port

	return nil
}
