// Package config resolves the daemon's settings from CLI flags. Load
// first calls godotenv to copy a dev-time .env file (if any) into the
// process environment, silently skipping a missing file; no setting
// is read from that environment, so flags and their defaults alone
// decide every Config field.
package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config holds every daemon setting resolved from flags.
type Config struct {
	ListenAddr   string
	SnapshotFile string
	PostgresDSN  string
	LogLevel     string
	Seed         uint64
}

// Load reads .env (if present), then parses args against the flag
// set and returns the resolved Config.
func Load(args []string) (Config, error) {
	_ = godotenv.Load() // a missing .env is not an error outside dev

	fs := pflag.NewFlagSet("netsimd", pflag.ContinueOnError)
	listenAddr := fs.String("listen", ":8080", "HTTP listen address for the control surface")
	snapshotFile := fs.String("snapshot-file", "", "path to a JSON snapshot file to load at startup and save to on shutdown")
	postgresDSN := fs.String("postgres-dsn", "", "Postgres connection string for snapshot persistence; empty disables it")
	logLevel := fs.String("log-level", "info", "log level: debug, info, warn, or error")
	seed := fs.Uint64("seed", 1, "PRNG seed for deterministic packet-loss sampling")

	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	return Config{
		ListenAddr:   *listenAddr,
		SnapshotFile: *snapshotFile,
		PostgresDSN:  *postgresDSN,
		LogLevel:     *logLevel,
		Seed:         *seed,
	}, nil
}
