// Package config handles runtime configuration for the server: defaults
// overlaid with environment variables.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Config holds runtime settings for the taskboard server.
//
// Fields:
//   - Addr: bind address for the HTTP server.
//   - MongoURI: connection string for the document store holding user accounts.
//   - PGHost / PGPort / PGUser / PGPassword / PGDatabase: relational store
//     holding tasks, configured as discrete settings.
//   - SessionSecret: HMAC secret signing session cookies. Do not use the
//     default in production.
//   - SessionDuration: fixed session lifetime.
//   - SessionActiveDuration: extension window granted when an active session
//     is close to expiry.
type Config struct {
	Addr                  string
	MongoURI              string
	PGHost                string
	PGPort                int
	PGUser                string
	PGPassword            string
	PGDatabase            string
	SessionSecret         string
	SessionDuration       time.Duration
	SessionActiveDuration time.Duration
}

// LoadDefaults populates Config with development defaults. Connection
// settings have no defaults: they must come from the environment.
func (c *Config) LoadDefaults() {
	c.Addr = ":8080"
	c.PGPort = 5432
	c.SessionSecret = "default_secret"
	c.SessionDuration = 30 * time.Minute
	c.SessionActiveDuration = 1 * time.Minute
}

// LoadConfig builds a Config by applying defaults and then overlaying values
// from the environment.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	return cfg
}

// Validate reports missing required connection settings. A non-nil result is
// a fatal startup condition.
func (c *Config) Validate() error {
	var missing []string
	if c.MongoURI == "" {
		missing = append(missing, "MONGO_URI")
	}
	if c.PGHost == "" {
		missing = append(missing, "PGHOST")
	}
	if c.PGUser == "" {
		missing = append(missing, "PGUSER")
	}
	if c.PGDatabase == "" {
		missing = append(missing, "PGDATABASE")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required settings: %v", missing)
	}
	if c.SessionDuration <= 0 || c.SessionActiveDuration <= 0 {
		return errors.New("session durations must be positive")
	}
	return nil
}

// PostgresDSN assembles a pgx connection string from the discrete PG settings.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDatabase)
}
