package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset variables
// leave the current value untouched; malformed numeric or duration values are
// ignored the same way.
//
// Recognized variables:
//
//	ADDR                     HTTP bind address (e.g. ":8080")
//	MONGO_URI                document-store connection string
//	PGHOST PGPORT PGUSER PGPASSWORD PGDATABASE
//	                         relational-store connection settings
//	SESSION_SECRET           session cookie signing secret
//	SESSION_DURATION         session lifetime (Go duration, e.g. "30m")
//	SESSION_ACTIVE_DURATION  near-expiry extension window (e.g. "1m")
func parseEnv(c *Config) {
	setString(&c.Addr, "ADDR")
	setString(&c.MongoURI, "MONGO_URI")
	setString(&c.PGHost, "PGHOST")
	setInt(&c.PGPort, "PGPORT")
	setString(&c.PGUser, "PGUSER")
	setString(&c.PGPassword, "PGPASSWORD")
	setString(&c.PGDatabase, "PGDATABASE")
	setString(&c.SessionSecret, "SESSION_SECRET")
	setDuration(&c.SessionDuration, "SESSION_DURATION")
	setDuration(&c.SessionActiveDuration, "SESSION_ACTIVE_DURATION")
}

func setString(dst *string, name string) {
	if v, ok := os.LookupEnv(name); ok && v != "" {
		*dst = v
	}
}

func setInt(dst *int, name string) {
	if v, ok := os.LookupEnv(name); ok {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

func setDuration(dst *time.Duration, name string) {
	if v, ok := os.LookupEnv(name); ok {
		if d, err := time.ParseDuration(v); err == nil {
			*dst = d
		}
	}
}
