// Package config handles configuration for the server component,
// including defaults, environment overlay, and command-line flags.
package config

import (
	"errors"
	"time"
)

// Config holds runtime settings for the TaskFlow server.
//
// Fields:
//   - Address: bind address for the public HTTP endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Required.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required; there is
//     deliberately no default, insecure fallback.
//   - TokenValidity: bearer token lifetime.
//   - CORSOrigins: origins allowed by the CORS middleware.
type Config struct {
	Address       string
	DatabaseDSN   string
	SecretKey     string
	TokenValidity time.Duration
	CORSOrigins   []string
}

// LoadDefaults populates Config with development defaults. The database DSN
// and the signing secret have no defaults and must be supplied explicitly.
func (c *Config) LoadDefaults() {
	c.Address = ":8080"
	c.TokenValidity = 7 * 24 * time.Hour
	c.CORSOrigins = []string{"http://localhost:3000"}
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from environment variables and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

// Validate checks that required settings are present. A failure here is a
// startup error: the process must not serve requests without a database or
// a signing secret.
func (c *Config) Validate() error {
	if c.DatabaseDSN == "" {
		return errors.New("config: DATABASE_URL is required")
	}
	if c.SecretKey == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.TokenValidity <= 0 {
		return errors.New("config: token validity must be positive")
	}
	return nil
}
