package config

import (
	"os"
	"strings"
	"time"
)

// parseEnv overlays Config fields from environment variables.
//
// Recognized variables:
//
//	ADDRESS        HTTP bind address (e.g., ":8080")
//	DATABASE_URL   PostgreSQL DSN
//	JWT_SECRET     JWT HMAC secret key
//	TOKEN_VALIDITY bearer token lifetime, Go duration syntax (e.g., "168h")
//	CORS_ORIGINS   comma-separated list of allowed origins
//
// Unset variables leave the current value untouched; a malformed
// TOKEN_VALIDITY is ignored rather than silently zeroing the lifetime.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.Address = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		config.CORSOrigins = splitOrigins(v)
	}
}

func splitOrigins(v string) []string {
	parts := strings.Split(v, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
