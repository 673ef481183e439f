package config

import (
	"os"
	"time"
)

// parseEnv overlays Config fields from environment variables:
//
//	ADDRESS         HTTP bind address (e.g., ":8080")
//	DATABASE_DSN    PostgreSQL DSN
//	SECRET_KEY      JWT HMAC secret
//	TOKEN_VALIDITY  access token lifetime (time.ParseDuration format, e.g. "24h")
//
// Unset variables leave the current values untouched. An unparsable
// TOKEN_VALIDITY is ignored rather than fatal; flags can still override it.
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_VALIDITY"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidityDuration = d
		}
	}
}
