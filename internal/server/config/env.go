package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays configuration from environment variables, loading a
// local .env file first if one exists. Missing variables leave the current
// values untouched.
//
// Recognized variables:
//
//	ADDRESS         HTTP bind address
//	DATABASE_URL    PostgreSQL DSN
//	SECRET_KEY      token signing secret
//	TOKEN_TTL_MIN   token validity, minutes
func parseEnv(config *Config) {
	// Absent .env is not an error; plain env vars still apply.
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("TOKEN_TTL_MIN"); v != "" {
		if minutes, err := strconv.Atoi(v); err == nil {
			config.TokenValidityDuration = time.Duration(minutes) * time.Minute
		}
	}
}
