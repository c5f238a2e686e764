package config

import "os"

// parseEnv overlays values from environment variables:
//
//	PORT         — HTTP listen port (becomes ":" + PORT)
//	JWT_SECRET   — session-signing key
//	DATABASE_DSN — SQLite database path
func parseEnv(config *Config) {
	if port := os.Getenv("PORT"); port != "" {
		config.EndpointAddr = ":" + port
	}
	if secret := os.Getenv("JWT_SECRET"); secret != "" {
		config.SecretKey = secret
	}
	if dsn := os.Getenv("DATABASE_DSN"); dsn != "" {
		config.DatabaseDSN = dsn
	}
}
