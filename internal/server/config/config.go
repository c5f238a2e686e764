// Package config handles configuration for the auth service, including
// defaults, JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the FramePeach auth service.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseDSN: path to the SQLite database file (modernc driver).
//   - SecretKey: HMAC secret for signing JWTs (HS256). Required in prod,
//     overridden by the JWT_SECRET environment variable.
//   - TokenValidityDuration: session token lifetime.
type Config struct {
	EndpointAddr          string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
}

// LoadDefaults populates Config with development defaults.
// NOTE: The secret key default is insecure and must be overridden.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":3000"
	c.DatabaseDSN = "framepeach.db"
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 1 * time.Hour
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, environment variables, and finally
// command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
