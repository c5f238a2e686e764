package config

import "os"

// parseEnv overlays values from environment variables:
//
//	FRAMEPEACH_SERVER — auth service base URL
//	FRAMEPEACH_DB     — SQLite file path for local persistence
func parseEnv(config *Config) {
	if endpoint := os.Getenv("FRAMEPEACH_SERVER"); endpoint != "" {
		config.ServerEndpointAddr = endpoint
	}
	if path := os.Getenv("FRAMEPEACH_DB"); path != "" {
		config.ProjectDBPath = path
	}
}
