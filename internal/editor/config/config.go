// Package config handles configuration for the editor, including defaults,
// JSON overlay, environment variables, and command-line flags.
package config

import "time"

// Config holds runtime settings for the FramePeach editor.
//
// Fields:
//   - ServerEndpointAddr: base URL of the auth service.
//   - ProjectDBPath: path to the SQLite file backing local persistence.
//   - AutosaveInterval: periodic autosave cadence.
//   - DebounceDelay: quiet period after an edit before an autosave fires.
//   - OnlineCheckInterval: how often the server is pinged to track
//     online/offline mode.
type Config struct {
	ServerEndpointAddr  string
	ProjectDBPath       string
	AutosaveInterval    time.Duration
	DebounceDelay       time.Duration
	OnlineCheckInterval time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "http://127.0.0.1:3000"
	c.ProjectDBPath = "framepeach-editor.db"
	c.AutosaveInterval = 30 * time.Second
	c.DebounceDelay = 1 * time.Second
	c.OnlineCheckInterval = 10 * time.Second
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
