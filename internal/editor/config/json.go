package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/framepeach/framepeach/internal/flagx"
	"github.com/framepeach/framepeach/internal/timex"
)

// JsonConfig defines a configuration structure tailored for JSON
// unmarshalling. It uses timex.Duration for interval fields, which allows
// parsing both string values such as "30s" and integer nanoseconds.
//
// This struct is an intermediate DTO used only for reading JSON
// configuration files. After unmarshalling, its fields are copied into the
// runtime Config struct which uses time.Duration.
type JsonConfig struct {
	ServerEndpointAddr  string         `json:"server_endpoint_addr"`
	ProjectDBPath       string         `json:"project_db_path"`
	AutosaveInterval    timex.Duration `json:"autosave_interval"`
	DebounceDelay       timex.Duration `json:"debounce_delay"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
}

// parseJson loads configuration values from a JSON file into the provided
// Config instance. The file path is taken from the -c or -config
// command-line flags; if neither is set, no JSON file is loaded. If the
// file cannot be read or contains invalid JSON, the function panics.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	err = json.Unmarshal(file, c)
	if err != nil {
		panic(err)
	}

	config.ServerEndpointAddr = c.ServerEndpointAddr
	config.ProjectDBPath = c.ProjectDBPath
	config.AutosaveInterval = time.Duration(c.AutosaveInterval.Duration)
	config.DebounceDelay = time.Duration(c.DebounceDelay.Duration)
	config.OnlineCheckInterval = time.Duration(c.OnlineCheckInterval.Duration)
}
