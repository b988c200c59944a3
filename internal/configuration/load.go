package configuration

import (
	"encoding/json"
	"fmt"
	"os"

	"go-simpler.org/env"
)

// Load builds a configuration from defaults, then the JSON file at path (if
// non-empty), then BALLOT_* environment variables, and validates the result.
// Every field carries its variable name in an env tag; unset variables leave
// the file or default value in place.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := env.Load(cfg, nil); err != nil {
		return nil, fmt.Errorf("load environment overrides: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
