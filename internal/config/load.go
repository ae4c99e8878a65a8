package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load starts from Default and overlays the YAML file at path onto it, if
// the file exists. A missing path is not an error — the viewer runs fine
// on defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}
