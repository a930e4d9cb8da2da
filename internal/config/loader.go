package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

// PathEnv names the environment variable that points at the YAML file.
const PathEnv = "CRM_CONFIG"

// searchPaths are tried in order when PathEnv is unset.
var searchPaths = []string{"./crm.yaml", "./config/crm.yaml"}

// Load builds the configuration from an optional YAML file, the environment
// and env-default tags, in increasing order of precedence for ENV. A file
// named by CRM_CONFIG must exist; otherwise the first of ./crm.yaml and
// ./config/crm.yaml that exists is used, and none is fine.
func Load() (*Config, error) {
	path, err := configFile()
	if err != nil {
		return nil, err
	}
	return LoadFrom(path)
}

// LoadFrom is Load with an explicit file. An empty path reads the
// environment only.
func LoadFrom(path string) (*Config, error) {
	var cfg Config

	if path == "" {
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	} else if err := cleanenv.ReadConfig(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

func configFile() (string, error) {
	if path, ok := os.LookupEnv(PathEnv); ok && path != "" {
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config: %s=%s: %w", PathEnv, path, err)
		}
		return path, nil
	}

	for _, path := range searchPaths {
		_, err := os.Stat(path)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("config: stat %s: %w", path, err)
		}
	}
	return "", nil
}
