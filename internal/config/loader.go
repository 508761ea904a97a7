package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
	"gopkg.in/yaml.v3"
)

const fileName = "santa2048.yaml"

// Load reads the configuration and applies SANTA2048_* environment overrides.
// Search order: customPath -> ~/.santa2048/config.yaml -> ./configs/santa2048.yaml
// -> embedded default. Files only need to set the keys they change; missing keys
// keep their default values. An explicit customPath that cannot be read or
// parsed is an error; the implicit locations are skipped when unusable.
func Load(customPath string) (Config, string, error) {
	cfg, err := embedded()
	if err != nil {
		return cfg, "", err
	}
	source := "embedded"

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, "", fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, "", fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		source = customPath
	} else {
		for _, path := range searchPaths() {
			data, err := os.ReadFile(path)
			if err != nil {
				continue
			}
			candidate := cfg
			if err := yaml.Unmarshal(data, &candidate); err != nil {
				continue
			}
			cfg, source = candidate, path
			break
		}
	}

	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return cfg, source, fmt.Errorf("config: failed to read environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, source, err
	}
	return cfg, source, nil
}

// embedded decodes the built-in defaults, falling back to Default when the
// embedded file is unusable.
func embedded() (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(defaultYAML, &cfg); err != nil {
		return Default(), nil
	}
	return cfg, nil
}

// searchPaths lists the implicit config locations in priority order.
func searchPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".santa2048", "config.yaml"))
	}
	return append(paths, filepath.Join("configs", fileName))
}

// EnvHelp describes the supported environment overrides.
func EnvHelp() string {
	header := "Environment variables:"
	text, err := cleanenv.GetDescription(&Config{}, &header)
	if err != nil {
		return ""
	}
	return text
}

// Marshal renders cfg as YAML, the format Load reads.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: failed to encode: %w", err)
	}
	return data, nil
}
