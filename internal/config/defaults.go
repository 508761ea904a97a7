package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/santa2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration. It matches the embedded
// defaults/santa2048.yaml.
func Default() Config {
	return Config{
		Variant:              "classic",
		Dimension:            4,
		WinThreshold:         2048,
		Debounce:             300 * time.Millisecond,
		QueueCapacity:        100,
		SpawnFourProbability: 0.10,
		OpeningTiles:         2,
		DBPath:               "~/.santa2048/scores.db",
		LogLevel:             "info",
		SSH: SSHConfig{
			Address:     ":23234",
			IdleTimeout: 30 * time.Minute,
		},
	}
}
