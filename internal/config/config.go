// Package config provides YAML-based configuration loading with environment
// overrides for santa2048.
package config

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// CustomVariant selects the board from Dimension and WinThreshold instead of
// a registered preset.
const CustomVariant = "custom"

// Config is the complete runtime configuration.
type Config struct {
	Variant      string `yaml:"variant" env:"SANTA2048_VARIANT" env-description:"board preset (classic, mini, big, huge, custom)"`
	Dimension    int    `yaml:"dimension" env:"SANTA2048_DIMENSION" env-description:"board side for the custom variant"`
	WinThreshold int    `yaml:"win_threshold" env:"SANTA2048_WIN_THRESHOLD" env-description:"winning tile for the custom variant"`

	Debounce      time.Duration `yaml:"debounce" env:"SANTA2048_DEBOUNCE" env-description:"pause after a board-changing move"`
	QueueCapacity int           `yaml:"queue_capacity" env:"SANTA2048_QUEUE_CAPACITY" env-description:"maximum number of waiting moves"`

	SpawnFourProbability float64 `yaml:"spawn_four_probability" env:"SANTA2048_SPAWN_FOUR_PROBABILITY" env-description:"chance a spawned tile is a 4"`
	OpeningTiles         int     `yaml:"opening_tiles" env:"SANTA2048_OPENING_TILES" env-description:"tiles placed at the start of a game"`

	DBPath   string `yaml:"db_path" env:"SANTA2048_DB_PATH" env-description:"path to the scores database"`
	LogLevel string `yaml:"log_level" env:"SANTA2048_LOG_LEVEL" env-description:"debug, info, warn or error"`

	SSH SSHConfig `yaml:"ssh"`
}

// SSHConfig configures the `serve` command.
type SSHConfig struct {
	Address     string        `yaml:"address" env:"SANTA2048_SSH_ADDRESS" env-description:"listen address for serve"`
	HostKeyPath string        `yaml:"host_key_path" env:"SANTA2048_SSH_HOST_KEY" env-description:"SSH host key path"`
	IdleTimeout time.Duration `yaml:"idle_timeout" env:"SANTA2048_SSH_IDLE_TIMEOUT" env-description:"idle connection timeout"`
}

// Validate rejects values no component can work with. Board dimension and
// win threshold below their minimums are clamped by the engine rather than
// rejected here.
func (c Config) Validate() error {
	switch {
	case c.Variant == "":
		return fmt.Errorf("%w: variant must not be empty", ErrInvalid)
	case c.Debounce < 0:
		return fmt.Errorf("%w: debounce %s is negative", ErrInvalid, c.Debounce)
	case c.QueueCapacity < 1:
		return fmt.Errorf("%w: queue_capacity %d must be at least 1", ErrInvalid, c.QueueCapacity)
	case c.SpawnFourProbability < 0 || c.SpawnFourProbability > 1:
		return fmt.Errorf("%w: spawn_four_probability %v outside [0, 1]", ErrInvalid, c.SpawnFourProbability)
	case c.OpeningTiles < 0:
		return fmt.Errorf("%w: opening_tiles %d is negative", ErrInvalid, c.OpeningTiles)
	case c.SSH.IdleTimeout < 0:
		return fmt.Errorf("%w: ssh.idle_timeout %s is negative", ErrInvalid, c.SSH.IdleTimeout)
	}
	return nil
}
