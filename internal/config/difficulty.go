package config

import "fmt"

// DifficultyPreset is a named spawn-rate setting.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// Presets lists the presets from easiest to hardest.
func Presets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyNormal, DifficultyHard}
}

// SpawnFourForPreset returns the probability that a spawned tile is a 4.
// More 4s fill the board faster.
func SpawnFourForPreset(preset DifficultyPreset) (float64, error) {
	switch preset {
	case DifficultyEasy:
		return 0.05, nil
	case DifficultyNormal:
		return 0.10, nil
	case DifficultyHard:
		return 0.25, nil
	}
	return 0, fmt.Errorf("%w: unknown difficulty %q", ErrInvalid, preset)
}

// ApplyPreset sets cfg's spawn probability from a difficulty preset.
func ApplyPreset(cfg *Config, preset DifficultyPreset) error {
	p, err := SpawnFourForPreset(preset)
	if err != nil {
		return err
	}
	cfg.SpawnFourProbability = p
	return nil
}
