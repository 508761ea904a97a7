package t2048

import (
	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/engine"
	"github.com/vovakirdan/santa2048/internal/registry"
)

// DefaultVariant is the classic 4x4 board.
const DefaultVariant = "classic"

// Variants lists the built-in board presets.
var Variants = []registry.Variant{
	{ID: "classic", Title: "Classic", Dimension: 4, WinThreshold: 2048},
	{ID: "mini", Title: "Mini", Dimension: 3, WinThreshold: 256},
	{ID: "big", Title: "Big", Dimension: 5, WinThreshold: 4096},
	{ID: "huge", Title: "Huge", Dimension: 6, WinThreshold: 8192},
}

func init() {
	for _, v := range Variants {
		registry.Register(v)
	}
}

// Custom builds an unregistered variant from raw board settings, clamped the
// same way the engine clamps them.
func Custom(dimension, threshold int) registry.Variant {
	return registry.Variant{
		ID:           config.CustomVariant,
		Title:        "Custom",
		Dimension:    max(dimension, engine.MinDimension),
		WinThreshold: max(threshold, engine.MinWinThreshold),
	}
}

// VariantFromConfig resolves the variant named by cfg.
func VariantFromConfig(cfg config.Config) (registry.Variant, error) {
	if cfg.Variant == config.CustomVariant {
		return Custom(cfg.Dimension, cfg.WinThreshold), nil
	}
	return registry.Lookup(cfg.Variant)
}
