package t2048

import (
	"errors"
	"testing"

	"github.com/vovakirdan/santa2048/internal/config"
	"github.com/vovakirdan/santa2048/internal/registry"
)

func TestVariantsRegistered(t *testing.T) {
	for _, v := range Variants {
		got, err := registry.Lookup(v.ID)
		if err != nil {
			t.Errorf("Lookup(%q): %v", v.ID, err)
			continue
		}
		if got != v {
			t.Errorf("Lookup(%q) = %+v, want %+v", v.ID, got, v)
		}
	}
	if !registry.Exists(DefaultVariant) {
		t.Errorf("default variant %q not registered", DefaultVariant)
	}
}

func TestCustomClamps(t *testing.T) {
	v := Custom(1, 2)
	if v.Dimension != 2 || v.WinThreshold != 8 {
		t.Errorf("Custom(1, 2) = %dx%d/%d, want 2x2/8", v.Dimension, v.Dimension, v.WinThreshold)
	}
	if v.ID != config.CustomVariant {
		t.Errorf("ID = %q, want %q", v.ID, config.CustomVariant)
	}
}

func TestVariantFromConfig(t *testing.T) {
	cfg := config.Default()
	v, err := VariantFromConfig(cfg)
	if err != nil || v.ID != "classic" {
		t.Errorf("default config resolved to %+v, %v", v, err)
	}

	cfg.Variant = config.CustomVariant
	cfg.Dimension = 7
	cfg.WinThreshold = 16384
	v, err = VariantFromConfig(cfg)
	if err != nil || v.Dimension != 7 || v.WinThreshold != 16384 {
		t.Errorf("custom config resolved to %+v, %v", v, err)
	}

	cfg.Variant = "nope"
	if _, err := VariantFromConfig(cfg); !errors.Is(err, registry.ErrUnknownVariant) {
		t.Errorf("unknown variant error = %v, want ErrUnknownVariant", err)
	}
}
