// Package registry provides a global registry of board variants.
// Variants register themselves in init() functions so the CLI, the menu and
// the scoreboard can discover them without hardcoded lists.
package registry

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// ErrUnknownVariant is returned by Lookup for an unregistered ID.
var ErrUnknownVariant = errors.New("registry: unknown variant")

// Variant describes a named board preset.
type Variant struct {
	// ID is the stable identifier used on the command line and in score storage.
	ID string

	// Title is the human-readable name shown in menus.
	Title string

	// Dimension is the board side length.
	Dimension int

	// WinThreshold is the tile value that wins the game.
	WinThreshold int
}

// Describe returns a one-line summary such as "4x4, reach 2048".
func (v Variant) Describe() string {
	return fmt.Sprintf("%dx%d, reach %d", v.Dimension, v.Dimension, v.WinThreshold)
}

var (
	variants = make(map[string]Variant)
	mu       sync.RWMutex
)

// Register adds a variant to the registry.
// Panics if a variant with the same ID is already registered.
func Register(v Variant) {
	mu.Lock()
	defer mu.Unlock()

	if _, exists := variants[v.ID]; exists {
		panic(fmt.Sprintf("registry: variant %q already registered", v.ID))
	}
	variants[v.ID] = v
}

// List returns all registered variants sorted by board size, then by ID.
func List() []Variant {
	mu.RLock()
	defer mu.RUnlock()

	result := make([]Variant, 0, len(variants))
	for _, v := range variants {
		result = append(result, v)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Dimension != result[j].Dimension {
			return result[i].Dimension < result[j].Dimension
		}
		return result[i].ID < result[j].ID
	})

	return result
}

// Lookup returns the variant registered under id.
func Lookup(id string) (Variant, error) {
	mu.RLock()
	defer mu.RUnlock()

	v, ok := variants[id]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q", ErrUnknownVariant, id)
	}
	return v, nil
}

// Exists checks if a variant with the given ID is registered.
func Exists(id string) bool {
	mu.RLock()
	defer mu.RUnlock()

	_, ok := variants[id]
	return ok
}
