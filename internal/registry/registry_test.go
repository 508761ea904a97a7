package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLookup(t *testing.T) {
	v := Variant{ID: "test-tiny", Title: "Tiny", Dimension: 2, WinThreshold: 16}
	Register(v)

	got, err := Lookup("test-tiny")
	require.NoError(t, err)
	assert.Equal(t, v, got)
	assert.True(t, Exists("test-tiny"))
	assert.Equal(t, "2x2, reach 16", got.Describe())

	assert.Panics(t, func() { Register(v) })
}

func TestLookupUnknown(t *testing.T) {
	_, err := Lookup("no-such-variant")
	assert.ErrorIs(t, err, ErrUnknownVariant)
	assert.False(t, Exists("no-such-variant"))
}

func TestListOrder(t *testing.T) {
	Register(Variant{ID: "test-b", Title: "B", Dimension: 7, WinThreshold: 64})
	Register(Variant{ID: "test-a", Title: "A", Dimension: 7, WinThreshold: 64})
	Register(Variant{ID: "test-c", Title: "C", Dimension: 3, WinThreshold: 64})

	list := List()
	require.NotEmpty(t, list)

	for i := 1; i < len(list); i++ {
		prev, cur := list[i-1], list[i]
		if prev.Dimension == cur.Dimension {
			assert.Less(t, prev.ID, cur.ID)
		} else {
			assert.Less(t, prev.Dimension, cur.Dimension)
		}
	}
}
