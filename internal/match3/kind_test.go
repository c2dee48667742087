package match3

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(1))

	_, err := NewCatalog(nil, rng)
	assert.ErrorIs(t, err, ErrEmptyCatalog)

	_, err = NewCatalog([]ItemKind{kindA, kindA}, rng)
	assert.ErrorIs(t, err, ErrDuplicateKind)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewCatalog([]ItemKind{{Name: "nameless"}}, rng)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewCatalog([]ItemKind{kindA}, nil)
	assert.ErrorIs(t, err, ErrNoKindSource)

	c, err := NewCatalog([]ItemKind{kindA, kindB, kindC}, rng)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, []ItemKind{kindA, kindB, kindC}, c.Kinds())

	k, ok := c.Lookup("b")
	assert.True(t, ok)
	assert.Equal(t, kindB, k)
	_, ok = c.Lookup("zzz")
	assert.False(t, ok)
}

func TestCatalogRandomKindCoversAll(t *testing.T) {
	c, err := NewCatalog([]ItemKind{kindA, kindB, kindC}, rand.New(rand.NewSource(7)))
	require.NoError(t, err)

	seen := map[string]int{}
	for i := 0; i < 300; i++ {
		seen[c.RandomKind().ID]++
	}
	assert.Len(t, seen, 3)
	for id, n := range seen {
		assert.Greater(t, n, 50, "kind %s drawn too rarely", id)
	}
}

func TestCatalogSeeded(t *testing.T) {
	draw := func() []string {
		c, err := NewCatalog([]ItemKind{kindA, kindB, kindC, kindD}, rand.New(rand.NewSource(99)))
		require.NoError(t, err)
		var out []string
		for i := 0; i < 20; i++ {
			out = append(out, c.RandomKind().ID)
		}
		return out
	}
	assert.Equal(t, draw(), draw())
}

func TestItemKindIs(t *testing.T) {
	assert.True(t, kindA.Is(ItemKind{ID: "a"}))
	assert.False(t, kindA.Is(kindB))
	assert.True(t, ItemKind{}.IsZero())
	assert.Equal(t, "Apple", kindA.String())
	assert.Equal(t, "x", ItemKind{ID: "x"}.String())
}
