package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGridNeighbours(t *testing.T) {
	g, err := NewGrid(4, 3, &scriptedSource{})
	require.NoError(t, err)
	require.Equal(t, 4, g.Width())
	require.Equal(t, 3, g.Height())

	for _, tile := range g.Tiles() {
		assert.False(t, tile.Kind().IsZero(), "tile %s has no kind", tile.Pos())
		for _, n := range tile.Neighbours() {
			assert.NotSame(t, tile, n, "tile %s is its own neighbour", tile.Pos())
			dx, dy := n.X()-tile.X(), n.Y()-tile.Y()
			assert.Equal(t, 1, abs(dx)+abs(dy), "%s -> %s is not one orthogonal step", tile.Pos(), n.Pos())
			assert.True(t, n.IsNeighbour(tile), "adjacency must be symmetric")
		}
	}

	tests := []struct {
		name string
		pos  Pos
		want []Pos
	}{
		{"corner", P(0, 0), []Pos{P(1, 0), P(0, 1)}},
		{"edge", P(1, 0), []Pos{P(0, 0), P(2, 0), P(1, 1)}},
		{"interior", P(1, 1), []Pos{P(0, 1), P(1, 0), P(2, 1), P(1, 2)}},
		{"far corner", P(3, 2), []Pos{P(2, 2), P(3, 1)}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got []Pos
			for _, n := range g.At(tc.pos.X, tc.pos.Y).Neighbours() {
				got = append(got, n.Pos())
			}
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestNewGridErrors(t *testing.T) {
	tests := []struct {
		name string
		w, h int
		src  KindSource
		want error
	}{
		{"zero width", 0, 3, &scriptedSource{}, ErrInvalidDimensions},
		{"negative height", 3, -1, &scriptedSource{}, ErrInvalidDimensions},
		{"no source", 3, 3, nil, ErrNoKindSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := NewGrid(tc.w, tc.h, tc.src)
			assert.Nil(t, g)
			assert.ErrorIs(t, err, tc.want)
			assert.ErrorIs(t, err, ErrConfiguration)
		})
	}
}

func TestNewGridFromRows(t *testing.T) {
	g, err := NewGridFromRows(rows("ABC/DEF"))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	assert.Equal(t, kindF, g.At(2, 1).Kind())
	assert.Equal(t, "ABC\nDEF", g.String())

	_, err = NewGridFromRows(rows("ABC/DE"))
	assert.ErrorIs(t, err, ErrRaggedRows)
	assert.ErrorIs(t, err, ErrConfiguration)

	_, err = NewGridFromRows(nil)
	assert.ErrorIs(t, err, ErrInvalidDimensions)
}

func TestGridAt(t *testing.T) {
	g := mustGrid("AB/CD")
	assert.Nil(t, g.At(-1, 0))
	assert.Nil(t, g.At(2, 0))
	assert.Nil(t, g.At(0, 2))
	assert.Equal(t, P(1, 1), g.At(1, 1).Pos())
	assert.True(t, g.InBounds(1, 0))
	assert.False(t, g.InBounds(1, 2))
}

func TestGridTilesRowMajor(t *testing.T) {
	g := mustGrid("AB/CD")
	var got []Pos
	for _, tile := range g.Tiles() {
		got = append(got, tile.Pos())
	}
	assert.Equal(t, []Pos{P(0, 0), P(1, 0), P(0, 1), P(1, 1)}, got)
}

func TestSwapReversible(t *testing.T) {
	g := mustGrid("AB")
	a, b := g.At(0, 0), g.At(1, 0)

	swapKinds(a, b)
	assert.Equal(t, kindB, a.Kind())
	assert.Equal(t, kindA, b.Kind())
	assert.Equal(t, P(0, 0), a.Pos(), "swap must not move tiles")

	swapKinds(a, b)
	assert.Equal(t, kindA, a.Kind())
	assert.Equal(t, kindB, b.Kind())
}

func TestGridKindsIsCopy(t *testing.T) {
	g := mustGrid("AB")
	kinds := g.Kinds()
	kinds[0][0] = kindC
	assert.Equal(t, kindA, g.At(0, 0).Kind())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
