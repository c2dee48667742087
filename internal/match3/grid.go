package match3

import (
	"fmt"
	"strings"
)

// Pos is a grid coordinate.
type Pos struct {
	X, Y int
}

// P is shorthand for Pos{X: x, Y: y}.
func P(x, y int) Pos {
	return Pos{X: x, Y: y}
}

func (p Pos) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Tile is one grid cell. Its position and neighbours are fixed when the grid
// is built; only the kind it holds changes.
type Tile struct {
	pos        Pos
	kind       ItemKind
	neighbours []*Tile
}

// Pos returns the tile coordinate.
func (t *Tile) Pos() Pos { return t.pos }

// X returns the column.
func (t *Tile) X() int { return t.pos.X }

// Y returns the row.
func (t *Tile) Y() int { return t.pos.Y }

// Kind returns the item kind currently held by the tile.
func (t *Tile) Kind() ItemKind { return t.kind }

// Neighbours returns the orthogonal neighbours in left, up, right, down order,
// skipping the ones outside the grid. The slice must not be modified.
func (t *Tile) Neighbours() []*Tile { return t.neighbours }

// IsNeighbour reports whether other is orthogonally adjacent to t.
func (t *Tile) IsNeighbour(other *Tile) bool {
	for _, n := range t.neighbours {
		if n == other {
			return true
		}
	}
	return false
}

// swapKinds exchanges the kinds of two tiles. Applying it twice to the same
// pair restores both tiles.
func swapKinds(a, b *Tile) {
	a.kind, b.kind = b.kind, a.kind
}

// Grid is a fixed width x height collection of tiles stored row-major.
type Grid struct {
	width  int
	height int
	tiles  []*Tile
}

// NewGrid builds a grid and fills every tile with a kind drawn from src.
func NewGrid(width, height int, src KindSource) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if src == nil {
		return nil, ErrNoKindSource
	}

	g := newEmptyGrid(width, height)
	for _, t := range g.tiles {
		t.kind = src.RandomKind()
	}
	return g, nil
}

// NewGridFromRows builds a grid from explicit kinds. rows[y][x] is the kind
// at (x, y); every row must have the same length.
func NewGridFromRows(rows [][]ItemKind) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	width := len(rows[0])
	for y, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrRaggedRows, y, len(row), width)
		}
	}

	g := newEmptyGrid(width, len(rows))
	for y, row := range rows {
		for x, k := range row {
			g.tiles[y*width+x].kind = k
		}
	}
	return g, nil
}

func newEmptyGrid(width, height int) *Grid {
	g := &Grid{
		width:  width,
		height: height,
		tiles:  make([]*Tile, width*height),
	}
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.tiles[y*width+x] = &Tile{pos: P(x, y)}
		}
	}
	g.wire()
	return g
}

var neighbourOffsets = [4]Pos{{-1, 0}, {0, -1}, {1, 0}, {0, 1}}

func (g *Grid) wire() {
	for _, t := range g.tiles {
		t.neighbours = make([]*Tile, 0, 4)
		for _, d := range neighbourOffsets {
			if n := g.At(t.pos.X+d.X, t.pos.Y+d.Y); n != nil {
				t.neighbours = append(t.neighbours, n)
			}
		}
	}
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x, y) addresses a tile.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// At returns the tile at (x, y), or nil when out of bounds.
func (g *Grid) At(x, y int) *Tile {
	if !g.InBounds(x, y) {
		return nil
	}
	return g.tiles[y*g.width+x]
}

// Tiles returns all tiles in row-major order (y outer, x inner).
func (g *Grid) Tiles() []*Tile {
	out := make([]*Tile, len(g.tiles))
	copy(out, g.tiles)
	return out
}

// Neighbours returns the fixed neighbour set of t.
func (g *Grid) Neighbours(t *Tile) []*Tile {
	return t.Neighbours()
}

// Kinds returns a copy of the kinds as rows, indexed [y][x].
func (g *Grid) Kinds() [][]ItemKind {
	rows := make([][]ItemKind, g.height)
	for y := range rows {
		rows[y] = make([]ItemKind, g.width)
		for x := range rows[y] {
			rows[y][x] = g.tiles[y*g.width+x].kind
		}
	}
	return rows
}

// String renders the grid with one glyph per tile, falling back to the first
// letter of the kind ID.
func (g *Grid) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < g.width; x++ {
			sb.WriteRune(glyphOf(g.tiles[y*g.width+x].kind))
		}
	}
	return sb.String()
}

func glyphOf(k ItemKind) rune {
	if k.Glyph != 0 {
		return k.Glyph
	}
	for _, r := range k.ID {
		return r
	}
	return '.'
}
