package match3

import "github.com/zyedidia/generic/mapset"

// MinMatch is the smallest group size that counts as a match.
const MinMatch = 3

// ConnectedGroup returns the maximal set of tiles reachable from origin
// through orthogonal steps over tiles of origin's kind. The origin is always
// first; the rest follow breadth-first in neighbour order, so the result is
// stable for a given grid state.
func ConnectedGroup(origin *Tile) []*Tile {
	if origin == nil {
		return nil
	}

	visited := mapset.New[*Tile]()
	visited.Put(origin)
	group := []*Tile{origin}

	for i := 0; i < len(group); i++ {
		for _, n := range group[i].neighbours {
			if visited.Has(n) || !n.kind.Is(origin.kind) {
				continue
			}
			visited.Put(n)
			group = append(group, n)
		}
	}
	return group
}

// HasAnyMatch reports whether any tile belongs to a group of at least
// MinMatch tiles. Every call rescans the whole grid.
func HasAnyMatch(g *Grid) bool {
	return FirstMatch(g) != nil
}

// FirstMatch scans row-major and returns the group of the first tile whose
// connected group qualifies as a match, or nil.
func FirstMatch(g *Grid) []*Tile {
	// Tiles already covered by a smaller group cannot start a match.
	seen := mapset.New[*Tile]()
	for _, t := range g.tiles {
		if seen.Has(t) {
			continue
		}
		group := ConnectedGroup(t)
		if len(group) >= MinMatch {
			return group
		}
		for _, m := range group {
			seen.Put(m)
		}
	}
	return nil
}

// Move is a pair of adjacent tiles to swap.
type Move struct {
	A, B Pos
}

// FindMove returns the first swap, scanning row-major and trying the right
// neighbour before the one below, that would leave a match on the board.
// The grid is restored before returning.
func FindMove(g *Grid) (Move, bool) {
	for _, t := range g.tiles {
		for _, other := range []*Tile{g.At(t.pos.X+1, t.pos.Y), g.At(t.pos.X, t.pos.Y+1)} {
			if other == nil || other.kind.Is(t.kind) {
				continue
			}
			swapKinds(t, other)
			ok := HasAnyMatch(g)
			swapKinds(t, other)
			if ok {
				return Move{A: t.pos, B: other.pos}, true
			}
		}
	}
	return Move{}, false
}
