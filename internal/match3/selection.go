package match3

// Selection holds the zero, one or two tiles picked for a swap.
type Selection struct {
	tiles []*Tile
}

// Len returns how many tiles are selected.
func (s *Selection) Len() int { return len(s.tiles) }

// First returns the first selected tile, or nil.
func (s *Selection) First() *Tile {
	if len(s.tiles) == 0 {
		return nil
	}
	return s.tiles[0]
}

// Second returns the second selected tile, or nil.
func (s *Selection) Second() *Tile {
	if len(s.tiles) < 2 {
		return nil
	}
	return s.tiles[1]
}

// Contains reports whether t is selected.
func (s *Selection) Contains(t *Tile) bool {
	for _, sel := range s.tiles {
		if sel == t {
			return true
		}
	}
	return false
}

// Positions returns the selected coordinates in pick order.
func (s *Selection) Positions() []Pos {
	out := make([]Pos, len(s.tiles))
	for i, t := range s.tiles {
		out[i] = t.pos
	}
	return out
}

// add appends t when allowed: no duplicates, at most two tiles, and the
// second must neighbour the first. Returns false when t was rejected.
func (s *Selection) add(t *Tile) bool {
	switch {
	case t == nil, len(s.tiles) >= 2, s.Contains(t):
		return false
	case len(s.tiles) == 1 && !s.tiles[0].IsNeighbour(t):
		return false
	}
	s.tiles = append(s.tiles, t)
	return true
}

func (s *Selection) clear() {
	s.tiles = s.tiles[:0]
}
