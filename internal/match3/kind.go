package match3

import "fmt"

// ItemKind is one entry of the item catalog. Kinds are plain values; tiles
// hold a copy and two kinds match when their IDs are equal.
type ItemKind struct {
	ID    string
	Name  string
	Value int    // score weight per removed tile
	Glyph rune   // single-cell symbol used by renderers
	Color string // renderer colour name, opaque to the engine
}

// Is reports whether k and other are the same kind.
func (k ItemKind) Is(other ItemKind) bool {
	return k.ID == other.ID
}

// IsZero reports whether k is the zero kind (no item).
func (k ItemKind) IsZero() bool {
	return k.ID == ""
}

func (k ItemKind) String() string {
	if k.Name != "" {
		return k.Name
	}
	return k.ID
}

// KindSource supplies random item kinds for initialization and refills.
type KindSource interface {
	RandomKind() ItemKind
}

// Rand is the subset of *math/rand.Rand the catalog needs.
type Rand interface {
	Intn(n int) int
}

// Catalog is an immutable set of item kinds with a uniform random picker.
type Catalog struct {
	kinds []ItemKind
	index map[string]int
	rng   Rand
}

// NewCatalog builds a catalog from kinds. The rng decides every draw, so a
// seeded rng makes boards reproducible.
func NewCatalog(kinds []ItemKind, rng Rand) (*Catalog, error) {
	if len(kinds) == 0 {
		return nil, ErrEmptyCatalog
	}
	if rng == nil {
		return nil, ErrNoKindSource
	}

	c := &Catalog{
		kinds: make([]ItemKind, len(kinds)),
		index: make(map[string]int, len(kinds)),
		rng:   rng,
	}
	for i, k := range kinds {
		if k.ID == "" {
			return nil, fmt.Errorf("%w: kind %d has no id", ErrConfiguration, i)
		}
		if _, dup := c.index[k.ID]; dup {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateKind, k.ID)
		}
		c.kinds[i] = k
		c.index[k.ID] = i
	}
	return c, nil
}

// RandomKind returns a uniformly random kind.
func (c *Catalog) RandomKind() ItemKind {
	return c.kinds[c.rng.Intn(len(c.kinds))]
}

// Kinds returns a copy of the catalog entries in declaration order.
func (c *Catalog) Kinds() []ItemKind {
	out := make([]ItemKind, len(c.kinds))
	copy(out, c.kinds)
	return out
}

// Lookup finds a kind by ID.
func (c *Catalog) Lookup(id string) (ItemKind, bool) {
	i, ok := c.index[id]
	if !ok {
		return ItemKind{}, false
	}
	return c.kinds[i], true
}

// Len returns the number of kinds.
func (c *Catalog) Len() int {
	return len(c.kinds)
}
