package match3

import (
	"fmt"
	"strings"
)

var (
	kindA = ItemKind{ID: "a", Name: "Apple", Value: 10, Glyph: 'A'}
	kindB = ItemKind{ID: "b", Name: "Berry", Value: 5, Glyph: 'B'}
	kindC = ItemKind{ID: "c", Name: "Cherry", Value: 3, Glyph: 'C'}
	kindD = ItemKind{ID: "d", Name: "Date", Value: 2, Glyph: 'D'}
	kindE = ItemKind{ID: "e", Name: "Elder", Value: 1, Glyph: 'E'}
	kindF = ItemKind{ID: "f", Name: "Fig", Value: 1, Glyph: 'F'}
	kindG = ItemKind{ID: "g", Name: "Grape", Value: 1, Glyph: 'G'}
)

var kindsByGlyph = map[rune]ItemKind{
	'A': kindA, 'B': kindB, 'C': kindC, 'D': kindD,
	'E': kindE, 'F': kindF, 'G': kindG,
}

// rows parses a layout such as "AAB/CDA". '.' leaves a zero kind.
func rows(layout string) [][]ItemKind {
	var out [][]ItemKind
	for _, line := range strings.Split(layout, "/") {
		row := make([]ItemKind, 0, len(line))
		for _, r := range line {
			row = append(row, kindsByGlyph[r])
		}
		out = append(out, row)
	}
	return out
}

func mustGrid(layout string) *Grid {
	g, err := NewGridFromRows(rows(layout))
	if err != nil {
		panic(err)
	}
	return g
}

// scriptedSource returns the queued kinds first and then a fresh kind per
// call, which never matches anything.
type scriptedSource struct {
	queue []ItemKind
	next  int
}

func (s *scriptedSource) RandomKind() ItemKind {
	if len(s.queue) > 0 {
		k := s.queue[0]
		s.queue = s.queue[1:]
		return k
	}
	s.next++
	id := fmt.Sprintf("u%d", s.next)
	return ItemKind{ID: id, Value: 1}
}

// constSource always returns the same kind.
type constSource struct {
	kind ItemKind
}

func (s constSource) RandomKind() ItemKind { return s.kind }

// exhaustibleSource draws from a small seeded set until its budget runs out,
// then switches to unique kinds.
type exhaustibleSource struct {
	rng    Rand
	kinds  []ItemKind
	budget int
	unique scriptedSource
}

func (s *exhaustibleSource) RandomKind() ItemKind {
	if s.budget > 0 {
		s.budget--
		return s.kinds[s.rng.Intn(len(s.kinds))]
	}
	return s.unique.RandomKind()
}

// eventLog records every hook call as a short string.
type eventLog struct {
	events []string
	score  Score
}

func (l *eventLog) AnimateSwap(a, b *Tile) Signal {
	l.events = append(l.events, fmt.Sprintf("swap %s %s", a.Pos(), b.Pos()))
	return nil
}

func (l *eventLog) AnimateRemoval(tiles []*Tile) Signal {
	l.events = append(l.events, fmt.Sprintf("removal %d %s", len(tiles), tiles[0].Kind().ID))
	return Done()
}

func (l *eventLog) AnimateRefill(tiles []*Tile) Signal {
	l.events = append(l.events, fmt.Sprintf("refill %d %s", len(tiles), tiles[0].Kind().ID))
	return nil
}

func (l *eventLog) TileRemoved(t *Tile) {
	l.events = append(l.events, "particle")
}

func (l *eventLog) GroupRemoved(kind ItemKind, tiles []*Tile) {
	l.events = append(l.events, fmt.Sprintf("sound %s", kind.ID))
}

func (l *eventLog) Notify(kind ItemKind) {
	l.events = append(l.events, "goal "+kind.ID)
}

func (l *eventLog) Add(amount int) {
	l.score.Add(amount)
	l.events = append(l.events, fmt.Sprintf("score %d", amount))
}

func (l *eventLog) SetStepsRemaining(n int) {
	l.events = append(l.events, fmt.Sprintf("steps %d", n))
}

func (l *eventLog) hooks() Hooks {
	return Hooks{Animator: l, Effects: l, Goals: l, Score: l, Steps: l}
}

func (l *eventLog) count(prefix string) int {
	n := 0
	for _, e := range l.events {
		if strings.HasPrefix(e, prefix) {
			n++
		}
	}
	return n
}
