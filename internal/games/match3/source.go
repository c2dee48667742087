package match3

import (
	"math/rand"

	"github.com/vovakirdan/tui-match3/internal/config"
	m3 "github.com/vovakirdan/tui-match3/internal/match3"
)

// tieredSource draws from the first n kinds, where n grows with difficulty.
// Endless mode uses it to widen the pool as the score climbs.
type tieredSource struct {
	rng        *rand.Rand
	kinds      []m3.ItemKind
	difficulty *config.DifficultyManager
	minKinds   int
	score      func() int
	stepsUsed  func() int
}

func (s *tieredSource) active() int {
	if s.difficulty == nil {
		return len(s.kinds)
	}
	n := s.difficulty.KindCount(s.minKinds, len(s.kinds), s.score(), s.stepsUsed())
	if n > len(s.kinds) {
		n = len(s.kinds)
	}
	return n
}

// RandomKind implements m3.KindSource.
func (s *tieredSource) RandomKind() m3.ItemKind {
	return s.kinds[s.rng.Intn(s.active())]
}
