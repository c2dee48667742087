package match3

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGoalsFloorAtZero(t *testing.T) {
	g := NewGoals(Goal{Kind: kindA, Target: 2}, Goal{Kind: kindB, Target: 1})

	g.Notify(kindA)
	g.Notify(kindA)
	g.Notify(kindA)
	assert.Equal(t, 0, g.Remaining(kindA))
	assert.False(t, g.Complete())

	g.Notify(kindC)
	assert.Equal(t, 1, g.Remaining(kindB))

	g.Notify(kindB)
	assert.True(t, g.Complete())
	assert.Equal(t, 0, g.Remaining(kindC), "unknown kinds report zero")
}

func TestGoalsNegativeTarget(t *testing.T) {
	g := NewGoals(Goal{Kind: kindA, Target: -4})
	assert.Equal(t, 0, g.Remaining(kindA))
	assert.True(t, g.Complete())
}

func TestGoalsEmptyNeverComplete(t *testing.T) {
	assert.False(t, NewGoals().Complete())
}

func TestGoalsEntriesCopy(t *testing.T) {
	g := NewGoals(Goal{Kind: kindA, Target: 3})
	entries := g.Entries()
	entries[0].Remaining = 0
	assert.Equal(t, 3, g.Remaining(kindA))
	assert.Equal(t, 3, entries[0].Target)
}

func TestScoreMonotonic(t *testing.T) {
	var s Score
	s.Add(10)
	s.Add(-5)
	s.Add(0)
	assert.Equal(t, 10, s.Total())
	s.Reset()
	assert.Equal(t, 0, s.Total())
}
