package match3

// Goal is one collection target.
type Goal struct {
	Kind      ItemKind
	Target    int
	Remaining int
}

// Goals tracks per-kind collection counters. It implements GoalTracker.
type Goals struct {
	entries []Goal
}

// NewGoals creates a tracker. Negative targets are treated as zero.
func NewGoals(goals ...Goal) *Goals {
	g := &Goals{entries: make([]Goal, 0, len(goals))}
	for _, goal := range goals {
		if goal.Target < 0 {
			goal.Target = 0
		}
		goal.Remaining = goal.Target
		g.entries = append(g.entries, goal)
	}
	return g
}

// Notify decrements every goal for kind, never below zero.
func (g *Goals) Notify(kind ItemKind) {
	for i := range g.entries {
		if g.entries[i].Kind.Is(kind) && g.entries[i].Remaining > 0 {
			g.entries[i].Remaining--
		}
	}
}

// Remaining returns the counter for kind, or 0 when there is no such goal.
func (g *Goals) Remaining(kind ItemKind) int {
	for _, e := range g.entries {
		if e.Kind.Is(kind) {
			return e.Remaining
		}
	}
	return 0
}

// Entries returns a copy of the goals in declaration order.
func (g *Goals) Entries() []Goal {
	out := make([]Goal, len(g.entries))
	copy(out, g.entries)
	return out
}

// Complete reports whether every goal reached zero. A tracker without goals
// is never complete.
func (g *Goals) Complete() bool {
	if len(g.entries) == 0 {
		return false
	}
	for _, e := range g.entries {
		if e.Remaining > 0 {
			return false
		}
	}
	return true
}
