package match3

// Signal completes when a collaborator finishes an animation. A nil Signal
// counts as already complete; otherwise the board waits for a receive to
// succeed, normally by the channel being closed.
type Signal <-chan struct{}

var closedSignal = func() Signal {
	ch := make(chan struct{})
	close(ch)
	return ch
}()

// Done returns an already completed Signal.
func Done() Signal {
	return closedSignal
}

func (s Signal) wait() {
	if s != nil {
		<-s
	}
}

// Animator plays the visual part of a resolution. The board blocks on every
// returned Signal before it touches the grid again.
type Animator interface {
	// AnimateSwap runs before the kinds of a and b are exchanged.
	AnimateSwap(a, b *Tile) Signal
	// AnimateRemoval runs while the tiles still hold the removed kind.
	AnimateRemoval(tiles []*Tile) Signal
	// AnimateRefill runs after the tiles received their new kinds.
	AnimateRefill(tiles []*Tile) Signal
}

// Effects receives fire-and-forget notifications for particles and sound.
type Effects interface {
	TileRemoved(t *Tile)
	GroupRemoved(kind ItemKind, tiles []*Tile)
}

// GoalTracker is notified once per removed tile.
type GoalTracker interface {
	Notify(kind ItemKind)
}

// ScoreSink receives kind.Value * groupSize once per removed group.
type ScoreSink interface {
	Add(amount int)
}

// StepDisplay mirrors the remaining step budget.
type StepDisplay interface {
	SetStepsRemaining(n int)
}

// Hooks bundles the board collaborators. Nil fields are replaced with no-ops.
type Hooks struct {
	Animator Animator
	Effects  Effects
	Goals    GoalTracker
	Score    ScoreSink
	Steps    StepDisplay
}

func (h Hooks) withDefaults() Hooks {
	var nop nopHooks
	if h.Animator == nil {
		h.Animator = nop
	}
	if h.Effects == nil {
		h.Effects = nop
	}
	if h.Goals == nil {
		h.Goals = nop
	}
	if h.Score == nil {
		h.Score = nop
	}
	if h.Steps == nil {
		h.Steps = nop
	}
	return h
}

type nopHooks struct{}

func (nopHooks) AnimateSwap(_, _ *Tile) Signal      { return nil }
func (nopHooks) AnimateRemoval(_ []*Tile) Signal    { return nil }
func (nopHooks) AnimateRefill(_ []*Tile) Signal     { return nil }
func (nopHooks) TileRemoved(_ *Tile)                {}
func (nopHooks) GroupRemoved(_ ItemKind, _ []*Tile) {}
func (nopHooks) Notify(_ ItemKind)                  {}
func (nopHooks) Add(_ int)                          {}
func (nopHooks) SetStepsRemaining(_ int)            {}
