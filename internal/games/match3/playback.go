package match3

import (
	"fmt"

	"github.com/vovakirdan/tui-match3/internal/config"
	m3 "github.com/vovakirdan/tui-match3/internal/match3"
)

// frameKind identifies an animation phase.
type frameKind int

const (
	frameSwap frameKind = iota
	framePop
	frameRefill
)

// frame is one recorded animation. The board resolves a whole move in one
// call, so every barrier is recorded together with the grid as it looked at
// that moment and replayed afterwards, one frame at a time.
type frame struct {
	kind  frameKind
	tiles []m3.Pos
	grid  [][]m3.ItemKind
	ticks int

	// Bookkeeping the HUD reveals when the frame starts playing.
	points   int
	collects map[string]int // goal decrements per kind ID
	spent    int            // steps consumed, shown once the frame has played
	batch    *m3.ItemKind
	sparks   []m3.Pos
}

// recorder implements the board hooks. Score and goal updates go straight
// to the real sinks and are mirrored on the current frame so the HUD can
// hold them back until the matching animation plays.
type recorder struct {
	anim   config.AnimationConfig
	goals  *m3.Goals
	score  *m3.Score
	grid   *m3.Grid // nil while the board is being built
	steps  int      // last step count the board reported
	frames []frame
}

func newRecorder(anim config.AnimationConfig, goals *m3.Goals, score *m3.Score) *recorder {
	return &recorder{anim: anim, goals: goals, score: score}
}

func (r *recorder) record(kind frameKind, ticks int, tiles []*m3.Tile) m3.Signal {
	f := frame{
		kind:  kind,
		tiles: make([]m3.Pos, len(tiles)),
		ticks: ticks,
	}
	if r.grid != nil {
		f.grid = r.grid.Kinds()
	}
	for i, t := range tiles {
		f.tiles[i] = t.Pos()
	}
	r.frames = append(r.frames, f)
	return m3.Done()
}

func (r *recorder) AnimateSwap(a, b *m3.Tile) m3.Signal {
	return r.record(frameSwap, r.anim.SwapTicks, []*m3.Tile{a, b})
}

func (r *recorder) AnimateRemoval(tiles []*m3.Tile) m3.Signal {
	return r.record(framePop, r.anim.PopTicks, tiles)
}

func (r *recorder) AnimateRefill(tiles []*m3.Tile) m3.Signal {
	return r.record(frameRefill, r.anim.RefillTicks, tiles)
}

// take hands over the recorded frames and starts a new recording.
func (r *recorder) take() []frame {
	out := r.frames
	r.frames = nil
	return out
}

func (r *recorder) hooks() m3.Hooks {
	return m3.Hooks{Animator: r, Effects: r, Goals: r, Score: r, Steps: r}
}

func (r *recorder) last() *frame {
	if len(r.frames) == 0 {
		return nil
	}
	return &r.frames[len(r.frames)-1]
}

func (r *recorder) TileRemoved(t *m3.Tile) {
	if f := r.last(); f != nil {
		f.sparks = append(f.sparks, t.Pos())
	}
}

func (r *recorder) GroupRemoved(kind m3.ItemKind, _ []*m3.Tile) {
	if f := r.last(); f != nil {
		k := kind
		f.batch = &k
	}
}

func (r *recorder) Notify(kind m3.ItemKind) {
	before := r.goals.Remaining(kind)
	r.goals.Notify(kind)
	if f := r.last(); f != nil && r.goals.Remaining(kind) < before {
		if f.collects == nil {
			f.collects = make(map[string]int)
		}
		f.collects[kind.ID]++
	}
}

func (r *recorder) Add(amount int) {
	r.score.Add(amount)
	if f := r.last(); f != nil {
		f.points += amount
	}
}

// SetStepsRemaining charges a consumed step to the swap frame that spent it.
func (r *recorder) SetStepsRemaining(n int) {
	if f := r.last(); f != nil && n < r.steps {
		f.spent += r.steps - n
	}
	r.steps = n
}

// playback replays recorded frames tick by tick.
type playback struct {
	frames  []frame
	current int
	elapsed int

	// banner shows the last removed group ("♪ Apple x5 +50").
	banner      string
	bannerTicks int
	bannerLen   int
}

func (p *playback) load(frames []frame, bannerTicks int) {
	p.frames = frames
	p.current = 0
	p.elapsed = 0
	p.bannerLen = bannerTicks
	p.start()
}

// start runs when a frame begins playing.
func (p *playback) start() {
	f := p.frame()
	if f == nil || f.batch == nil {
		return
	}
	p.banner = fmt.Sprintf("♪ %s x%d +%d", f.batch, len(f.tiles), f.points)
	p.bannerTicks = p.bannerLen
}

func (p *playback) active() bool {
	return p.current < len(p.frames)
}

// frame returns the frame on screen, or nil when idle.
func (p *playback) frame() *frame {
	if !p.active() {
		return nil
	}
	return &p.frames[p.current]
}

// progress returns how far the current frame is, 0.0 to 1.0.
func (p *playback) progress() float64 {
	f := p.frame()
	if f == nil || f.ticks <= 0 {
		return 1.0
	}
	v := float64(p.elapsed) / float64(f.ticks)
	if v > 1.0 {
		v = 1.0
	}
	return v
}

// advance moves one tick forward and reports whether frames remain.
func (p *playback) advance() bool {
	if p.bannerTicks > 0 {
		p.bannerTicks--
	}
	if !p.active() {
		return false
	}
	p.elapsed++
	if p.elapsed >= p.frames[p.current].ticks {
		p.current++
		p.elapsed = 0
		p.start()
	}
	return p.active()
}

// pendingPoints sums points of frames not yet started.
func (p *playback) pendingPoints() int {
	total := 0
	for i := p.current + 1; i < len(p.frames); i++ {
		total += p.frames[i].points
	}
	return total
}

// pendingCollects returns goal decrements not yet shown for a kind ID.
func (p *playback) pendingCollects(id string) int {
	n := 0
	for i := p.current + 1; i < len(p.frames); i++ {
		n += p.frames[i].collects[id]
	}
	return n
}

// pendingSteps counts steps spent by frames that have not finished playing.
func (p *playback) pendingSteps() int {
	n := 0
	for i := p.current; i < len(p.frames); i++ {
		n += p.frames[i].spent
	}
	return n
}

func (p *playback) clear() {
	p.frames = nil
	p.current = 0
	p.elapsed = 0
	p.banner = ""
	p.bannerTicks = 0
}
