// Package match3 implements the tile-matching board engine: a fixed grid of
// tiles holding item kinds, flood-fill match detection, and the resolution
// loop that swaps, evaluates, cascades and refills.
//
// The package has no terminal or rendering dependencies. Everything visual
// (animation, particles, sound, counters) is reached through the hook
// interfaces in hooks.go, and randomness comes from an injected KindSource.
package match3
