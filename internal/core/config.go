package core

// RuntimeConfig is what the platform hands a game on Reset.
type RuntimeConfig struct {
	ScreenW  int   // terminal columns
	ScreenH  int   // terminal rows
	TickRate int   // Step calls per second
	Seed     int64 // board RNG seed; 0 lets the platform pick one
}

// DefaultConfig returns an 80x24 terminal at 60 ticks per second.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the part of a game the platform acts on: it saves the
// score once GameOver is set and only leaves the game while idle.
type GameState struct {
	Score    int
	GameOver bool
	Paused   bool // paused, too small, or showing a level banner
	Won      bool // every campaign level cleared
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState
	// Level is set on the tick a campaign level ends.
	Level *LevelResult
}

// LevelResult summarises a finished campaign level for storage.
type LevelResult struct {
	LevelID   string
	Score     int
	StepsLeft int
	Cleared   bool
}
