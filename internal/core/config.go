package core

// GameState is a snapshot of the session that frontends display.
type GameState struct {
	Score    int  // Obstacles passed in the current run
	Best     int  // Best score since the process started
	Tick     int  // Ticks simulated in the current run
	GameOver bool // Whether the run has ended
}
