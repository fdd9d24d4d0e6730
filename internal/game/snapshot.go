package game

import "github.com/vovakirdan/tui-2048/internal/grid"

// Snapshot is everything the front-end needs to draw one frame.
type Snapshot struct {
	Cells   grid.Grid
	Score   int
	State   State
	MaxTile int
	Moves   int
	Running bool

	Spawned int              // Cell filled by the last spawn, -1 if none
	Merged  [grid.Cells]bool // Cells merged by the last effective move
}

// Snapshot returns the current render feed. Cells is a copy.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Cells:   g.grid,
		Score:   g.score,
		State:   g.state,
		MaxTile: g.grid.MaxTile(),
		Moves:   g.moves,
		Running: g.running,
		Spawned: g.spawned,
		Merged:  g.merged,
	}
}

// EventKind identifies a transition reported by Step.
type EventKind int

const (
	EventNewGame  EventKind = iota // Confirm started a fresh game
	EventGameOver                  // A move ended the game as Won or Lost
)

// Event is a transition that happened while stepping a frame.
// For EventNewGame, State is the state the game was reset from.
// For EventGameOver, the other fields describe the finished game.
type Event struct {
	Kind    EventKind
	State   State
	Score   int
	MaxTile int
	Moves   int
}

// StepResult is returned by Step after each frame.
// Events are listed in the order they happened.
type StepResult struct {
	Snapshot Snapshot
	Events   []Event
}
