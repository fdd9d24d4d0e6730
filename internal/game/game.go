// Package game implements the 2048 controller: it owns the grid, the score
// and the play state, and turns input actions into moves, spawns and
// win/loss transitions.
package game

import (
	"fmt"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// initialTiles is the number of tiles placed on a fresh grid.
const initialTiles = 2

// State represents the play state of a game.
type State int

const (
	StatePlaying State = iota
	StateWon
	StateLost
)

// String returns the state name used in logs and score records.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateLost:
		return "lost"
	default:
		return "unknown"
	}
}

// Terminal reports whether moves are ignored in this state.
func (s State) Terminal() bool {
	return s == StateWon || s == StateLost
}

// Game is a single 2048 session.
type Game struct {
	grid    grid.Grid
	spawner *grid.Spawner
	theme   Theme

	score   int
	moves   int // Moves that changed the grid since the last reset
	state   State
	running bool

	// Highlights of the last effective move
	spawned int // Index of the spawned tile, -1 if none
	merged  [grid.Cells]bool
}

// New creates a game with two starting tiles.
// The seed drives every tile spawn, so equal seeds replay equal games.
func New(seed int64) *Game {
	g := &Game{
		spawner: grid.NewSpawner(seed),
		theme:   DefaultTheme(),
		running: true,
	}
	g.Reset()
	return g
}

// Reset clears the grid, places the starting tiles and zeroes the score.
func (g *Game) Reset() {
	g.grid = grid.Grid{}
	for range initialTiles {
		g.spawner.Spawn(&g.grid)
	}
	g.score = 0
	g.moves = 0
	g.state = StatePlaying
	g.spawned = -1
	g.merged = [grid.Cells]bool{}
	g.evaluate()
}

// Handle processes one action completely before returning.
// Confirm starts a new game from any state, including one in progress.
func (g *Game) Handle(a core.Action) {
	switch a {
	case core.ActionNone:
		return
	case core.ActionMoveLeft:
		g.move(grid.Left)
	case core.ActionMoveRight:
		g.move(grid.Right)
	case core.ActionMoveUp:
		g.move(grid.Up)
	case core.ActionMoveDown:
		g.move(grid.Down)
	case core.ActionConfirm:
		g.Reset()
	case core.ActionCancel:
		g.running = false
	default:
		panic(fmt.Sprintf("game: unhandled action %d", int(a)))
	}

	if err := g.grid.Validate(); err != nil {
		panic(err)
	}
}

// Step applies every action of the frame in delivery order and returns
// the resulting render feed with the transitions it went through.
// Actions after a Cancel are dropped.
func (g *Game) Step(in core.InputFrame) StepResult {
	var res StepResult
	for _, a := range in.Actions() {
		if !g.running {
			break
		}

		prev := g.state
		g.Handle(a)

		switch {
		case a == core.ActionConfirm:
			res.Events = append(res.Events, Event{Kind: EventNewGame, State: prev})
		case g.state != prev && g.state.Terminal():
			res.Events = append(res.Events, Event{
				Kind:    EventGameOver,
				State:   g.state,
				Score:   g.score,
				MaxTile: g.grid.MaxTile(),
				Moves:   g.moves,
			})
		}
	}
	res.Snapshot = g.Snapshot()
	return res
}

// move runs one directional move while the game is in progress.
func (g *Game) move(d grid.Direction) {
	if g.state.Terminal() {
		return
	}

	res := grid.Move(&g.grid, d)
	if res.Moved {
		g.score += res.Score
		g.moves++
		g.merged = res.Merged
		g.spawned, _ = g.spawner.Spawn(&g.grid)
	}

	g.evaluate()
}

// evaluate applies the win and loss rules to the current grid.
// The loss check dry-runs every direction on a copy of the grid.
func (g *Game) evaluate() {
	switch {
	case g.grid.Contains(grid.Target):
		g.state = StateWon
	case g.grid.IsFull() && !grid.CanMove(g.grid):
		g.state = StateLost
	}
}

// State returns the current play state.
func (g *Game) State() State {
	return g.state
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Moves returns the number of effective moves since the last reset.
func (g *Game) Moves() int {
	return g.moves
}

// Grid returns a copy of the current grid.
func (g *Game) Grid() grid.Grid {
	return g.grid
}

// Running reports whether the player is still in the game.
// It turns false after a Cancel action.
func (g *Game) Running() bool {
	return g.running
}

// SetTheme replaces the tile colors used by Render.
func (g *Game) SetTheme(t Theme) {
	g.theme = t
}
