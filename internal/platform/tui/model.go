package tui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/game"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// footerHeight is the number of rows below the game screen (best score and help).
const footerHeight = 2

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// Options configures a game session.
type Options struct {
	Runtime core.RuntimeConfig
	Keys    KeyMap         // Zero value uses DefaultKeyMap
	Theme   game.Theme     // Nil keeps the built-in palette
	Store   *storage.Store // Nil runs without score history
	Logger  *log.Logger    // Nil discards logs
}

// Model is the Bubble Tea model for a 2048 session.
type Model struct {
	game       *game.Game
	screen     *core.Screen
	store      *storage.Store
	logger     *log.Logger
	keys       KeyMap
	help       help.Model
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	runID      string
	best       int
	scoreSaved bool // Whether the current run has been recorded
	quitting   bool
}

// NewModel creates a new Bubble Tea model and starts the first game.
func NewModel(opts Options) Model {
	cfg := opts.Runtime
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	keys := opts.Keys
	if len(keys.Left.Keys()) == 0 {
		keys = DefaultKeyMap()
	}

	g := game.New(cfg.Seed)
	if opts.Theme != nil {
		g.SetTheme(opts.Theme)
	}

	m := Model{
		game:       g,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH-footerHeight),
		store:      opts.Store,
		logger:     logger,
		keys:       keys,
		help:       help.New(),
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		runID:      uuid.New().String(),
	}
	m.help.Width = cfg.ScreenW

	if m.store != nil {
		best, err := m.store.HighScore()
		if err != nil {
			logger.Error("cannot read high score", "err", err)
		}
		m.best = best
	}

	return m
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started", "run", m.runID, "seed", m.config.Seed)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers the action for the next tick.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.logger.Info("game interrupted", "run", m.runID, "score", m.game.Score())
		m.quitting = true
		return m, tea.Quit
	}

	m.inputFrame.Push(m.keys.MapKey(msg))
	return m, nil
}

// handleResize resizes the screen. The game itself is never reset.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height-footerHeight)
	m.help.Width = msg.Width
	return m, nil
}

// handleTick steps the game with the buffered actions and reacts to
// the transitions the step went through.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	res := m.game.Step(m.inputFrame)
	m.inputFrame.Clear()

	for _, ev := range res.Events {
		m.observe(ev)
	}

	if !res.Snapshot.Running {
		m.logger.Info("game closed", "run", m.runID, "score", res.Snapshot.Score)
		m.quitting = true
		return m, tea.Quit
	}

	return m, tickCmd(m.config.TickRate)
}

// observe handles one game transition.
func (m *Model) observe(ev game.Event) {
	switch ev.Kind {
	case game.EventNewGame:
		m.runID = uuid.New().String()
		m.scoreSaved = false
		m.logger.Info("new game", "run", m.runID, "from", ev.State)
	case game.EventGameOver:
		m.logger.Info("game over", "run", m.runID, "outcome", ev.State, "score", ev.Score, "moves", ev.Moves)
		m.recordResult(ev)
	}
}

// recordResult saves the finished run once.
func (m *Model) recordResult(ev game.Event) {
	if m.scoreSaved {
		return
	}
	m.scoreSaved = true

	if ev.Score > m.best {
		m.best = ev.Score
	}

	if m.store == nil {
		m.logger.Debug("no score store, result not saved", "run", m.runID)
		return
	}

	_, err := m.store.SaveResult(storage.Result{
		RunID:   m.runID,
		Score:   ev.Score,
		MaxTile: ev.MaxTile,
		Moves:   ev.Moves,
		Outcome: ev.State.String(),
	})
	if err != nil {
		m.logger.Error("cannot save result", "run", m.runID, "err", err)
		return
	}
	m.logger.Info("result saved", "run", m.runID, "score", ev.Score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(fmt.Sprintf("BEST: %d", m.best)))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// Game returns the game driven by this model.
func (m Model) Game() *game.Game {
	return m.game
}

// RunID returns the identifier of the current run.
func (m Model) RunID() string {
	return m.runID
}

// Best returns the best score known to this session.
func (m Model) Best() int {
	return m.best
}

// Run starts the Bubble Tea program with a new model.
func Run(opts Options) error {
	p := tea.NewProgram(
		NewModel(opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
