package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

func TestScoreboardEmpty(t *testing.T) {
	m := NewScoreboardModel(openStore(t), 10, 80, 24)

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Errorf("expected empty message:\n%s", m.View())
	}
}

func TestScoreboardNilStore(t *testing.T) {
	m := NewScoreboardModel(nil, 10, 80, 24)

	if !strings.Contains(m.View(), "No scores recorded yet") {
		t.Error("nil store should show the empty message")
	}
}

func TestScoreboardShowsScoresAndStats(t *testing.T) {
	store := openStore(t)
	for _, r := range []storage.Result{
		{Score: 1500, MaxTile: 128, Moves: 200, Outcome: storage.OutcomeLost},
		{Score: 21000, MaxTile: 2048, Moves: 950, Outcome: storage.OutcomeWon},
	} {
		if _, err := store.SaveResult(r); err != nil {
			t.Fatalf("SaveResult: %v", err)
		}
	}

	m := NewScoreboardModel(store, 10, 100, 30)
	view := m.View()

	for _, want := range []string{"HIGH SCORES", "21000", "1500", "won", "Games: 2", "Wins: 1"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q:\n%s", want, view)
		}
	}
	if !m.withDate {
		t.Error("wide scoreboard should show the date column")
	}
}

func TestScoreboardNarrowDropsDate(t *testing.T) {
	m := NewScoreboardModel(openStore(t), 10, 40, 24)
	if m.withDate {
		t.Error("narrow scoreboard should drop the date column")
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	if !next.(ScoreboardModel).withDate {
		t.Error("widening should bring the date column back")
	}
}

func TestScoreboardQuit(t *testing.T) {
	m := NewScoreboardModel(nil, 10, 80, 24)

	next, cmd := m.Update(runeKey('q'))
	if !isQuit(cmd) {
		t.Error("q should quit the scoreboard")
	}
	if !next.(ScoreboardModel).IsQuitting() {
		t.Error("IsQuitting should be true")
	}
}

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(10, 2)
	s.DrawText(0, 0, "plain")
	s.DrawTextColored(0, 1, "red", core.ColorRed)

	out := RenderScreen(s)
	if !strings.Contains(out, "plain") || !strings.Contains(out, "red") {
		t.Errorf("rendered output lost text: %q", out)
	}
	if got := strings.Count(out, "\n"); got != 1 {
		t.Errorf("rendered %d line breaks, want 1", got)
	}
}
