package game

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/grid"
)

// tileAt returns the screen text and color of the first character of a
// rendered tile.
func tileAt(s *core.Screen, row, col, width int) (string, core.Color) {
	x := (s.Width()-boardW)/2 + col*cellWidth + 1 + (cellWidth-1-width)/2
	y := hudHeight + 1 + row*cellHeight + 1

	var sb strings.Builder
	for i := range width {
		sb.WriteRune(s.GetCell(x+i, y).Rune)
	}
	return sb.String(), s.GetCell(x, y).Color
}

func TestRenderHUD(t *testing.T) {
	g := withGrid(grid.Grid{4, 2})
	g.score = 1234

	s := core.NewScreen(40, 20)
	g.Render(s)

	out := s.String()
	for _, want := range []string{"2048", "SCORE: 0000001234", "Max: 4"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTileColors(t *testing.T) {
	g := withGrid(grid.Grid{0, 0, 0, 0, 0, 512})

	s := core.NewScreen(40, 20)
	g.Render(s)

	text, c := tileAt(s, 1, 1, 3)
	if text != "512" {
		t.Fatalf("tile text = %q, want 512:\n%s", text, s.String())
	}
	if c != core.ColorBlue {
		t.Errorf("tile 512 color = %d, want %d", c, core.ColorBlue)
	}
}

func TestRenderCustomTheme(t *testing.T) {
	g := withGrid(grid.Grid{8})
	g.SetTheme(Theme{8: core.ColorCyan})

	s := core.NewScreen(40, 20)
	g.Render(s)

	text, c := tileAt(s, 0, 0, 1)
	if text != "8" {
		t.Fatalf("tile text = %q, want 8:\n%s", text, s.String())
	}
	if c != core.ColorCyan {
		t.Errorf("tile 8 color = %d, want %d", c, core.ColorCyan)
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name  string
		start grid.Grid
		want  string
	}{
		{"win", grid.Grid{1024, 1024}, "YOU WIN"},
		{"lose", lockedGrid, "YOU LOSE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := withGrid(tt.start)
			g.Handle(core.ActionMoveLeft)

			s := core.NewScreen(40, 20)
			g.Render(s)

			if !strings.Contains(s.String(), tt.want) {
				t.Errorf("screen missing %q:\n%s", tt.want, s.String())
			}
		})
	}
}

func TestRenderNoOverlayWhilePlaying(t *testing.T) {
	g := New(1)
	s := core.NewScreen(40, 20)
	g.Render(s)

	out := s.String()
	if strings.Contains(out, "YOU WIN") || strings.Contains(out, "YOU LOSE") {
		t.Error("overlay drawn during play")
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New(1)
	s := core.NewScreen(MinWidth-1, MinHeight)
	g.Render(s)

	if !strings.Contains(s.String(), "Window too small") {
		t.Errorf("expected too-small message:\n%s", s.String())
	}
}

func TestThemeFallsBackToDefault(t *testing.T) {
	if c := DefaultTheme().Color(4096); c != core.ColorDefault {
		t.Errorf("Color(4096) = %d, want default", c)
	}
}

func TestRenderMarksLastMove(t *testing.T) {
	g := withGrid(grid.Grid{2, 2})
	g.Handle(core.ActionMoveLeft)

	s := core.NewScreen(40, 20)
	g.Render(s)

	markAt := func(idx int) rune {
		row, col := idx/grid.Size, idx%grid.Size
		x := (s.Width()-boardW)/2 + col*cellWidth + cellWidth - 1
		y := hudHeight + 1 + row*cellHeight + 1
		return s.GetCell(x, y).Rune
	}

	if r := markAt(0); r != mergeMark {
		t.Errorf("merged cell mark = %q, want %q", r, mergeMark)
	}
	if r := markAt(g.spawned); r != spawnMark {
		t.Errorf("spawned cell mark = %q, want %q", r, spawnMark)
	}
}
