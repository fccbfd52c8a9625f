package tui

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// replay interprets rendered bytes the way a terminal would.
func replay(t *testing.T, out []byte) *core.Screen {
	t.Helper()
	screen := core.NewScreen(60, 30)
	screen.Write(out)
	return screen
}

func TestRendererPrimitives(t *testing.T) {
	tests := []struct {
		name     string
		draw     func(r *Renderer) error
		expected string
	}{
		{"clear", (*Renderer).ClearScreen, "\x1b[2J\x1b[H"},
		{"move", func(r *Renderer) error { return r.MoveCursor(5, 12) }, "\x1b[12;5H"},
		{"move origin", func(r *Renderer) error { return r.MoveCursor(1, 1) }, "\x1b[1;1H"},
		{"text", func(r *Renderer) error { return r.WriteText([]byte("abc")) }, "abc"},
		{"border", func(r *Renderer) error { return r.DrawBorder(2, 1) }, "+--+\r\n|  |\r\n+--+\r\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if err := tt.draw(NewRenderer(&out)); err != nil {
				t.Fatalf("draw failed: %v", err)
			}
			if out.String() != tt.expected {
				t.Errorf("wrote %q, expected %q", out.String(), tt.expected)
			}
		})
	}
}

func TestDrawBorderRows(t *testing.T) {
	var out bytes.Buffer
	if err := NewRenderer(&out).DrawBorder(snake.Width, snake.Height); err != nil {
		t.Fatalf("DrawBorder failed: %v", err)
	}

	rows := strings.Split(strings.TrimSuffix(out.String(), "\r\n"), "\r\n")
	if len(rows) != snake.Height+2 {
		t.Fatalf("Expected %d rows, got %d", snake.Height+2, len(rows))
	}

	edge := "+" + strings.Repeat("-", snake.Width) + "+"
	middle := "|" + strings.Repeat(" ", snake.Width) + "|"
	if rows[0] != edge || rows[len(rows)-1] != edge {
		t.Errorf("Edges = %q / %q, expected %q", rows[0], rows[len(rows)-1], edge)
	}
	for i, row := range rows[1 : len(rows)-1] {
		if row != middle {
			t.Errorf("Row %d = %q, expected %q", i+1, row, middle)
		}
	}
}

func TestDrawFrame(t *testing.T) {
	snap := snake.Snapshot{
		Score:    2,
		Segments: []core.Point{{X: 20, Y: 10}, {X: 19, Y: 10}, {X: 18, Y: 10}},
		Food:     core.Point{X: 5, Y: 5},
	}

	var out bytes.Buffer
	if err := NewRenderer(&out).DrawFrame(snap); err != nil {
		t.Fatalf("DrawFrame failed: %v", err)
	}
	if !strings.HasPrefix(out.String(), "\x1b[2J\x1b[H+") {
		t.Errorf("Frame should start with clear, home and the border, got %q", out.String()[:12])
	}

	screen := replay(t, out.Bytes())
	cells := []struct {
		at   core.Point
		want rune
	}{
		{core.Point{X: 1, Y: 1}, '+'},
		{core.Point{X: 42, Y: 1}, '+'},
		{core.Point{X: 1, Y: 22}, '+'},
		{core.Point{X: 42, Y: 22}, '+'},
		{core.Point{X: 2, Y: 1}, '-'},
		{core.Point{X: 1, Y: 2}, '|'},
		{core.Point{X: 42, Y: 21}, '|'},
		{core.Point{X: 20, Y: 10}, 'O'},
		{core.Point{X: 19, Y: 10}, 'o'},
		{core.Point{X: 18, Y: 10}, 'o'},
		{core.Point{X: 17, Y: 10}, ' '},
		{core.Point{X: 5, Y: 5}, '*'},
	}
	for _, c := range cells {
		if got := screen.At(c.at); got != c.want {
			t.Errorf("cell %v = %q, expected %q", c.at, got, c.want)
		}
	}

	if hud := strings.TrimRight(screen.Row(22), " "); hud != "Score: 2" {
		t.Errorf("HUD row = %q, expected %q", hud, "Score: 2")
	}
}

func TestDrawFrameFoodOnSnake(t *testing.T) {
	snap := snake.Snapshot{
		Segments: []core.Point{{X: 20, Y: 10}, {X: 19, Y: 10}},
		Food:     core.Point{X: 19, Y: 10},
	}

	var out bytes.Buffer
	NewRenderer(&out).DrawFrame(snap)

	if got := replay(t, out.Bytes()).At(core.Point{X: 19, Y: 10}); got != '*' {
		t.Errorf("Food under the body = %q, expected food drawn on top", got)
	}
}

func TestDrawFrameSingleWrite(t *testing.T) {
	w := &countingWriter{}
	r := NewRenderer(w)

	snap := snake.Snapshot{Segments: []core.Point{{X: 3, Y: 3}}, Food: core.Point{X: 4, Y: 4}}
	r.DrawFrame(snap)
	r.DrawFrame(snap)

	if w.writes != 2 {
		t.Errorf("Expected one write per frame, got %d writes for 2 frames", w.writes)
	}
}

func TestDrawGameOver(t *testing.T) {
	var out bytes.Buffer
	if err := NewRenderer(&out).DrawGameOver(GameOverView{Score: 3, Best: 5, Rounds: 2}); err != nil {
		t.Fatalf("DrawGameOver failed: %v", err)
	}

	screen := replay(t, out.Bytes())

	// Five lines centered on row 12 start at row 10.
	if got := screen.Row(9)[16:25]; got != "GAME OVER" {
		t.Errorf("Row 10 = %q, expected GAME OVER at column 17", screen.Row(9))
	}

	text := screen.String()
	for _, want := range []string{"Score: 3", "Best: 5  Rounds: 2", "Press Enter to restart, Q to quit"} {
		if !strings.Contains(text, want) {
			t.Errorf("Game-over screen missing %q:\n%s", want, text)
		}
	}
	if screen.At(core.Point{X: 1, Y: 1}) != '+' {
		t.Error("Game-over screen should keep the border")
	}
}

func TestDrawGameOverWithoutLedger(t *testing.T) {
	var out bytes.Buffer
	NewRenderer(&out).DrawGameOver(GameOverView{Score: 1})

	text := replay(t, out.Bytes()).String()
	if strings.Contains(text, "Best:") {
		t.Errorf("Best line should be hidden when no rounds are recorded:\n%s", text)
	}
	if !strings.Contains(text, "Score: 1") {
		t.Errorf("Missing score:\n%s", text)
	}
}

func TestWriteTextErrors(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name string
		w    io.Writer
		want error
	}{
		{"failed", failingWriter{err: boom}, boom},
		{"short", shortWriter{}, io.ErrShortWrite},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewRenderer(tt.w).WriteText([]byte("frame"))

			var werr *WriteError
			if !errors.As(err, &werr) {
				t.Fatalf("Expected *WriteError, got %T: %v", err, err)
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Expected wrapped %v, got %v", tt.want, err)
			}
			if !strings.HasPrefix(err.Error(), "render: write: ") {
				t.Errorf("Error() = %q", err.Error())
			}
		})
	}
}

type countingWriter struct {
	writes int
}

func (w *countingWriter) Write(p []byte) (int, error) {
	w.writes++
	return len(p), nil
}

type failingWriter struct {
	err error
}

func (w failingWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

type shortWriter struct{}

func (shortWriter) Write(p []byte) (int, error) {
	return len(p) / 2, nil
}
