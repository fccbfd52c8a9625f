package tui

import (
	"io"
	"strconv"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Escape sequences.
const (
	seqClearHome = "\x1b[2J\x1b[H"
)

// Glyphs.
const (
	glyphHead   = 'O'
	glyphBody   = 'o'
	glyphFood   = '*'
	glyphCorner = '+'
	glyphHoriz  = '-'
	glyphVert   = '|'
)

// WriteError wraps a failed or short write to the terminal. It is never fatal:
// the next tick draws a fresh frame.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return "render: write: " + e.Err.Error()
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

// Renderer writes frames to the terminal with plain VT100 sequences.
// Primitives write immediately; DrawFrame and DrawGameOver compose the whole
// frame first and hand it to the terminal in one write.
type Renderer struct {
	out io.Writer
	buf []byte
}

// NewRenderer creates a renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// ClearScreen clears the visible screen and homes the cursor.
func (r *Renderer) ClearScreen() error {
	return r.WriteText([]byte(seqClearHome))
}

// MoveCursor positions the cursor at a 1-based column and row.
func (r *Renderer) MoveCursor(col, row int) error {
	return r.WriteText(appendCursor(nil, col, row))
}

// DrawBorder draws a frame around a width x height interior starting at the
// current cursor position. Every row ends in CR LF since raw mode turns off
// output post-processing.
func (r *Renderer) DrawBorder(width, height int) error {
	return r.WriteText(appendBorder(nil, width, height))
}

// WriteText writes p to the terminal once. Failures are not retried.
func (r *Renderer) WriteText(p []byte) error {
	n, err := r.out.Write(p)
	if err != nil {
		return &WriteError{Err: err}
	}
	if n < len(p) {
		return &WriteError{Err: io.ErrShortWrite}
	}
	return nil
}

// DrawFrame draws the board, the food, the snake and the score line.
func (r *Renderer) DrawFrame(snap snake.Snapshot) error {
	b := r.buf[:0]
	b = append(b, seqClearHome...)
	b = appendBorder(b, snake.Width, snake.Height)

	for i := len(snap.Segments) - 1; i >= 0; i-- {
		glyph := byte(glyphBody)
		if i == 0 {
			glyph = glyphHead
		}
		b = appendGlyph(b, snap.Segments[i], glyph)
	}
	b = appendGlyph(b, snap.Food, glyphFood)

	b = appendCursor(b, 1, hudRow)
	b = append(b, "Score: "...)
	b = strconv.AppendInt(b, int64(snap.Score), 10)

	r.buf = b
	return r.WriteText(b)
}

// GameOverView is the content of the game-over screen.
type GameOverView struct {
	Score  int
	Best   int
	Rounds int // 0 hides the best/rounds line
}

// DrawGameOver draws the board with the game-over message centered inside.
func (r *Renderer) DrawGameOver(v GameOverView) error {
	lines := []string{
		"GAME OVER",
		"Score: " + strconv.Itoa(v.Score),
	}
	if v.Rounds > 0 {
		lines = append(lines, "Best: "+strconv.Itoa(v.Best)+"  Rounds: "+strconv.Itoa(v.Rounds))
	}
	lines = append(lines, "", "Press Enter to restart, Q to quit")

	b := r.buf[:0]
	b = append(b, seqClearHome...)
	b = appendBorder(b, snake.Width, snake.Height)

	center := snake.Interior.Center()
	row := center.Y - len(lines)/2
	for i, line := range lines {
		if line == "" {
			continue
		}
		col := snake.Interior.X + (snake.Interior.W-len(line))/2
		b = appendCursor(b, col, row+i)
		b = append(b, line...)
	}

	r.buf = b
	return r.WriteText(b)
}

// hudRow is the first row below the bottom border.
const hudRow = snake.Height + 3

func appendCursor(b []byte, col, row int) []byte {
	b = append(b, 0x1b, '[')
	b = strconv.AppendInt(b, int64(row), 10)
	b = append(b, ';')
	b = strconv.AppendInt(b, int64(col), 10)
	return append(b, 'H')
}

func appendGlyph(b []byte, p core.Point, glyph byte) []byte {
	b = appendCursor(b, p.X, p.Y)
	return append(b, glyph)
}

func appendBorder(b []byte, width, height int) []byte {
	edge := func(b []byte) []byte {
		b = append(b, glyphCorner)
		for range width {
			b = append(b, glyphHoriz)
		}
		return append(b, glyphCorner, '\r', '\n')
	}

	b = edge(b)
	for range height {
		b = append(b, glyphVert)
		for range width {
			b = append(b, ' ')
		}
		b = append(b, glyphVert, '\r', '\n')
	}
	return edge(b)
}
