package core

import (
	"strconv"
	"strings"
)

// Screen is a 2D character buffer that understands the small VT100 subset the
// game emits: clear screen, cursor home/position, cursor visibility, CR and LF.
// Writing rendered output into a Screen reproduces what a terminal would show.
type Screen struct {
	width  int
	height int
	cells  [][]rune

	// cursor position, 0-based
	col, row      int
	cursorVisible bool

	// escape sequence parser state
	state  parseState
	params []byte
}

type parseState int

const (
	stateGround parseState = iota
	stateEscape
	stateCSI
)

// NewScreen creates a new screen buffer with the given dimensions.
func NewScreen(width, height int) *Screen {
	s := &Screen{
		width:         width,
		height:        height,
		cursorVisible: true,
	}
	s.cells = make([][]rune, height)
	for y := range s.cells {
		s.cells[y] = make([]rune, width)
	}
	s.Clear()
	return s
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for y := range s.cells {
		for x := range s.cells[y] {
			s.cells[y][x] = ' '
		}
	}
}

// Set places a rune at the given 0-based position.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = r
}

// Get returns the rune at the given 0-based position.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ' '
	}
	return s.cells[y][x]
}

// At returns the rune under a 1-based cursor coordinate.
func (s *Screen) At(p Point) rune {
	return s.Get(p.X-1, p.Y-1)
}

// Cursor returns the current 1-based cursor position.
func (s *Screen) Cursor() Point {
	return Point{X: s.col + 1, Y: s.row + 1}
}

// CursorVisible reports whether the last visibility sequence showed the cursor.
func (s *Screen) CursorVisible() bool {
	return s.cursorVisible
}

// Write interprets p as terminal output. It never fails.
func (s *Screen) Write(p []byte) (int, error) {
	for _, b := range p {
		s.feed(b)
	}
	return len(p), nil
}

func (s *Screen) feed(b byte) {
	switch s.state {
	case stateEscape:
		if b == '[' {
			s.state = stateCSI
			s.params = s.params[:0]
			return
		}
		s.state = stateGround
	case stateCSI:
		if b >= 0x40 && b <= 0x7e {
			s.execCSI(b)
			s.state = stateGround
			return
		}
		s.params = append(s.params, b)
	default:
		switch b {
		case 0x1b:
			s.state = stateEscape
		case '\r':
			s.col = 0
		case '\n':
			if s.row < s.height-1 {
				s.row++
			}
		default:
			s.Set(s.col, s.row, rune(b))
			s.col++
		}
	}
}

func (s *Screen) execCSI(final byte) {
	params := string(s.params)
	switch final {
	case 'J':
		if params == "2" {
			s.Clear()
		}
	case 'H':
		row, col := 1, 1
		if params != "" {
			parts := strings.SplitN(params, ";", 2)
			if n, err := strconv.Atoi(parts[0]); err == nil {
				row = n
			}
			if len(parts) == 2 {
				if n, err := strconv.Atoi(parts[1]); err == nil {
					col = n
				}
			}
		}
		s.row, s.col = row-1, col-1
	case 'l':
		if params == "?25" {
			s.cursorVisible = false
		}
	case 'h':
		if params == "?25" {
			s.cursorVisible = true
		}
	}
}

// String converts the screen buffer to text, rows joined with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for x := 0; x < s.width; x++ {
			sb.WriteRune(s.cells[y][x])
		}
	}
	return sb.String()
}

// Row returns a copy of the specified 0-based row as a string.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y])
}
