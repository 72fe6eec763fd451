package engine

import "strings"

// Maze is a validated, immutable maze. Cells are stored row-major in a
// single buffer, so rectangularity holds by construction.
type Maze struct {
	name   string
	width  int
	height int
	cells  []Cell
	start  Position
	exit   Position
}

// Name returns the source the maze was loaded from, if any
func (m *Maze) Name() string { return m.name }

// Width is the number of columns
func (m *Maze) Width() int { return m.width }

// Height is the number of rows
func (m *Maze) Height() int { return m.height }

// Start returns the position of the S marker
func (m *Maze) Start() Position { return m.start }

// Exit returns the position of the E marker
func (m *Maze) Exit() Position { return m.exit }

// InBounds reports whether p lies inside the grid
func (m *Maze) InBounds(p Position) bool {
	return p.X >= 0 && p.X < m.width && p.Y >= 0 && p.Y < m.height
}

// At returns the cell at p. Out-of-bounds positions report false.
func (m *Maze) At(p Position) (Cell, bool) {
	if !m.InBounds(p) {
		return 0, false
	}
	return m.cells[p.Y*m.width+p.X], true
}

// Rows returns a copy of the grid, one string per row
func (m *Maze) Rows() []string {
	rows := make([]string, m.height)
	for y := 0; y < m.height; y++ {
		rows[y] = string(m.row(y))
	}
	return rows
}

func (m *Maze) String() string {
	return strings.Join(m.Rows(), "\n")
}

func (m *Maze) row(y int) []byte {
	line := make([]byte, m.width)
	for x := 0; x < m.width; x++ {
		line[x] = byte(m.cells[y*m.width+x])
	}
	return line
}

// RenderedGrid is a row-major snapshot of the maze as shown to the player
type RenderedGrid []string

func (g RenderedGrid) String() string {
	return strings.Join(g, "\n")
}
