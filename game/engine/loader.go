package engine

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"
)

// Load reads and validates the maze file at path. Any failure aborts the
// whole load; the returned error is always a *LoadError.
func Load(path string) (*Maze, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: FileUnreadable, Path: path, Err: err}
	}

	maze, err := Parse(data)
	if err != nil {
		if le, ok := err.(*LoadError); ok {
			le.Path = path
		}
		return nil, err
	}
	maze.name = path
	return maze, nil
}

// Parse validates maze text held in memory
func Parse(data []byte) (*Maze, error) {
	lines := splitLines(data)

	// Widths are counted in bytes, so anything outside ASCII is rejected
	// before it can be misreported as a ragged row
	if err := checkASCII(lines); err != nil {
		return nil, err
	}

	// Validate dimensions
	height := len(lines)
	if height < MinDimension || height > MaxDimension {
		return nil, &LoadError{
			Kind:   InvalidDimensions,
			Detail: fmt.Sprintf("height must be between %d and %d, got %d", MinDimension, MaxDimension, height),
		}
	}
	width := len(lines[0])
	if width < MinDimension || width > MaxDimension {
		return nil, &LoadError{
			Kind:   InvalidDimensions,
			Detail: fmt.Sprintf("width must be between %d and %d, got %d", MinDimension, MaxDimension, width),
		}
	}

	for i, line := range lines {
		if len(line) != width {
			return nil, &LoadError{
				Kind:   NotRectangular,
				Row:    i + 1,
				Detail: fmt.Sprintf("expected %d characters, got %d", width, len(line)),
			}
		}
	}

	cells := make([]Cell, 0, width*height)
	for i, line := range lines {
		for j, char := range line {
			c := Cell(char)
			if !c.IsValid() {
				return nil, &LoadError{
					Kind:   InvalidCharacter,
					Row:    i + 1,
					Col:    j + 1,
					Detail: fmt.Sprintf("%q", char),
				}
			}
			cells = append(cells, c)
		}
	}

	m := &Maze{width: width, height: height, cells: cells}

	var err error
	if m.start, err = m.locateMarker(Start); err != nil {
		return nil, err
	}
	if m.exit, err = m.locateMarker(Exit); err != nil {
		return nil, err
	}
	return m, nil
}

// locateMarker returns the only cell holding marker
func (m *Maze) locateMarker(marker Cell) (Position, error) {
	var found Position
	count := 0
	for i, c := range m.cells {
		if c != marker {
			continue
		}
		count++
		if count == 1 {
			found = Position{X: i % m.width, Y: i / m.width}
		}
	}

	switch {
	case count == 0:
		return Position{}, &LoadError{
			Kind:   MissingMarker,
			Marker: marker,
			Detail: fmt.Sprintf("no %q cell", byte(marker)),
		}
	case count > 1:
		return Position{}, &LoadError{
			Kind:   DuplicateMarker,
			Marker: marker,
			Detail: fmt.Sprintf("%d %q cells, expected exactly one", count, byte(marker)),
		}
	}
	return found, nil
}

// checkASCII reports the first non-ASCII character, with its column counted
// in characters
func checkASCII(lines [][]byte) error {
	for i, line := range lines {
		col := 0
		for len(line) > 0 {
			r, size := utf8.DecodeRune(line)
			col++
			if r >= utf8.RuneSelf {
				return &LoadError{
					Kind:   InvalidCharacter,
					Row:    i + 1,
					Col:    col,
					Detail: fmt.Sprintf("%q", r),
				}
			}
			line = line[size:]
		}
	}
	return nil
}

// splitLines breaks data into rows. A single trailing empty line produced
// by the final newline is dropped; interior blank lines are kept.
func splitLines(data []byte) [][]byte {
	if len(data) == 0 {
		return nil
	}
	lines := bytes.Split(data, []byte("\n"))
	if len(lines[len(lines)-1]) == 0 {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = bytes.TrimSuffix(line, []byte("\r"))
	}
	return lines
}
