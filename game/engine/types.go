package engine

import (
	"fmt"
	"strings"
)

// Cell is a single character of the maze grid
type Cell byte

const (
	Wall  Cell = '#'
	Floor Cell = '.'
	Start Cell = 'S'
	Exit  Cell = 'E'

	// PlayerMarker is drawn over the player's cell by ShowMap
	PlayerMarker = 'X'

	// Validation constants
	MinDimension = 5
	MaxDimension = 100
)

// IsValid reports whether c belongs to the maze alphabet
func (c Cell) IsValid() bool {
	switch c {
	case Wall, Floor, Start, Exit:
		return true
	}
	return false
}

// Passable reports whether the player may stand on c
func (c Cell) Passable() bool {
	return c.IsValid() && c != Wall
}

func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Floor:
		return "floor"
	case Start:
		return "start"
	case Exit:
		return "exit"
	}
	return fmt.Sprintf("unknown(%q)", byte(c))
}

// Position represents x,y coordinates
type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p shifted by one step in direction d
func (p Position) Add(d Direction) Position {
	dx, dy := d.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Direction is one of the four movement directions
type Direction int

const (
	Up Direction = iota + 1
	Down
	Left
	Right
)

// Directions lists every valid direction in a stable order
var Directions = []Direction{Up, Down, Left, Right}

// Delta returns the column and row offsets for d
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// IsValid reports whether d is one of Up, Down, Left, Right
func (d Direction) IsValid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "invalid"
}

// MarshalText encodes d by name
func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// ParseDirection returns the direction named by name, ignoring case and
// surrounding space
func ParseDirection(name string) (Direction, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, d := range Directions {
		if d.String() == name {
			return d, true
		}
	}
	return 0, false
}

// Outcome is the tagged result of a move attempt
type Outcome int

const (
	Moved Outcome = iota
	Blocked
	OutOfBounds
	// GameOver is returned for any move attempted after the exit was reached
	GameOver
)

func (o Outcome) String() string {
	switch o {
	case Moved:
		return "moved"
	case Blocked:
		return "blocked"
	case OutOfBounds:
		return "out_of_bounds"
	case GameOver:
		return "game_over"
	}
	return "unknown"
}

// MarshalText encodes o by name
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// MoveOutcome reports what happened to a move attempt. Position is the
// destination for Moved and the rejected candidate cell otherwise.
type MoveOutcome struct {
	Outcome  Outcome  `json:"outcome"`
	Position Position `json:"position"`
}

// Status is the session's place in the Playing -> Won state machine
type Status int

const (
	Playing Status = iota
	Won
)

func (s Status) String() string {
	if s == Won {
		return "won"
	}
	return "playing"
}

// MoveHistoryEntry represents a single move attempt in the game history
type MoveHistoryEntry struct {
	Direction    Direction `json:"direction"`
	FromPosition Position  `json:"from_position"`
	ToPosition   Position  `json:"to_position"`
	Outcome      Outcome   `json:"outcome"`
	Timestamp    int64     `json:"timestamp"`
	MoveNumber   int       `json:"move_number"`
}
