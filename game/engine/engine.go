package engine

import (
	"fmt"
	"time"
)

// Engine provides the main interface for game operations
type Engine interface {
	// Game state
	Maze() *Maze
	Status() Status
	IsVictory() bool
	PlayerPosition() Position
	MapVisible() bool
	Reset()

	// Movement operations
	Move(direction Direction) MoveOutcome
	CanMove(direction Direction) bool
	PossibleMoves() []Direction

	// Display
	ShowMap() RenderedGrid

	// History
	MoveHistory() []MoveHistoryEntry
	LastMove() *MoveHistoryEntry
	TotalMoves() int
}

// GameEngine implements the Engine interface on top of a Session
type GameEngine struct {
	session *Session
	history []MoveHistoryEntry
}

// NewEngine creates a new game engine for a loaded maze
func NewEngine(maze *Maze) (*GameEngine, error) {
	if maze == nil {
		return nil, fmt.Errorf("maze cannot be nil")
	}
	return &GameEngine{
		session: NewSession(maze),
		history: []MoveHistoryEntry{},
	}, nil
}

// LoadEngine loads the maze at path and starts a game on it
func LoadEngine(path string) (*GameEngine, error) {
	maze, err := Load(path)
	if err != nil {
		return nil, err
	}
	return NewEngine(maze)
}

// Session exposes the underlying game session
func (e *GameEngine) Session() *Session {
	return e.session
}

// Maze returns the maze being played
func (e *GameEngine) Maze() *Maze {
	return e.session.Maze()
}

// Status returns the current state machine state
func (e *GameEngine) Status() Status {
	return e.session.Status()
}

// IsVictory returns whether the player has reached the exit
func (e *GameEngine) IsVictory() bool {
	return e.session.CheckVictory()
}

// PlayerPosition returns the current player position
func (e *GameEngine) PlayerPosition() Position {
	return e.session.Player()
}

// MapVisible reports whether the map was shown since the last move attempt
func (e *GameEngine) MapVisible() bool {
	return e.session.MapVisible()
}

// Reset puts the player back on the start cell and clears the history
func (e *GameEngine) Reset() {
	e.session.reset()
	e.history = []MoveHistoryEntry{}
}

// Move attempts to move the player in the specified direction
func (e *GameEngine) Move(direction Direction) MoveOutcome {
	from := e.session.Player()
	outcome := e.session.AttemptMove(direction)

	e.history = append(e.history, MoveHistoryEntry{
		Direction:    direction,
		FromPosition: from,
		ToPosition:   e.session.Player(),
		Outcome:      outcome.Outcome,
		Timestamp:    time.Now().Unix(),
		MoveNumber:   len(e.history) + 1,
	})

	return outcome
}

// CanMove checks if the player can move in the specified direction
func (e *GameEngine) CanMove(direction Direction) bool {
	if e.session.Status() == Won || !direction.IsValid() {
		return false
	}
	return e.session.CanMoveTo(e.session.Player().Add(direction))
}

// PossibleMoves returns all valid directions the player can move
func (e *GameEngine) PossibleMoves() []Direction {
	var possible []Direction
	for _, dir := range Directions {
		if e.CanMove(dir) {
			possible = append(possible, dir)
		}
	}
	return possible
}

// ShowMap renders the maze with the player marker
func (e *GameEngine) ShowMap() RenderedGrid {
	return e.session.ShowMap()
}

// MoveHistory returns every move attempt since the last reset
func (e *GameEngine) MoveHistory() []MoveHistoryEntry {
	return e.history
}

// LastMove returns the last move made, or nil if no moves
func (e *GameEngine) LastMove() *MoveHistoryEntry {
	if len(e.history) == 0 {
		return nil
	}
	return &e.history[len(e.history)-1]
}

// TotalMoves counts successful moves since the last reset
func (e *GameEngine) TotalMoves() int {
	n := 0
	for _, entry := range e.history {
		if entry.Outcome == Moved {
			n++
		}
	}
	return n
}
