package service

import (
	"time"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
)

// Player-facing messages
const (
	MsgWelcome     = "Find your way from S to E. Good luck!"
	MsgMoved       = "You moved %s."
	MsgBlocked     = "You hit a wall! Try a different direction."
	MsgOutOfBounds = "You can't move outside the maze!"
	MsgVictory     = "Congratulations! You reached the exit!"
	MsgGameOver    = "The game is over. You already reached the exit."
	MsgReset       = "Back at the start."
)

// GameInfo describes a freshly started game
type GameInfo struct {
	MazeName  string     `json:"maze_name"`
	StartedAt time.Time  `json:"started_at"`
	State     *GameState `json:"state"`
}

// GameState is a snapshot of the current game
type GameState struct {
	MazeName      string          `json:"maze_name"`
	Width         int             `json:"width"`
	Height        int             `json:"height"`
	Player        engine.Position `json:"player"`
	Start         engine.Position `json:"start"`
	Exit          engine.Position `json:"exit"`
	Status        string          `json:"status"`
	Victory       bool            `json:"victory"`
	MapVisible    bool            `json:"map_visible"`
	TotalMoves    int             `json:"total_moves"`
	PossibleMoves []string        `json:"possible_moves"`
	Message       string          `json:"message"`
}

// MoveResult contains the result of a move operation
type MoveResult struct {
	Success     bool             `json:"success"`
	Outcome     engine.Outcome   `json:"outcome"`
	Direction   string           `json:"direction"`
	From        engine.Position  `json:"from"`
	To          engine.Position  `json:"to"`
	AttemptedTo *engine.Position `json:"attempted_to,omitempty"`
	Victory     bool             `json:"victory"`
	Message     string           `json:"message"`
	Events      []GameEvent      `json:"events,omitempty"`
	State       *GameState       `json:"state"`
}

// GameEvent represents an event that occurred during gameplay
type GameEvent struct {
	Type      string          `json:"type"` // "move", "blocked", "out_of_bounds", "victory", "game_over", "reset"
	Message   string          `json:"message"`
	Timestamp time.Time       `json:"timestamp"`
	Position  engine.Position `json:"position"`
}

// MazeInfo provides information about a maze in the library
type MazeInfo struct {
	Filename     string `json:"filename"`
	MazeID       string `json:"maze_id"` // The identifier to use when starting a game
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Walls        int    `json:"walls"`
	Solvable     bool   `json:"solvable"`
	ShortestPath int    `json:"shortest_path,omitempty"` // moves needed when solvable
}
