package service

import (
	"context"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
)

// GameService defines all game-related operations for the single game a
// process plays at a time
type GameService interface {
	// Game lifecycle
	NewGame(ctx context.Context, mazeRef string) (*GameInfo, error)
	StartGame(ctx context.Context, maze *engine.Maze) (*GameInfo, error)
	Reset(ctx context.Context) (*GameState, error)

	// Game Operations
	Move(ctx context.Context, direction engine.Direction) (*MoveResult, error)
	ShowMap(ctx context.Context) (engine.RenderedGrid, error)
	Cell(ctx context.Context, pos engine.Position) (engine.Cell, error)

	// Game State
	State(ctx context.Context) (*GameState, error)
	MoveHistory(ctx context.Context) ([]engine.MoveHistoryEntry, error)

	// Maze library
	ListMazes(ctx context.Context) ([]*MazeInfo, error)
}

// MazeLibrary resolves maze names to loaded mazes
type MazeLibrary interface {
	LoadMaze(name string) (*engine.Maze, error)
	ListMazes() ([]*MazeInfo, error)
	GetDefault() *engine.Maze
}
