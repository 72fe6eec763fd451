package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
)

var (
	ErrNoActiveGame = errors.New("no active game")
	ErrNoLibrary    = errors.New("no maze library configured")
	ErrOutOfBounds  = errors.New("position is outside the maze")

	// ErrMazeNotFound is returned by a MazeLibrary for unknown names
	ErrMazeNotFound = errors.New("maze not found")
)

// gameServiceImpl implements the GameService interface
type gameServiceImpl struct {
	library MazeLibrary
	engine  *engine.GameEngine
	message string
	mu      sync.RWMutex
}

// NewGameService creates a new game service instance. library may be nil,
// in which case games can only be started from file paths.
func NewGameService(library MazeLibrary) GameService {
	return &gameServiceImpl{
		library: library,
	}
}

// NewGame loads mazeRef and starts a game on it, replacing any game in
// progress. mazeRef is tried as a file path first, then as a library name;
// an empty mazeRef selects the library default.
func (s *gameServiceImpl) NewGame(ctx context.Context, mazeRef string) (*GameInfo, error) {
	maze, err := s.resolveMaze(mazeRef)
	if err != nil {
		return nil, err
	}
	return s.StartGame(ctx, maze)
}

// StartGame starts a game on an already loaded maze
func (s *gameServiceImpl) StartGame(ctx context.Context, maze *engine.Maze) (*GameInfo, error) {
	eng, err := engine.NewEngine(maze)
	if err != nil {
		return nil, fmt.Errorf("failed to create engine: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.engine = eng
	s.message = MsgWelcome

	return &GameInfo{
		MazeName:  maze.Name(),
		StartedAt: time.Now(),
		State:     s.snapshot(),
	}, nil
}

func (s *gameServiceImpl) resolveMaze(mazeRef string) (*engine.Maze, error) {
	if mazeRef == "" {
		if s.library == nil {
			return nil, ErrNoLibrary
		}
		return s.library.GetDefault(), nil
	}

	maze, err := engine.Load(mazeRef)
	if err == nil || s.library == nil || !errors.Is(err, os.ErrNotExist) {
		return maze, err
	}

	// Not a file on disk; fall back to the library, but keep the original
	// error when the library has no such maze either
	libMaze, libErr := s.library.LoadMaze(mazeRef)
	if libErr != nil {
		if errors.Is(libErr, ErrMazeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to load maze %s: %w", mazeRef, libErr)
	}
	return libMaze, nil
}

// Reset puts the player back at the start
func (s *gameServiceImpl) Reset(ctx context.Context) (*GameState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil, ErrNoActiveGame
	}

	s.engine.Reset()
	s.message = MsgReset
	return s.snapshot(), nil
}

// Move executes a single move
func (s *gameServiceImpl) Move(ctx context.Context, direction engine.Direction) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil, ErrNoActiveGame
	}

	from := s.engine.PlayerPosition()
	outcome := s.engine.Move(direction)
	to := s.engine.PlayerPosition()
	now := time.Now()

	result := &MoveResult{
		Success:   outcome.Outcome == engine.Moved,
		Outcome:   outcome.Outcome,
		Direction: direction.String(),
		From:      from,
		To:        to,
	}

	switch outcome.Outcome {
	case engine.Moved:
		s.message = fmt.Sprintf(MsgMoved, direction)
		result.Events = append(result.Events, GameEvent{Type: "move", Message: s.message, Timestamp: now, Position: to})
		if s.engine.IsVictory() {
			s.message = MsgVictory
			result.Victory = true
			result.Events = append(result.Events, GameEvent{Type: "victory", Message: MsgVictory, Timestamp: now, Position: to})
		}
	case engine.Blocked:
		s.message = MsgBlocked
		result.AttemptedTo = &outcome.Position
		result.Events = append(result.Events, GameEvent{Type: "blocked", Message: s.message, Timestamp: now, Position: outcome.Position})
	case engine.OutOfBounds:
		s.message = MsgOutOfBounds
		result.AttemptedTo = &outcome.Position
		result.Events = append(result.Events, GameEvent{Type: "out_of_bounds", Message: s.message, Timestamp: now, Position: outcome.Position})
	case engine.GameOver:
		s.message = MsgGameOver
		result.Victory = true
		result.Events = append(result.Events, GameEvent{Type: "game_over", Message: s.message, Timestamp: now, Position: to})
	}

	result.Message = s.message
	result.State = s.snapshot()
	return result, nil
}

// ShowMap renders the maze with the player marker
func (s *gameServiceImpl) ShowMap(ctx context.Context) (engine.RenderedGrid, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.engine == nil {
		return nil, ErrNoActiveGame
	}
	return s.engine.ShowMap(), nil
}

// Cell returns the maze cell at pos as loaded, ignoring the player marker.
// Unlike ShowMap it leaves the map visibility flag alone.
func (s *gameServiceImpl) Cell(ctx context.Context, pos engine.Position) (engine.Cell, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.engine == nil {
		return 0, ErrNoActiveGame
	}
	cell, ok := s.engine.Maze().At(pos)
	if !ok {
		return 0, fmt.Errorf("%w: %v", ErrOutOfBounds, pos)
	}
	return cell, nil
}

// State returns a snapshot of the current game
func (s *gameServiceImpl) State(ctx context.Context) (*GameState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.engine == nil {
		return nil, ErrNoActiveGame
	}
	return s.snapshot(), nil
}

// MoveHistory returns every move attempt since the game started or was reset
func (s *gameServiceImpl) MoveHistory(ctx context.Context) ([]engine.MoveHistoryEntry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.engine == nil {
		return nil, ErrNoActiveGame
	}
	history := s.engine.MoveHistory()
	out := make([]engine.MoveHistoryEntry, len(history))
	copy(out, history)
	return out, nil
}

// ListMazes lists the maze library
func (s *gameServiceImpl) ListMazes(ctx context.Context) ([]*MazeInfo, error) {
	if s.library == nil {
		return nil, ErrNoLibrary
	}
	return s.library.ListMazes()
}

// snapshot builds a GameState; callers hold s.mu
func (s *gameServiceImpl) snapshot() *GameState {
	maze := s.engine.Maze()

	possible := []string{}
	for _, dir := range s.engine.PossibleMoves() {
		possible = append(possible, dir.String())
	}

	return &GameState{
		MazeName:      maze.Name(),
		Width:         maze.Width(),
		Height:        maze.Height(),
		Player:        s.engine.PlayerPosition(),
		Start:         maze.Start(),
		Exit:          maze.Exit(),
		Status:        s.engine.Status().String(),
		Victory:       s.engine.IsVictory(),
		MapVisible:    s.engine.MapVisible(),
		TotalMoves:    s.engine.TotalMoves(),
		PossibleMoves: possible,
		Message:       s.message,
	}
}
