package main

import (
	"fmt"
	"strings"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

// Strategy picks the next move from what the player can observe
type Strategy interface {
	NextMove(state *service.GameState) (engine.Direction, bool)
	Reset(attempt int)
}

// PlannedStrategy reads the map once and walks a shortest route to the exit,
// replanning whenever the player ends up somewhere unexpected.
type PlannedStrategy struct {
	maze     *engine.Maze
	plan     []engine.Direction
	expected engine.Position
}

// NewPlannedStrategy rebuilds the maze from a rendered map. The X marker is
// replaced by whatever the player is standing on.
func NewPlannedStrategy(grid engine.RenderedGrid, state *service.GameState) (*PlannedStrategy, error) {
	rows := make([]string, len(grid))
	copy(rows, grid)

	p := state.Player
	if p.Y < 0 || p.Y >= len(rows) || p.X < 0 || p.X >= len(rows[p.Y]) {
		return nil, fmt.Errorf("player %v is outside the map", p)
	}
	under := engine.Floor
	switch p {
	case state.Start:
		under = engine.Start
	case state.Exit:
		under = engine.Exit
	}
	row := []byte(rows[p.Y])
	row[p.X] = byte(under)
	rows[p.Y] = string(row)

	maze, err := engine.Parse([]byte(strings.Join(rows, "\n")))
	if err != nil {
		return nil, fmt.Errorf("failed to read map: %w", err)
	}
	return &PlannedStrategy{maze: maze}, nil
}

func (s *PlannedStrategy) NextMove(state *service.GameState) (engine.Direction, bool) {
	if len(s.plan) == 0 || state.Player != s.expected {
		path, ok := engine.FindPath(s.maze, state.Player, s.maze.Exit())
		if !ok {
			return 0, false
		}
		s.plan = engine.PathDirections(path)
		if len(s.plan) == 0 {
			return 0, false
		}
	}

	dir := s.plan[0]
	s.plan = s.plan[1:]
	s.expected = state.Player.Add(dir)
	return dir, true
}

func (s *PlannedStrategy) Reset(attempt int) {
	s.plan = nil
}

// ExploreStrategy knows nothing about the map. It steps to the least
// visited neighbour among the possible moves, breaking ties by a direction
// order that rotates with each attempt.
type ExploreStrategy struct {
	visited map[engine.Position]int
	order   []engine.Direction
}

func NewExploreStrategy() *ExploreStrategy {
	s := &ExploreStrategy{}
	s.Reset(1)
	return s
}

func (s *ExploreStrategy) NextMove(state *service.GameState) (engine.Direction, bool) {
	s.visited[state.Player]++

	possible := make(map[engine.Direction]bool, len(state.PossibleMoves))
	for _, name := range state.PossibleMoves {
		if dir, ok := engine.ParseDirection(name); ok {
			possible[dir] = true
		}
	}

	best, found := engine.Direction(0), false
	bestScore := 0
	for _, dir := range s.order {
		if !possible[dir] {
			continue
		}
		score := s.visited[state.Player.Add(dir)]
		if !found || score < bestScore {
			best, bestScore, found = dir, score, true
		}
	}
	return best, found
}

func (s *ExploreStrategy) Reset(attempt int) {
	s.visited = make(map[engine.Position]int)

	n := len(engine.Directions)
	shift := (attempt - 1) % n
	if shift < 0 {
		shift += n
	}
	s.order = append(append([]engine.Direction{}, engine.Directions[shift:]...), engine.Directions[:shift]...)
}
