package engine

// Session is one live game bound to a loaded maze. It is not safe for
// concurrent use.
type Session struct {
	maze       *Maze
	player     Position
	status     Status
	mapVisible bool
}

// NewSession places the player on the maze's start cell
func NewSession(maze *Maze) *Session {
	return &Session{
		maze:   maze,
		player: maze.Start(),
	}
}

// Maze returns the maze the session plays on
func (s *Session) Maze() *Maze { return s.maze }

// Player returns the player's current position
func (s *Session) Player() Position { return s.player }

// Status returns Won once the exit has been reached
func (s *Session) Status() Status { return s.status }

// MapVisible reports whether the last action was a map display rather than
// a move attempt. It only matters to whoever renders the game.
func (s *Session) MapVisible() bool { return s.mapVisible }

// CanMoveTo checks if the player can stand on p
func (s *Session) CanMoveTo(p Position) bool {
	cell, ok := s.maze.At(p)
	return ok && cell.Passable()
}

// AttemptMove tries to step one cell in direction d. Rejected moves leave
// the player where it was.
func (s *Session) AttemptMove(d Direction) MoveOutcome {
	s.mapVisible = false

	if s.status == Won {
		return MoveOutcome{Outcome: GameOver, Position: s.player}
	}
	// An unknown direction never leaves the current cell
	if !d.IsValid() {
		return MoveOutcome{Outcome: Blocked, Position: s.player}
	}

	candidate := s.player.Add(d)

	// Boundary first, then walls
	cell, ok := s.maze.At(candidate)
	if !ok {
		return MoveOutcome{Outcome: OutOfBounds, Position: candidate}
	}
	if cell == Wall {
		return MoveOutcome{Outcome: Blocked, Position: candidate}
	}

	s.player = candidate
	if s.player == s.maze.Exit() {
		s.status = Won
	}
	return MoveOutcome{Outcome: Moved, Position: candidate}
}

// CheckVictory reports whether the player stands on the exit
func (s *Session) CheckVictory() bool {
	return s.player == s.maze.Exit()
}

// ShowMap renders the grid with the player drawn as X on top of whatever
// cell it occupies.
func (s *Session) ShowMap() RenderedGrid {
	s.mapVisible = true

	grid := make(RenderedGrid, s.maze.Height())
	for y := range grid {
		line := s.maze.row(y)
		if y == s.player.Y {
			line[s.player.X] = PlayerMarker
		}
		grid[y] = string(line)
	}
	return grid
}

// reset returns the player to the start cell and reopens the game
func (s *Session) reset() {
	s.player = s.maze.Start()
	s.status = Playing
	s.mapVisible = false
}
