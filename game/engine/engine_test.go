package engine

import (
	"reflect"
	"testing"
)

func createTestEngine(t *testing.T) *GameEngine {
	t.Helper()
	engine, err := NewEngine(createWalledMaze(t))
	if err != nil {
		t.Fatalf("Failed to create engine: %v", err)
	}
	return engine
}

func TestNewEngine(t *testing.T) {
	engine := createTestEngine(t)

	if engine.PlayerPosition() != (Position{X: 0, Y: 0}) {
		t.Errorf("Expected player at start, got %v", engine.PlayerPosition())
	}
	if engine.Status() != Playing {
		t.Errorf("Expected playing, got %v", engine.Status())
	}
	if len(engine.MoveHistory()) != 0 {
		t.Error("Expected empty history")
	}
	if engine.LastMove() != nil {
		t.Error("Expected no last move")
	}
}

func TestNewEngine_NilMaze(t *testing.T) {
	if _, err := NewEngine(nil); err == nil {
		t.Error("Expected error for nil maze")
	}
}

func TestLoadEngine(t *testing.T) {
	path := writeMazeFile(t, validMazeText())

	engine, err := LoadEngine(path)
	if err != nil {
		t.Fatalf("LoadEngine failed: %v", err)
	}
	if engine.Maze().Name() != path {
		t.Errorf("Expected maze name %s, got %s", path, engine.Maze().Name())
	}

	if _, err := LoadEngine(path + ".missing"); KindOf(err) != FileUnreadable {
		t.Errorf("Expected file unreadable, got %v", err)
	}
}

func TestEngine_MoveRecordsHistory(t *testing.T) {
	engine := createTestEngine(t)

	engine.Move(Right) // blocked by wall
	engine.Move(Down)

	history := engine.MoveHistory()
	if len(history) != 2 {
		t.Fatalf("Expected 2 history entries, got %d", len(history))
	}

	if history[0].Outcome != Blocked || history[0].ToPosition != history[0].FromPosition {
		t.Errorf("Unexpected first entry: %+v", history[0])
	}
	if history[1].Outcome != Moved || history[1].ToPosition != (Position{X: 0, Y: 1}) {
		t.Errorf("Unexpected second entry: %+v", history[1])
	}
	if history[1].MoveNumber != 2 {
		t.Errorf("Expected move number 2, got %d", history[1].MoveNumber)
	}
	if engine.LastMove().Direction != Down {
		t.Errorf("Expected last move down, got %v", engine.LastMove().Direction)
	}
	if engine.TotalMoves() != 1 {
		t.Errorf("Expected 1 successful move, got %d", engine.TotalMoves())
	}
}

func TestEngine_PossibleMoves(t *testing.T) {
	engine := createTestEngine(t)

	if got := engine.PossibleMoves(); !reflect.DeepEqual(got, []Direction{Down}) {
		t.Errorf("Expected only down from start, got %v", got)
	}

	engine.Move(Down)
	expected := []Direction{Up, Right}
	if got := engine.PossibleMoves(); !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected %v, got %v", expected, got)
	}
}

func TestEngine_CanMove(t *testing.T) {
	engine := createTestEngine(t)

	tests := []struct {
		direction Direction
		expected  bool
	}{
		{Up, false},
		{Down, true},
		{Left, false},
		{Right, false},
		{Direction(42), false},
	}

	for _, test := range tests {
		if result := engine.CanMove(test.direction); result != test.expected {
			t.Errorf("CanMove(%v): expected %v, got %v", test.direction, test.expected, result)
		}
	}
}

func TestEngine_WinAndReset(t *testing.T) {
	engine := createTestEngine(t)

	path, ok := ShortestPath(engine.Maze())
	if !ok {
		t.Fatal("Expected test maze to be solvable")
	}
	for i := 1; i < len(path); i++ {
		dir := directionBetween(path[i-1], path[i])
		if outcome := engine.Move(dir); outcome.Outcome != Moved {
			t.Fatalf("Step %d: expected move, got %v", i, outcome.Outcome)
		}
	}

	if !engine.IsVictory() || engine.Status() != Won {
		t.Fatal("Expected victory after following shortest path")
	}
	if len(engine.PossibleMoves()) != 0 {
		t.Error("Expected no possible moves after victory")
	}

	engine.ShowMap()
	engine.Reset()

	if engine.PlayerPosition() != engine.Maze().Start() {
		t.Errorf("Expected reset to return player to start, got %v", engine.PlayerPosition())
	}
	if engine.Status() != Playing {
		t.Error("Expected reset to reopen the game")
	}
	if engine.MapVisible() {
		t.Error("Expected reset to hide the map")
	}
	if len(engine.MoveHistory()) != 0 {
		t.Error("Expected reset to clear history")
	}
}

func directionBetween(from, to Position) Direction {
	for _, dir := range Directions {
		if from.Add(dir) == to {
			return dir
		}
	}
	return Direction(0)
}
