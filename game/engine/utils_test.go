package engine

import "testing"

func TestManhattanDistance(t *testing.T) {
	tests := []struct {
		from, to Position
		expected int
	}{
		{Position{0, 0}, Position{0, 0}, 0},
		{Position{0, 0}, Position{4, 4}, 8},
		{Position{3, 1}, Position{1, 3}, 4},
	}

	for _, test := range tests {
		if got := ManhattanDistance(test.from, test.to); got != test.expected {
			t.Errorf("ManhattanDistance(%v, %v) = %d, expected %d", test.from, test.to, got, test.expected)
		}
	}
}

func TestCountCells(t *testing.T) {
	maze := createWalledMaze(t)

	if got := CountCells(maze, Wall); got != 4 {
		t.Errorf("Expected 4 walls, got %d", got)
	}
	if got := CountCells(maze, Start); got != 1 {
		t.Errorf("Expected 1 start, got %d", got)
	}
	if got := CountCells(maze, Floor); got != 19 {
		t.Errorf("Expected 19 floor cells, got %d", got)
	}
}

func TestShortestPath_OpenMaze(t *testing.T) {
	maze := createOpenMaze(t)

	path, ok := ShortestPath(maze)
	if !ok {
		t.Fatal("Expected open maze to be solvable")
	}
	if len(path) != 9 {
		t.Errorf("Expected 9 cells on the path, got %d", len(path))
	}
	if path[0] != maze.Start() || path[len(path)-1] != maze.Exit() {
		t.Errorf("Expected path from start to exit, got %v", path)
	}
	for i := 1; i < len(path); i++ {
		if ManhattanDistance(path[i-1], path[i]) != 1 {
			t.Errorf("Path step %d is not adjacent: %v -> %v", i, path[i-1], path[i])
		}
	}
}

func TestShortestPath_AvoidsWalls(t *testing.T) {
	maze := createWalledMaze(t)

	path, ok := ShortestPath(maze)
	if !ok {
		t.Fatal("Expected walled maze to be solvable")
	}
	for _, p := range path {
		if cell, _ := maze.At(p); cell == Wall {
			t.Errorf("Path crosses wall at %v", p)
		}
	}
}

func TestShortestPath_Unreachable(t *testing.T) {
	maze := mustParse(t,
		"S.#..",
		"..#..",
		"###..",
		".....",
		"....E",
	)

	if path, ok := ShortestPath(maze); ok {
		t.Errorf("Expected exit to be unreachable, got path %v", path)
	}
}

func TestFindPath(t *testing.T) {
	maze := createWalledMaze(t)

	path, ok := FindPath(maze, Position{X: 4, Y: 0}, Position{X: 0, Y: 4})
	if !ok {
		t.Fatal("Expected a path between open cells")
	}
	if path[0] != (Position{X: 4, Y: 0}) || path[len(path)-1] != (Position{X: 0, Y: 4}) {
		t.Errorf("Path has wrong endpoints: %v", path)
	}
	if len(path)-1 != 8 {
		t.Errorf("Expected 8 moves, got %d", len(path)-1)
	}

	if _, ok := FindPath(maze, Position{X: 0, Y: 0}, Position{X: 1, Y: 0}); ok {
		t.Error("Expected no path into a wall")
	}
	if _, ok := FindPath(maze, Position{X: -1, Y: 0}, Position{X: 4, Y: 4}); ok {
		t.Error("Expected no path from outside the maze")
	}

	path, ok = FindPath(maze, maze.Exit(), maze.Exit())
	if !ok || len(path) != 1 {
		t.Errorf("Expected single-cell path, got %v", path)
	}
}

func TestPathDirections(t *testing.T) {
	maze := createWalledMaze(t)
	path, ok := ShortestPath(maze)
	if !ok {
		t.Fatal("Expected walled maze to be solvable")
	}

	dirs := PathDirections(path)
	if len(dirs) != len(path)-1 {
		t.Fatalf("Expected %d directions, got %d", len(path)-1, len(dirs))
	}

	session := NewSession(maze)
	for _, dir := range dirs {
		if outcome := session.AttemptMove(dir); outcome.Outcome != Moved {
			t.Fatalf("Planned move %s was %s", dir, outcome.Outcome)
		}
	}
	if !session.CheckVictory() {
		t.Error("Expected walking the path to reach the exit")
	}
}
