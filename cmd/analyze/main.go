// Command analyze prints quick, human-readable heuristics about the maze
// files in a directory (default "mazes"). It summarizes dimensions, wall
// density, the start to exit distance versus the shortest route, dead ends,
// and floor cells that cannot be reached from the start.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/mazegame/game/engine"
)

// MazeAnalysis holds the heuristics computed for one maze.
type MazeAnalysis struct {
	Width, Height    int
	Walls            int
	WallDensity      float64
	Start, Exit      engine.Position
	Distance         int
	ShortestPath     int
	Solvable         bool
	DeadEnds         []engine.Position
	UnreachableFloor []engine.Position
}

func main() {
	cmd := &cli.Command{
		Name:      "analyze",
		Usage:     "print heuristics for every maze in a directory",
		ArgsUsage: "[dir]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := "mazes"
			if cmd.Args().Present() {
				dir = cmd.Args().First()
			}

			files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error finding maze files: %v", err), 1)
			}
			for _, file := range files {
				fmt.Fprintf(cmd.Root().Writer, "\n=== Analyzing %s ===\n", filepath.Base(file))
				analyzeFile(cmd.Root().Writer, file)
			}
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func analyzeFile(out io.Writer, path string) {
	maze, err := engine.Load(path)
	if err != nil {
		fmt.Fprintf(out, "Error loading maze: %v\n", err)
		return
	}
	report(out, analyze(maze))
}

func analyze(maze *engine.Maze) MazeAnalysis {
	a := MazeAnalysis{
		Width:  maze.Width(),
		Height: maze.Height(),
		Walls:  engine.CountCells(maze, engine.Wall),
		Start:  maze.Start(),
		Exit:   maze.Exit(),
	}
	a.WallDensity = float64(a.Walls) / float64(a.Width*a.Height)
	a.Distance = engine.ManhattanDistance(a.Start, a.Exit)

	if path, ok := engine.ShortestPath(maze); ok {
		a.Solvable = true
		a.ShortestPath = len(path) - 1
	}

	reached := floodFill(maze, a.Start)
	for y := 0; y < a.Height; y++ {
		for x := 0; x < a.Width; x++ {
			p := engine.Position{X: x, Y: y}
			cell, _ := maze.At(p)
			if !cell.Passable() {
				continue
			}
			if !reached[p] {
				a.UnreachableFloor = append(a.UnreachableFloor, p)
			}
			if cell == engine.Floor && openNeighbours(maze, p) == 1 {
				a.DeadEnds = append(a.DeadEnds, p)
			}
		}
	}
	return a
}

// floodFill returns every passable cell reachable from the given position
func floodFill(maze *engine.Maze, from engine.Position) map[engine.Position]bool {
	visited := map[engine.Position]bool{from: true}
	queue := []engine.Position{from}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range engine.Directions {
			next := current.Add(dir)
			cell, in := maze.At(next)
			if !in || !cell.Passable() || visited[next] {
				continue
			}
			visited[next] = true
			queue = append(queue, next)
		}
	}
	return visited
}

func openNeighbours(maze *engine.Maze, p engine.Position) int {
	count := 0
	for _, dir := range engine.Directions {
		if cell, in := maze.At(p.Add(dir)); in && cell.Passable() {
			count++
		}
	}
	return count
}

func report(out io.Writer, a MazeAnalysis) {
	fmt.Fprintf(out, "Grid Size: %d x %d\n", a.Width, a.Height)
	fmt.Fprintf(out, "Walls: %d (%.0f%%)\n", a.Walls, a.WallDensity*100)
	fmt.Fprintf(out, "Start: %v  Exit: %v\n", a.Start, a.Exit)
	fmt.Fprintf(out, "Manhattan Distance: %d\n", a.Distance)

	if a.Solvable {
		fmt.Fprintf(out, "✅ Shortest route: %d moves (detour %d)\n", a.ShortestPath, a.ShortestPath-a.Distance)
	} else {
		fmt.Fprintf(out, "⚠️  CRITICAL: exit is unreachable from start!\n")
	}

	fmt.Fprintf(out, "Dead Ends: %d\n", len(a.DeadEnds))

	if len(a.UnreachableFloor) > 0 {
		fmt.Fprintf(out, "⚠️  WARNING: %d cells are unreachable from start!\n", len(a.UnreachableFloor))
		for i, p := range a.UnreachableFloor {
			if i < 5 { // Show first 5 unreachable cells
				fmt.Fprintf(out, "   Unreachable: %v\n", p)
			}
		}
		if len(a.UnreachableFloor) > 5 {
			fmt.Fprintf(out, "   ... and %d more\n", len(a.UnreachableFloor)-5)
		}
	} else {
		fmt.Fprintf(out, "✅ All open cells are reachable from start\n")
	}
}
