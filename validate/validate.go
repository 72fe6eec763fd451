// Command validate checks every maze file (*.txt) in a directory. It checks:
//   - The file loads: dimensions, rectangular rows and allowed characters (#, ., S, E)
//   - Exactly one start (S) and one exit (E)
//   - Connectivity: the exit is reachable from the start through floor cells
//
// An unreachable exit is reported as a warning, since such a maze still loads
// and plays; --strict turns it into an error.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/mazegame/game/engine"
)

// ValidationResult captures the outcome of validating a single file.
// If Valid is true, Messages contains informational lines; otherwise it
// holds the errors that were found.
type ValidationResult struct {
	File     string
	Valid    bool
	Messages []string
	Warnings []string
}

// validateMaze loads a single maze file and analyses its connectivity.
func validateMaze(filePath string, strict bool) ValidationResult {
	result := ValidationResult{
		File:     filepath.Base(filePath),
		Valid:    true,
		Messages: []string{},
	}

	maze, err := engine.Load(filePath)
	if err != nil {
		result.Valid = false
		result.Messages = append(result.Messages, describeLoadError(err))
		return result
	}

	path, reachable := engine.ShortestPath(maze)
	if !reachable {
		msg := fmt.Sprintf("Connectivity failure: exit %v unreachable from start %v", maze.Exit(), maze.Start())
		if strict {
			result.Valid = false
			result.Messages = append(result.Messages, msg)
			return result
		}
		result.Warnings = append(result.Warnings, msg)
	}

	floor := engine.CountCells(maze, engine.Floor)
	walls := engine.CountCells(maze, engine.Wall)

	result.Messages = append(result.Messages, fmt.Sprintf("✓ Grid: %dx%d", maze.Width(), maze.Height()))
	result.Messages = append(result.Messages, fmt.Sprintf("✓ Start: %v", maze.Start()))
	result.Messages = append(result.Messages, fmt.Sprintf("✓ Exit: %v", maze.Exit()))
	result.Messages = append(result.Messages, fmt.Sprintf("✓ Walls: %d, floor: %d", walls, floor))
	if reachable {
		result.Messages = append(result.Messages, fmt.Sprintf("✓ Connectivity: exit reachable in %d moves", len(path)-1))
	}

	return result
}

// describeLoadError turns a load failure into a single report line
func describeLoadError(err error) string {
	le, ok := err.(*engine.LoadError)
	if !ok {
		return err.Error()
	}

	switch le.Kind {
	case engine.FileUnreadable:
		return fmt.Sprintf("Failed to read file: %v", le.Err)
	case engine.InvalidCharacter:
		return fmt.Sprintf("Invalid character at row %d, col %d: %s", le.Row, le.Col, le.Detail)
	case engine.NotRectangular:
		return fmt.Sprintf("Inconsistent row width at row %d: %s", le.Row, le.Detail)
	case engine.MissingMarker:
		return fmt.Sprintf("Missing %s marker '%c'", le.Marker, byte(le.Marker))
	case engine.DuplicateMarker:
		return fmt.Sprintf("More than one %s marker '%c': %s", le.Marker, byte(le.Marker), le.Detail)
	case engine.InvalidDimensions:
		return fmt.Sprintf("Invalid dimensions: %s", le.Detail)
	}
	return fmt.Sprintf("%s: %s", le.Kind, le.Detail)
}

// validateDir validates every maze in dir, writing a report to out.
// It returns false if any maze is invalid.
func validateDir(dir string, strict bool, out io.Writer) (bool, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return false, fmt.Errorf("error finding maze files: %w", err)
	}
	if len(files) == 0 {
		return false, fmt.Errorf("no maze files found in %s", dir)
	}

	allValid := true
	for _, file := range files {
		result := validateMaze(file, strict)

		fmt.Fprintf(out, "\n%s %s\n", strings.Repeat("=", 20), result.File)

		if result.Valid {
			fmt.Fprintln(out, "✅ VALID")
			for _, info := range result.Messages {
				fmt.Fprintln(out, "  "+info)
			}
			for _, warning := range result.Warnings {
				fmt.Fprintln(out, "  ⚠️  "+warning)
			}
		} else {
			fmt.Fprintln(out, "❌ INVALID")
			allValid = false
			for _, msg := range result.Messages {
				fmt.Fprintln(out, "  ❌ "+msg)
			}
		}
	}

	fmt.Fprintf(out, "\n%s\n", strings.Repeat("=", 40))
	if allValid {
		fmt.Fprintln(out, "✅ All mazes are valid!")
	} else {
		fmt.Fprintln(out, "❌ Some mazes have errors")
	}
	return allValid, nil
}

func command() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "validate the maze files in a directory",
		ArgsUsage: "[dir]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "treat an unreachable exit as an error",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := "mazes"
			if cmd.Args().Present() {
				dir = cmd.Args().First()
			}

			valid, err := validateDir(dir, cmd.Bool("strict"), cmd.Root().Writer)
			if err != nil {
				return cli.Exit(err.Error(), 1)
			}
			if !valid {
				return cli.Exit("", 1)
			}
			return nil
		},
	}
}

// main validates ./mazes (or the given directory), exiting with non-zero
// status if any maze is invalid.
func main() {
	if err := command().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
