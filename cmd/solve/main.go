// Command solve plays a maze automatically through the game service, the
// same way a human or agent would: one move at a time, seeing only the game
// state and the rendered map.
//
// Two strategies are available:
//   - planned: reads the map once and follows a shortest route
//   - explore: ignores the map and prefers the least visited neighbour
//
// It exits non-zero when the maze is not solved within the move and attempt
// limits.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/mazegame/game/config"
	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

// Options bounds a solving run
type Options struct {
	MaxMoves    int
	MaxAttempts int
	Verbose     bool
	Delay       time.Duration
}

// Result summarizes a solving run
type Result struct {
	Won      bool
	Attempts int
	Moves    int
}

// solve drives the active game with strategy until it wins or runs out of
// attempts. Each attempt after the first starts from a reset game.
func solve(ctx context.Context, svc service.GameService, strategy Strategy, opts Options) (*Result, error) {
	state, err := svc.State(ctx)
	if err != nil {
		return nil, err
	}

	for attempt := 1; attempt <= opts.MaxAttempts; attempt++ {
		if attempt > 1 {
			state, err = svc.Reset(ctx)
			if err != nil {
				return nil, fmt.Errorf("failed to reset: %w", err)
			}
		}
		strategy.Reset(attempt)

		log.Printf("=== Attempt %d/%d ===", attempt, opts.MaxAttempts)

		moveCount := 0
		for !state.Victory && moveCount < opts.MaxMoves {
			if opts.Verbose && moveCount%50 == 0 {
				log.Printf("Position: %v, Moves: %d, Distance to exit: %d",
					state.Player, moveCount, engine.ManhattanDistance(state.Player, state.Exit))
			}

			dir, ok := strategy.NextMove(state)
			if !ok {
				log.Printf("No valid moves available")
				break
			}

			result, err := svc.Move(ctx, dir)
			if err != nil {
				return nil, fmt.Errorf("move %s failed: %w", dir, err)
			}
			moveCount++
			state = result.State

			if opts.Delay > 0 {
				select {
				case <-ctx.Done():
					return nil, ctx.Err()
				case <-time.After(opts.Delay):
				}
			}
		}

		log.Printf("Attempt %d: Moves=%d, Position=%v", attempt, moveCount, state.Player)

		if state.Victory {
			return &Result{Won: true, Attempts: attempt, Moves: moveCount}, nil
		}
	}

	return &Result{Won: false, Attempts: opts.MaxAttempts}, nil
}

// newStrategy builds the named strategy for the active game
func newStrategy(ctx context.Context, name string, svc service.GameService) (Strategy, error) {
	switch name {
	case "planned":
		grid, err := svc.ShowMap(ctx)
		if err != nil {
			return nil, err
		}
		state, err := svc.State(ctx)
		if err != nil {
			return nil, err
		}
		return NewPlannedStrategy(grid, state)
	case "explore":
		return NewExploreStrategy(), nil
	}
	return nil, fmt.Errorf("unknown strategy %q (use planned or explore)", name)
}

func main() {
	cmd := &cli.Command{
		Name:      "solve",
		Usage:     "play a maze automatically",
		ArgsUsage: "[maze]",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "maze-dir", Value: "mazes", Usage: "directory containing maze files", Sources: cli.EnvVars("MAZE_DIR")},
			&cli.StringFlag{Name: "strategy", Value: "planned", Usage: "planned or explore"},
			&cli.IntFlag{Name: "max-moves", Value: 3000, Usage: "maximum moves per attempt"},
			&cli.IntFlag{Name: "max-attempts", Value: 4, Usage: "maximum attempts before giving up"},
			&cli.IntFlag{Name: "delay", Value: 0, Usage: "delay between moves in milliseconds (0 = no delay)"},
			&cli.BoolFlag{Name: "v", Usage: "verbose output"},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			var library service.MazeLibrary
			if manager, err := config.NewManager(cmd.String("maze-dir")); err != nil {
				log.Printf("Maze library unavailable: %v", err)
			} else {
				library = manager
			}

			svc := service.NewGameService(library)
			info, err := svc.NewGame(ctx, cmd.Args().First())
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error loading maze: %v", err), 1)
			}
			log.Printf("Maze %s: %dx%d, start %v, exit %v",
				info.MazeName, info.State.Width, info.State.Height, info.State.Start, info.State.Exit)

			strategy, err := newStrategy(ctx, cmd.String("strategy"), svc)
			if err != nil {
				return cli.Exit(err.Error(), 2)
			}

			result, err := solve(ctx, svc, strategy, Options{
				MaxMoves:    int(cmd.Int("max-moves")),
				MaxAttempts: int(cmd.Int("max-attempts")),
				Verbose:     cmd.Bool("v"),
				Delay:       time.Duration(cmd.Int("delay")) * time.Millisecond,
			})
			if err != nil {
				return cli.Exit(fmt.Sprintf("Error: %v", err), 1)
			}

			if !result.Won {
				return cli.Exit(fmt.Sprintf("Failed to reach the exit after %d attempts", result.Attempts), 1)
			}
			fmt.Fprintf(cmd.Root().Writer, "Reached the exit in %d moves (attempt %d)\n", result.Moves, result.Attempts)
			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
