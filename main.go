// Command mazegame plays a text-file maze in the terminal.
//
// It supports three modes:
//  1. "mazegame <maze>" or "play [maze]" – interactive W/A/S/D play on stdin/stdout
//  2. "list" – prints the mazes found in the maze directory
//  3. "mcp" – runs an MCP stdio server so an agent can play
//
// A maze argument is tried as a file path first, then as a name in the maze
// directory. Flags control the maze directory and debug logging.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
	"github.com/wricardo/mcp-training/mazegame/game/config"
	"github.com/wricardo/mcp-training/mazegame/game/service"
	"github.com/wricardo/mcp-training/mazegame/transport/mcp"
	"github.com/wricardo/mcp-training/mazegame/transport/terminal"
)

// Version information
const (
	Version = "1.0.0"
	AppName = "Maze Game"
)

// Exit codes
const (
	exitLoadFailure = 1
	exitUsage       = 2
)

const usageLine = "Usage: mazegame [options] <maze-file>"

// app carries the process streams so the command tree can run under test
type app struct {
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer

	// envNote is logged once logging is configured
	envNote string
}

// main loads .env, then runs the command tree and exits with its code.
func main() {
	a := &app{stdin: os.Stdin, stdout: os.Stdout, stderr: os.Stderr}

	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			a.envNote = fmt.Sprintf("Warning: Error loading .env file: %v", err)
		}
	} else {
		a.envNote = "Loaded environment variables from .env file"
	}

	os.Exit(a.run(context.Background(), os.Args))
}

// run executes the command tree and maps its result to an exit code
func (a *app) run(ctx context.Context, args []string) int {
	err := a.command().Run(ctx, args)
	if err == nil {
		return 0
	}

	var exitErr cli.ExitCoder
	if errors.As(err, &exitErr) {
		if msg := exitErr.Error(); msg != "" {
			fmt.Fprintln(a.stderr, msg)
		}
		return exitErr.ExitCode()
	}

	fmt.Fprintf(a.stderr, "Error: %v\n", err)
	return exitUsage
}

func (a *app) command() *cli.Command {
	return &cli.Command{
		Name:      "mazegame",
		Usage:     "walk from S to E through a text-file maze",
		ArgsUsage: "<maze-file>",
		Version:   Version,
		Reader:    a.stdin,
		Writer:    a.stdout,
		ErrWriter: a.stderr,
		// Exit codes are handled by run
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "maze-dir",
				Value:   "mazes",
				Usage:   "directory containing maze files",
				Sources: cli.EnvVars("MAZE_DIR"),
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "enable debug logging on stderr",
				Sources: cli.EnvVars("MAZE_DEBUG"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() != 1 {
				return cli.Exit(usageLine, exitUsage)
			}
			return a.play(ctx, cmd, cmd.Args().First())
		},
		Commands: []*cli.Command{
			{
				Name:      "play",
				Usage:     "play a maze file or library maze (default maze when omitted)",
				ArgsUsage: "[maze]",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() > 1 {
						return cli.Exit("Usage: mazegame play [maze]", exitUsage)
					}
					return a.play(ctx, cmd, cmd.Args().First())
				},
			},
			{
				Name:  "list",
				Usage: "list the mazes in the maze directory",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					a.setupLogging(cmd, a.stderr)
					return a.list(ctx, cmd)
				},
			},
			{
				Name:  "mcp",
				Usage: "run an MCP stdio server for agent play",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					// stdout carries the protocol
					a.setupLogging(cmd, a.stderr)
					return a.serveMCP(cmd)
				},
			},
		},
	}
}

// setupLogging configures the standard logger. Interactive play passes
// io.Discard so log lines never interleave with the prompt.
func (a *app) setupLogging(cmd *cli.Command, out io.Writer) {
	if cmd.Bool("debug") {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
		log.SetOutput(a.stderr)
	} else {
		log.SetFlags(log.LstdFlags)
		log.SetOutput(out)
	}

	if a.envNote != "" {
		log.Println(a.envNote)
	}
}

// openLibrary returns the maze library, or nil when the directory is
// unusable. A missing library only matters for name lookups.
func openLibrary(cmd *cli.Command) service.MazeLibrary {
	dir := cmd.String("maze-dir")
	manager, err := config.NewManager(dir)
	if err != nil {
		log.Printf("Maze library unavailable: %v", err)
		return nil
	}
	log.Printf("Maze library: %s", manager.Dir())
	return manager
}

func (a *app) play(ctx context.Context, cmd *cli.Command, mazeRef string) error {
	a.setupLogging(cmd, io.Discard)
	log.Printf("Starting %s v%s", AppName, Version)

	svc := service.NewGameService(openLibrary(cmd))
	info, err := svc.NewGame(ctx, mazeRef)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error loading maze: %v", err), exitLoadFailure)
	}
	log.Printf("Loaded maze %s (%dx%d)", info.MazeName, info.State.Width, info.State.Height)

	shell := terminal.NewShell(svc, a.stdin, a.stdout)
	if err := shell.Run(ctx); err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), exitLoadFailure)
	}
	return nil
}

func (a *app) list(ctx context.Context, cmd *cli.Command) error {
	dir := cmd.String("maze-dir")
	manager, err := config.NewManager(dir)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), exitLoadFailure)
	}

	mazes, err := service.NewGameService(manager).ListMazes(ctx)
	if err != nil {
		return cli.Exit(fmt.Sprintf("Error: %v", err), exitLoadFailure)
	}

	if len(mazes) == 0 {
		fmt.Fprintf(a.stdout, "No valid mazes in %s\n", dir)
		return nil
	}

	fmt.Fprintf(a.stdout, "Mazes in %s:\n", dir)
	for _, maze := range mazes {
		route := "unreachable exit"
		if maze.Solvable {
			route = fmt.Sprintf("shortest route %d", maze.ShortestPath)
		}
		fmt.Fprintf(a.stdout, "  %-16s %3dx%-3d walls %-4d %s\n", maze.MazeID, maze.Width, maze.Height, maze.Walls, route)
	}
	return nil
}

func (a *app) serveMCP(cmd *cli.Command) error {
	log.Printf("Starting %s v%s (mode: mcp)", AppName, Version)

	server := mcp.NewServer(service.NewGameService(openLibrary(cmd)), Version)
	log.Println("MCP stdio server ready")
	if err := server.ServeStdio(); err != nil {
		return cli.Exit(fmt.Sprintf("MCP stdio server error: %v", err), exitLoadFailure)
	}
	return nil
}
