// Package terminal provides the interactive keyboard shell for the maze game.
//
// The shell prints a prompt, reads the next non-blank character and maps it
// to a command before the game is consulted:
//   - W/A/S/D (any case): move up, left, down, right
//   - M: print the map with the player drawn as X
//   - Q: quit
//
// Any other key prints a fixed hint and the prompt repeats. Walls and the
// maze edge produce different messages. The loop ends on quit, on victory,
// or when input is exhausted.
//
// Usage:
//
//	shell := terminal.NewShell(gameService, os.Stdin, os.Stdout)
//	if err := shell.Run(ctx); err != nil {
//		log.Fatal(err)
//	}
package terminal
