package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"unicode"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

const (
	Prompt          = "Enter move (W/A/S/D/M/Q): "
	MsgInvalidInput = "Invalid input. Use W/A/S/D to move, M to show the map, Q to quit."
	MsgGoodbye      = "Goodbye!"
)

// CommandKind is what a keystroke asks the game to do
type CommandKind int

const (
	CmdMove CommandKind = iota + 1
	CmdMap
	CmdQuit
)

// Command is a validated keystroke
type Command struct {
	Kind      CommandKind
	Direction engine.Direction
}

// ParseCommand maps a keystroke to a command, case-insensitively
func ParseCommand(r rune) (Command, bool) {
	switch unicode.ToUpper(r) {
	case 'W':
		return Command{Kind: CmdMove, Direction: engine.Up}, true
	case 'S':
		return Command{Kind: CmdMove, Direction: engine.Down}, true
	case 'A':
		return Command{Kind: CmdMove, Direction: engine.Left}, true
	case 'D':
		return Command{Kind: CmdMove, Direction: engine.Right}, true
	case 'M':
		return Command{Kind: CmdMap}, true
	case 'Q':
		return Command{Kind: CmdQuit}, true
	}
	return Command{}, false
}

// Shell runs the interactive prompt loop against a started game
type Shell struct {
	svc service.GameService
	in  *bufio.Reader
	out io.Writer
}

// NewShell creates a shell reading keystrokes from in and writing to out
func NewShell(svc service.GameService, in io.Reader, out io.Writer) *Shell {
	return &Shell{
		svc: svc,
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Run prompts for keystrokes until the player quits, wins, or input ends.
// All three are normal endings and return nil.
func (s *Shell) Run(ctx context.Context) error {
	state, err := s.svc.State(ctx)
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "%s\n", state.Message)
	fmt.Fprintf(s.out, "Maze %dx%d, start at %v.\n", state.Width, state.Height, state.Start)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		fmt.Fprint(s.out, Prompt)
		r, err := s.readKey()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			log.Printf("input closed, leaving game")
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		cmd, ok := ParseCommand(r)
		if !ok {
			fmt.Fprintln(s.out, MsgInvalidInput)
			continue
		}

		switch cmd.Kind {
		case CmdQuit:
			fmt.Fprintln(s.out, MsgGoodbye)
			return nil

		case CmdMap:
			grid, err := s.svc.ShowMap(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, grid.String())

		case CmdMove:
			result, err := s.svc.Move(ctx, cmd.Direction)
			if err != nil {
				return err
			}
			fmt.Fprintln(s.out, result.Message)
			log.Printf("move %s: %s at %v", cmd.Direction, result.Outcome, result.To)
			if result.Victory {
				return nil
			}
		}
	}
}

// readKey returns the next non-space character, like scanf(" %c")
func (s *Shell) readKey() (rune, error) {
	for {
		r, _, err := s.in.ReadRune()
		if err != nil {
			return 0, err
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}
