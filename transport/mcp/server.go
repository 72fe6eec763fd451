package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

// MaxBulkMoves caps the number of moves accepted by bulk_move
const MaxBulkMoves = 50

// Server exposes the game service as MCP tools
type Server struct {
	svc       service.GameService
	mcpServer *server.MCPServer
}

// NewServer creates an MCP server driving the given game service
func NewServer(svc service.GameService, version string) *Server {
	s := &Server{svc: svc}

	s.mcpServer = server.NewMCPServer(
		"Maze Game",
		version,
		server.WithToolCapabilities(true),
		server.WithInstructions(`Maze Game - MCP Interface

GAME OBJECTIVE:
Walk from the start cell (S) to the exit (E). Walls (#) and the maze edge block movement.

AVAILABLE TOOLS:
- new_game: Start a game on a maze file path or library maze name
- move: Single move (up/down/left/right)
- bulk_move: Several moves in sequence, stopping at the first rejected move
- show_map: Print the maze with your position marked X
- game_state: Current position, status and possible moves
- describe_cell: What is at a given cell
- reset_game: Return to the start
- move_history: Moves attempted since the game started
- list_mazes: Mazes available in the library
- game_instructions: Rules of the game`),
	)

	s.registerTools()
	return s
}

// GetMCPServer returns the underlying MCP server for serving
func (s *Server) GetMCPServer() *server.MCPServer {
	return s.mcpServer
}

// ServeStdio serves MCP over stdin/stdout until the input closes
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func directionProperty(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"enum":        directionNames(),
		"description": description,
	}
}

// registerTools registers all MCP tools
func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.Tool{
		Name:        "new_game",
		Description: "Start a new game, replacing any game in progress",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"maze": map[string]interface{}{
					"type":        "string",
					"description": "Maze file path or library maze name (optional, defaults to the library default)",
				},
			},
		},
	}, s.handleNewGame)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move",
		Description: "Move the player one cell in a direction",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"direction": directionProperty("Direction to move"),
			},
			Required: []string{"direction"},
		},
	}, s.handleMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "bulk_move",
		Description: "Execute multiple moves in sequence, stopping at the first blocked move",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"moves": map[string]interface{}{
					"type":        "array",
					"items":       directionProperty("Direction to move"),
					"description": "Array of moves",
				},
			},
			Required: []string{"moves"},
		},
	}, s.handleBulkMove)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "show_map",
		Description: "Render the maze with the player's position marked X",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleShowMap)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_state",
		Description: "Get the current game state",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameState)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "describe_cell",
		Description: "Get the content of a specific grid cell",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"x": map[string]interface{}{
					"type":        "integer",
					"description": "X coordinate (column) of the cell to describe (0-based)",
				},
				"y": map[string]interface{}{
					"type":        "integer",
					"description": "Y coordinate (row) of the cell to describe (0-based)",
				},
			},
			Required: []string{"x", "y"},
		},
	}, s.handleDescribeCell)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "reset_game",
		Description: "Put the player back on the start cell",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleReset)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "move_history",
		Description: "Get the moves attempted since the game started or was reset",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleMoveHistory)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "list_mazes",
		Description: "List mazes available in the library",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleListMazes)

	s.mcpServer.AddTool(mcp.Tool{
		Name:        "game_instructions",
		Description: "Get the rules of the game",
		InputSchema: mcp.ToolInputSchema{
			Type:       "object",
			Properties: map[string]interface{}{},
		},
	}, s.handleGameInstructions)
}

// Tool handlers

func (s *Server) handleNewGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mazeRef, _ := request.GetArguments()["maze"].(string)

	info, err := s.svc.NewGame(ctx, mazeRef)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := fmt.Sprintf("Started %s\n\n%s", info.MazeName, formatGameState(info.State))
	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, _ := request.GetArguments()["direction"].(string)
	dir, ok := engine.ParseDirection(name)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("invalid direction %q, use one of: %s", name, strings.Join(directionNames(), ", "))), nil
	}

	result, err := s.svc.Move(ctx, dir)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	return mcp.NewToolResultText(formatMoveResult(result)), nil
}

func (s *Server) handleBulkMove(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	movesRaw, _ := request.GetArguments()["moves"].([]interface{})
	if len(movesRaw) == 0 {
		return mcp.NewToolResultError("moves must be a non-empty array"), nil
	}

	truncated := false
	if len(movesRaw) > MaxBulkMoves {
		movesRaw = movesRaw[:MaxBulkMoves]
		truncated = true
	}

	// Validate everything before moving
	dirs := make([]engine.Direction, 0, len(movesRaw))
	for i, m := range movesRaw {
		name, _ := m.(string)
		dir, ok := engine.ParseDirection(name)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("invalid direction %q at index %d", name, i)), nil
		}
		dirs = append(dirs, dir)
	}

	var b strings.Builder
	executed := 0
	var last *service.MoveResult
	for i, dir := range dirs {
		result, err := s.svc.Move(ctx, dir)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		last = result
		fmt.Fprintf(&b, "%d. %s %v -> %v: %s\n", i+1, dir, result.From, result.To, result.Outcome)
		if !result.Success {
			fmt.Fprintf(&b, "Stopped on move %d: %s\n", i+1, result.Message)
			break
		}
		executed++
		if result.Victory {
			break
		}
	}

	fmt.Fprintf(&b, "\nMoves executed: %d/%d\n", executed, len(dirs))
	if truncated {
		fmt.Fprintf(&b, "Only the first %d moves were processed.\n", MaxBulkMoves)
	}
	b.WriteString("\n" + formatGameState(last.State))
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleShowMap(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	grid, err := s.svc.ShowMap(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(grid.String()), nil
}

func (s *Server) handleGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.svc.State(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (s *Server) handleDescribeCell(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	xRaw, okX := args["x"].(float64)
	yRaw, okY := args["y"].(float64)
	if !okX || !okY {
		return mcp.NewToolResultError("x and y are required integers"), nil
	}
	x, y := int(xRaw), int(yRaw)

	state, err := s.svc.State(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if x < 0 || x >= state.Width || y < 0 || y >= state.Height {
		return mcp.NewToolResultError(fmt.Sprintf("Coordinates (%d, %d) are out of bounds. Maze is %dx%d (x 0-%d, y 0-%d)",
			x, y, state.Width, state.Height, state.Width-1, state.Height-1)), nil
	}

	pos := engine.Position{X: x, Y: y}
	cell, err := s.svc.Cell(ctx, pos)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Cell (%d, %d): '%c' %s\n", x, y, byte(cell), cell)
	if cell.Passable() {
		b.WriteString("Passable: yes\n")
	} else {
		b.WriteString("Passable: no\n")
	}
	if pos == state.Player {
		b.WriteString("You are standing here.\n")
	}
	fmt.Fprintf(&b, "Distance from you: %d\n", engine.ManhattanDistance(state.Player, pos))
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleReset(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	state, err := s.svc.Reset(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	return mcp.NewToolResultText(formatGameState(state)), nil
}

func (s *Server) handleMoveHistory(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history, err := s.svc.MoveHistory(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	if len(history) == 0 {
		return mcp.NewToolResultText("No moves yet."), nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Move history (%d):\n", len(history))
	for _, entry := range history {
		fmt.Fprintf(&b, "%d. %s %v -> %v: %s\n",
			entry.MoveNumber, entry.Direction, entry.FromPosition, entry.ToPosition, entry.Outcome)
	}
	return mcp.NewToolResultText(b.String()), nil
}

func (s *Server) handleListMazes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	mazes, err := s.svc.ListMazes(ctx)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result := "Available Mazes:\n\n"
	for _, maze := range mazes {
		result += fmt.Sprintf("• %s (%s)\n  Size: %dx%d, Walls: %d\n", maze.MazeID, maze.Filename, maze.Width, maze.Height, maze.Walls)
		if maze.Solvable {
			result += fmt.Sprintf("  Shortest route: %d moves\n\n", maze.ShortestPath)
		} else {
			result += "  Exit unreachable\n\n"
		}
	}

	return mcp.NewToolResultText(result), nil
}

func (s *Server) handleGameInstructions(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	instructions := `Maze Game - Instructions

GAME OBJECTIVE:
Reach the exit cell (E) starting from the start cell (S).

MAP LEGEND:
• # = Wall (impassable)
• . = Floor
• S = Start
• E = Exit
• X = You (drawn over whatever cell you stand on)

MOVEMENT:
• up decreases y, down increases y, left decreases x, right increases x
• Coordinates are 0-based: (x, y) with (0, 0) in the top-left corner
• Moving into a wall is rejected as "blocked"
• Moving off the edge of the maze is rejected as "out_of_bounds"
• Rejected moves leave you where you were

WINNING:
The game is won the moment you step onto E. After that every move reports
game_over; use new_game or reset_game to play again.`

	return mcp.NewToolResultText(instructions), nil
}

// Formatting helpers

func formatGameState(state *service.GameState) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Maze: %s (%dx%d)\n", state.MazeName, state.Width, state.Height)
	fmt.Fprintf(&b, "Position: %v\n", state.Player)
	fmt.Fprintf(&b, "Exit: %v (distance %d)\n", state.Exit, engine.ManhattanDistance(state.Player, state.Exit))
	fmt.Fprintf(&b, "Status: %s\n", state.Status)
	fmt.Fprintf(&b, "Moves: %d\n", state.TotalMoves)
	if len(state.PossibleMoves) > 0 {
		fmt.Fprintf(&b, "Possible moves: %s\n", strings.Join(state.PossibleMoves, ", "))
	} else {
		b.WriteString("Possible moves: none\n")
	}
	if state.MapVisible {
		b.WriteString("Map: shown since last move\n")
	}
	if state.Message != "" {
		fmt.Fprintf(&b, "Message: %s\n", state.Message)
	}
	return b.String()
}

func formatMoveResult(result *service.MoveResult) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", result.Message)
	fmt.Fprintf(&b, "Outcome: %s\n", result.Outcome)
	if result.AttemptedTo != nil {
		fmt.Fprintf(&b, "Attempted: %v\n", *result.AttemptedTo)
	}
	b.WriteString("\n" + formatGameState(result.State))
	return b.String()
}

func directionNames() []string {
	names := make([]string, len(engine.Directions))
	for i, dir := range engine.Directions {
		names[i] = dir.String()
	}
	return names
}
