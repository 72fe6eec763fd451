// Package mcp provides the Model Context Protocol server for the maze game.
//
// The mcp package implements:
//   - MCP server for AI agent integration over stdio
//   - Tool definitions wrapping the game service
//   - Plain-text formatting of game state for agents
//
// MCP Tools:
//
// The package exposes the following tools for AI agents:
//   - new_game: Start a game from a maze path or library name
//   - move: Execute single directional movement
//   - bulk_move: Execute multiple moves in sequence
//   - show_map: Render the maze with the player marked X
//   - game_state: Get current position, status and possible moves
//   - describe_cell: Inspect a single grid cell
//   - reset_game: Return the player to the start
//   - move_history: Retrieve moves attempted since the last start
//   - list_mazes: List mazes available in the library
//   - game_instructions: Rules and map legend
//
// Tool failures such as a missing game or a bad direction are reported as
// tool errors rather than protocol errors, so the agent can read and react.
//
// Usage:
//
//	server := mcp.NewServer(gameService, version)
//	if err := server.ServeStdio(); err != nil {
//		log.Fatal(err)
//	}
package mcp
