// Package service provides the business logic layer for the maze game.
//
// The service package implements:
//   - Starting a game from a maze file or a library maze
//   - Move processing and player-facing messages
//   - Map rendering and state snapshots
//   - Move history access
//
// Core Interfaces:
//
// GameService is the main service interface providing high-level game
// operations. MazeLibrary resolves maze names for NewGame and ListMazes.
//
// Architecture:
//
// The service layer sits between the transports (terminal shell and MCP
// stdio) and the game engine. A process plays one game at a time; starting a
// new game replaces the current one. Calls are serialised with a mutex so a
// transport may dispatch requests from several goroutines.
//
// Usage:
//
//	library, err := config.NewManager("mazes")
//	if err != nil {
//		log.Fatal(err)
//	}
//	gameService := service.NewGameService(library)
//
//	// Start a game
//	info, err := gameService.NewGame(ctx, "classic")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Execute moves
//	result, err := gameService.Move(ctx, engine.Right)
package service
