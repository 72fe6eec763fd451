// Package config provides the maze library for the maze game.
//
// The config package handles:
//   - Loading maze files from a library directory by name
//   - Caching validated mazes
//   - Default maze selection
//   - Maze discovery and listing
//
// Library Format:
//
// Mazes are stored as plain text files with a .txt extension in the maze
// directory (MAZE_DIR, "mazes" by default). The file name without the
// extension is the maze id used by the play command and the MCP tools.
//
// Usage:
//
//	manager, err := config.NewManager("mazes")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Load a specific maze
//	maze, err := manager.LoadMaze("classic")
//
//	// List available mazes
//	mazes, err := manager.ListMazes()
//
// The default maze is classic.txt when present, otherwise the first valid
// maze in the directory, otherwise a small built-in maze.
package config
