// Package engine provides the core game logic for the maze game.
//
// The engine package implements:
//   - Loading and validating maze text files
//   - Grid-based movement with wall and boundary collision
//   - Victory detection and map rendering
//
// Core Types:
//
// Maze is the validated, immutable board produced by Load or Parse. Session
// holds the player position for one game on a Maze, and GameEngine wraps a
// Session with move history behind the Engine interface.
//
// ShortestPath and FindPath run a breadth-first search over non-wall cells;
// they back reachability reports and the automatic solver but are never
// required for a maze to load.
//
// Usage:
//
//	maze, err := engine.Load("mazes/classic.txt")
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	gameEngine, err := engine.NewEngine(maze)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	outcome := gameEngine.Move(engine.Right)
//	if gameEngine.IsVictory() {
//		fmt.Println("escaped")
//	}
//
// Maze Format:
//
// One row per line using '#' for walls, '.' for floor, 'S' for the start and
// 'E' for the exit. Rows must all have the same length, both dimensions must
// lie in [5, 100], and S and E must each appear exactly once. A failed load
// returns a *LoadError whose Kind names the rule that was broken.
//
// Game Rules:
//
// The player starts on S and moves one cell at a time. Moves into walls are
// Blocked and moves off the grid are OutOfBounds; neither changes the player
// position. Reaching E wins the game, after which every move reports GameOver.
package engine
