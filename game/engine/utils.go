package engine

// ManhattanDistance calculates the Manhattan distance between two positions
func ManhattanDistance(from, to Position) int {
	dx := from.X - to.X
	if dx < 0 {
		dx = -dx
	}
	dy := from.Y - to.Y
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

// CountCells counts the cells of a given kind in the maze
func CountCells(maze *Maze, cell Cell) int {
	count := 0
	for _, c := range maze.cells {
		if c == cell {
			count++
		}
	}
	return count
}

// ShortestPath finds a shortest route from start to exit using 4-directional
// movement over non-wall cells. The path includes both endpoints. ok is
// false when the exit cannot be reached.
func ShortestPath(maze *Maze) (path []Position, ok bool) {
	return FindPath(maze, maze.Start(), maze.Exit())
}

// FindPath finds a shortest route between two in-bounds, non-wall cells
func FindPath(maze *Maze, from, to Position) (path []Position, ok bool) {
	if cell, in := maze.At(from); !in || cell == Wall {
		return nil, false
	}
	if cell, in := maze.At(to); !in || cell == Wall {
		return nil, false
	}
	start, exit := from, to

	prev := make([]int, len(maze.cells))
	for i := range prev {
		prev[i] = -1
	}
	index := func(p Position) int { return p.Y*maze.width + p.X }

	startIdx := index(start)
	prev[startIdx] = startIdx
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		if current == exit {
			break
		}

		for _, dir := range Directions {
			next := current.Add(dir)
			cell, in := maze.At(next)
			if !in || cell == Wall || prev[index(next)] != -1 {
				continue
			}
			prev[index(next)] = index(current)
			queue = append(queue, next)
		}
	}

	if prev[index(exit)] == -1 {
		return nil, false
	}

	for i := index(exit); ; i = prev[i] {
		path = append(path, Position{X: i % maze.width, Y: i / maze.width})
		if i == startIdx {
			break
		}
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path, true
}

// PathDirections converts a path of adjacent cells into the moves that walk it
func PathDirections(path []Position) []Direction {
	var dirs []Direction
	for i := 1; i < len(path); i++ {
		for _, dir := range Directions {
			if path[i-1].Add(dir) == path[i] {
				dirs = append(dirs, dir)
				break
			}
		}
	}
	return dirs
}
