package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/wricardo/mcp-training/mazegame/game/engine"
	"github.com/wricardo/mcp-training/mazegame/game/service"
)

var (
	ErrMazeNotFound = service.ErrMazeNotFound
	ErrInvalidMaze  = errors.New("invalid maze")
)

// MazeExt is the file extension of maze files in the library
const MazeExt = ".txt"

// DefaultMazeName is the maze used when no name is given
const DefaultMazeName = "classic"

// Manager handles maze library loading and caching
type Manager struct {
	mazeDir     string
	defaultMaze *engine.Maze
	mazes       map[string]*engine.Maze
	mu          sync.RWMutex
}

// NewManager creates a new maze library rooted at mazeDir
func NewManager(mazeDir string) (*Manager, error) {
	// Ensure maze directory exists
	if _, err := os.Stat(mazeDir); os.IsNotExist(err) {
		return nil, fmt.Errorf("maze directory does not exist: %s", mazeDir)
	}

	m := &Manager{
		mazeDir: mazeDir,
		mazes:   make(map[string]*engine.Maze),
	}

	if err := m.loadDefaultMaze(); err != nil {
		return nil, fmt.Errorf("failed to load default maze: %w", err)
	}

	return m, nil
}

// Dir returns the library directory
func (m *Manager) Dir() string {
	return m.mazeDir
}

// LoadMaze loads a maze by name, with or without the .txt extension
func (m *Manager) LoadMaze(name string) (*engine.Maze, error) {
	name = strings.TrimSuffix(name, MazeExt)

	m.mu.RLock()
	// Check cache first
	if maze, exists := m.mazes[name]; exists {
		m.mu.RUnlock()
		return maze, nil
	}
	m.mu.RUnlock()

	m.mu.Lock()
	defer m.mu.Unlock()

	// Double-check after acquiring write lock
	if maze, exists := m.mazes[name]; exists {
		return maze, nil
	}

	// Names never escape the library directory
	if name == "" || name != filepath.Base(name) {
		return nil, ErrMazeNotFound
	}

	maze, err := engine.Load(filepath.Join(m.mazeDir, name+MazeExt))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrMazeNotFound
		}
		if engine.KindOf(err) == engine.FileUnreadable {
			return nil, fmt.Errorf("failed to read maze file: %w", err)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidMaze, err)
	}

	m.mazes[name] = maze
	return maze, nil
}

// ListMazes returns information about all valid mazes in the library,
// sorted by id. Invalid files are skipped.
func (m *Manager) ListMazes() ([]*service.MazeInfo, error) {
	entries, err := os.ReadDir(m.mazeDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read maze directory: %w", err)
	}

	var mazes []*service.MazeInfo

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), MazeExt) {
			continue
		}

		name := strings.TrimSuffix(entry.Name(), MazeExt)

		maze, err := m.LoadMaze(name)
		if err != nil {
			continue
		}

		mazes = append(mazes, describe(entry.Name(), name, maze))
	}

	sort.Slice(mazes, func(i, j int) bool { return mazes[i].MazeID < mazes[j].MazeID })
	return mazes, nil
}

// GetDefault returns the default maze
func (m *Manager) GetDefault() *engine.Maze {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.defaultMaze
}

// SetDefault sets the default maze by name
func (m *Manager) SetDefault(name string) error {
	maze, err := m.LoadMaze(name)
	if err != nil {
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.defaultMaze = maze
	return nil
}

// RefreshCache drops every cached maze and reloads the default
func (m *Manager) RefreshCache() error {
	m.mu.Lock()
	m.mazes = make(map[string]*engine.Maze)
	m.mu.Unlock()

	return m.loadDefaultMaze()
}

// loadDefaultMaze loads classic.txt, else the first valid maze, else a
// built-in minimal maze
func (m *Manager) loadDefaultMaze() error {
	maze, err := m.LoadMaze(DefaultMazeName)
	if err != nil {
		mazes, listErr := m.ListMazes()
		if listErr != nil || len(mazes) == 0 {
			return m.setDefault(createMinimalMaze())
		}

		maze, err = m.LoadMaze(mazes[0].MazeID)
		if err != nil {
			return m.setDefault(createMinimalMaze())
		}
	}

	return m.setDefault(maze, nil)
}

func (m *Manager) setDefault(maze *engine.Maze, err error) error {
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.defaultMaze = maze
	m.mu.Unlock()
	return nil
}

// createMinimalMaze creates a minimal valid maze
func createMinimalMaze() (*engine.Maze, error) {
	return engine.Parse([]byte(strings.Join([]string{
		"S.#..",
		"..#..",
		"..#..",
		".....",
		"..#.E",
	}, "\n")))
}

func describe(filename, id string, maze *engine.Maze) *service.MazeInfo {
	info := &service.MazeInfo{
		Filename: filename,
		MazeID:   id,
		Width:    maze.Width(),
		Height:   maze.Height(),
		Walls:    engine.CountCells(maze, engine.Wall),
	}
	if path, ok := engine.ShortestPath(maze); ok {
		info.Solvable = true
		info.ShortestPath = len(path) - 1
	}
	return info
}
