package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const openMaze = "S....\n.....\n.....\n.....\n....E\n"

func runApp(t *testing.T, input string, args ...string) (int, string, string) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	a := &app{
		stdin:  strings.NewReader(input),
		stdout: &stdout,
		stderr: &stderr,
	}
	code := a.run(context.Background(), append([]string{"mazegame"}, args...))
	return code, stdout.String(), stderr.String()
}

func writeMaze(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write maze: %v", err)
	}
	return path
}

func TestConstants(t *testing.T) {
	if Version == "" {
		t.Error("Version should not be empty")
	}
	if AppName != "Maze Game" {
		t.Errorf("Expected app name Maze Game, got %s", AppName)
	}
}

func TestRun_UsageErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"too many arguments", []string{"a.txt", "b.txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, stdout, stderr := runApp(t, "", tt.args...)
			if code != exitUsage {
				t.Errorf("Expected exit code %d, got %d", exitUsage, code)
			}
			if !strings.Contains(stderr, "Usage") {
				t.Errorf("Expected usage on stderr, got %q", stderr)
			}
			if stdout != "" {
				t.Errorf("Expected no game output, got %q", stdout)
			}
		})
	}
}

func TestRun_LoadFailures(t *testing.T) {
	dir := t.TempDir()
	duplicate := writeMaze(t, dir, "dup.txt", "S...S\n.....\n.....\n.....\n....E\n")

	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"missing file", filepath.Join(dir, "missing.txt"), "file unreadable"},
		{"duplicate start", duplicate, "duplicate marker"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, stderr := runApp(t, "q", "--maze-dir", dir, tt.path)
			if code != exitLoadFailure {
				t.Errorf("Expected exit code %d, got %d", exitLoadFailure, code)
			}
			if !strings.Contains(stderr, tt.expected) {
				t.Errorf("Expected %q in stderr, got %q", tt.expected, stderr)
			}
		})
	}
}

func TestRun_PlayToVictory(t *testing.T) {
	path := writeMaze(t, t.TempDir(), "open.txt", openMaze)

	code, stdout, _ := runApp(t, "dddd ssss", path)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, "Congratulations") {
		t.Errorf("Expected victory message, got %q", stdout)
	}
}

func TestRun_Quit(t *testing.T) {
	path := writeMaze(t, t.TempDir(), "open.txt", openMaze)

	code, stdout, stderr := runApp(t, "m q", path)
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, "X....") {
		t.Errorf("Expected rendered map, got %q", stdout)
	}
	if !strings.Contains(stdout, "Goodbye!") {
		t.Errorf("Expected goodbye, got %q", stdout)
	}
	if stderr != "" {
		t.Errorf("Expected quiet stderr without --debug, got %q", stderr)
	}
}

func TestRun_PlayLibraryMaze(t *testing.T) {
	dir := t.TempDir()
	writeMaze(t, dir, "classic.txt", openMaze)

	code, stdout, _ := runApp(t, "q", "--maze-dir", dir, "play")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, "Maze 5x5") {
		t.Errorf("Expected maze header, got %q", stdout)
	}

	code, _, _ = runApp(t, "q", "--maze-dir", dir, "classic")
	if code != 0 {
		t.Errorf("Expected library name to resolve, got exit code %d", code)
	}
}

func TestRun_List(t *testing.T) {
	dir := t.TempDir()
	writeMaze(t, dir, "open.txt", openMaze)
	writeMaze(t, dir, "broken.txt", "S\n")

	code, stdout, _ := runApp(t, "", "--maze-dir", dir, "list")
	if code != 0 {
		t.Fatalf("Expected exit code 0, got %d", code)
	}
	if !strings.Contains(stdout, "open") || !strings.Contains(stdout, "shortest route 8") {
		t.Errorf("Expected open maze listed, got %q", stdout)
	}
	if strings.Contains(stdout, "broken") {
		t.Errorf("Invalid maze should be skipped, got %q", stdout)
	}
}

func TestRun_ListMissingDir(t *testing.T) {
	code, _, stderr := runApp(t, "", "--maze-dir", filepath.Join(t.TempDir(), "nope"), "list")
	if code == 0 {
		t.Error("Expected nonzero exit code for missing maze directory")
	}
	if !strings.Contains(stderr, "does not exist") {
		t.Errorf("Expected cause on stderr, got %q", stderr)
	}
}
