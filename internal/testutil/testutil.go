// Package testutil provides common test helpers for the prj project.
package testutil

import (
	"os"
	"path/filepath"
	"testing"
)

// TempConfigFile creates a temporary config.toml with the given content
// and returns its path. The file is automatically cleaned up.
func TempConfigFile(t *testing.T, content string) string {
	t.Helper()

	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("TempConfigFile: write failed: %v", err)
	}

	return path
}

// WriteProject creates a project directory under root and returns its path.
func WriteProject(t *testing.T, root, name string) string {
	t.Helper()

	path := filepath.Join(root, name)
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatalf("WriteProject: mkdir failed: %v", err)
	}

	return path
}

// WriteVenv creates a fake virtual environment with an activation script
// under dir and returns the activation script path.
func WriteVenv(t *testing.T, dir, venvDir string) string {
	t.Helper()

	script := filepath.Join(dir, venvDir, "bin", "activate")
	if err := os.MkdirAll(filepath.Dir(script), 0755); err != nil {
		t.Fatalf("WriteVenv: mkdir failed: %v", err)
	}
	if err := os.WriteFile(script, []byte("# fake activation script\n"), 0644); err != nil {
		t.Fatalf("WriteVenv: write failed: %v", err)
	}

	return script
}
