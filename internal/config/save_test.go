package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hbjs97/prj/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_WritesValidTOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	cfg := &config.Config{
		Version: 1,
		Root:    "/tmp/projects",
		Python:  "python3.12",
		VenvDir: "venv",
	}

	err := config.Save(path, cfg)
	require.NoError(t, err)

	// 파일 권한 0600 확인
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	// Load로 round-trip 검증
	loaded, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, loaded.Version)
	assert.Equal(t, "/tmp/projects", loaded.Root)
	assert.Equal(t, "python3.12", loaded.Python)
	assert.Equal(t, "venv", loaded.VenvDir)
}

func TestSave_CreatesParentDir(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "nested", "prj", "config.toml")

	err := config.Save(path, &config.Config{Version: 1})
	require.NoError(t, err)

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
