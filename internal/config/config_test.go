package config_test

import (
	"path/filepath"
	"testing"

	"github.com/hbjs97/prj/internal/config"
	"github.com/hbjs97/prj/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_ValidTOML(t *testing.T) {
	content := `version = 1
root = "/tmp/my-projects"
python = "python3.12"
venv_dir = ".venv"
`
	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.Equal(t, "/tmp/my-projects", cfg.Root)
	assert.Equal(t, "python3.12", cfg.Python)
	assert.Equal(t, ".venv", cfg.VenvDir)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "no-such-config.toml"))

	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Version)
	assert.NotEmpty(t, cfg.Root)
	assert.True(t, filepath.IsAbs(cfg.Root))
	assert.Equal(t, "python3", cfg.Python)
	assert.Equal(t, "venv", cfg.VenvDir)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := testutil.TempConfigFile(t, "invalid toml [[[")
	_, err := config.Load(path)
	assert.ErrorIs(t, err, config.ErrConfig)
}

func TestLoad_EnvRootOverride(t *testing.T) {
	t.Setenv(config.EnvRoot, "/tmp/env-root")

	content := `root = "/tmp/file-root"`
	path := testutil.TempConfigFile(t, content)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/env-root", cfg.Root)
}

func TestLoad_TildeExpansion(t *testing.T) {
	path := testutil.TempConfigFile(t, `root = "~/my-projects"`)
	cfg, err := config.Load(path)

	require.NoError(t, err)
	assert.True(t, filepath.IsAbs(cfg.Root))
	assert.Equal(t, "my-projects", filepath.Base(cfg.Root))
}

func TestLoad_VenvDirMustBeSingleName(t *testing.T) {
	tests := []string{"a/b", ".", ".."}
	for _, venvDir := range tests {
		path := testutil.TempConfigFile(t, `venv_dir = "`+venvDir+`"`)
		_, err := config.Load(path)
		assert.ErrorIs(t, err, config.ErrConfig, "venv_dir=%q", venvDir)
	}
}
