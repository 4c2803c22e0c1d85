package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "english", cfg.Content.Language)
	assert.Equal(t, "Data/Libs/Foundry/Records/entities/scitem", cfg.Content.Items)
	assert.Equal(t, "output", cfg.Output.Dir)
	assert.True(t, cfg.Output.Clean)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, 3306, cfg.Database.Port)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "catalog", cfg.Storage.Bucket)
}

func TestLoadConfig_Env(t *testing.T) {
	t.Setenv("CONTENT_ROOT", "/data/sc")
	t.Setenv("CONTENT_LANGUAGE", "german")
	t.Setenv("OUTPUT_CLEAN", "false")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "/data/sc", cfg.Content.Root)
	assert.Equal(t, "german", cfg.Content.Language)
	assert.False(t, cfg.Output.Clean)
}

func TestLoadConfig_DotEnv(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("OUTPUT_DIR=/tmp/catalog\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("OUTPUT_DIR") })

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/catalog", cfg.Output.Dir)
}
