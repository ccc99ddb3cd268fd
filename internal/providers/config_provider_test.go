package providers

import (
	"os"
	"path/filepath"
	"solobill/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewConfigProvider_ReadsExplicitFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfigFile(t, `
storage:
  backend: sqlite
  dir: `+filepath.Join(dir, "data")+`
  compress: true
logger:
  level: debug
  dir: `+filepath.Join(dir, "logs")+`
cache:
  enabled: false
`)

	conf, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path, DebugMode: true})
	require.NoError(t, err)

	assert.Equal(t, "sqlite", conf.Storage.Backend)
	assert.True(t, conf.Storage.Compress)
	assert.Equal(t, "debug", conf.Logger.Level)
	assert.False(t, conf.Cache.Enabled)
	assert.True(t, conf.Debug)
	assert.Equal(t, "solobill", conf.AppName)
	assert.Equal(t, path, conf.Path)
}

func TestNewConfigProvider_ExplicitFileMustExist(t *testing.T) {
	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: "/nonexistent/config.yaml"})
	assert.Error(t, err)
}

func TestNewConfigProvider_DefaultsWithoutFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)

	assert.Equal(t, "file", conf.Storage.Backend)
	assert.Equal(t, "info", conf.Logger.Level)
	assert.True(t, conf.Cache.Enabled)
	assert.Equal(t, 8, conf.Cache.Size)
	assert.True(t, conf.Metrics.Enabled)
	assert.DirExists(t, conf.Storage.Dir)
	assert.DirExists(t, conf.Logger.Dir)
}

func TestNewConfigProvider_EnvOverrides(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("SOLOBILL_LOG_LEVEL", "warn")
	t.Setenv("SOLOBILL_STORAGE_BACKEND", "sqlite")

	conf, err := NewConfigProvider(&structures.CliFlags{})
	require.NoError(t, err)
	assert.Equal(t, "warn", conf.Logger.Level)
	assert.Equal(t, "sqlite", conf.Storage.Backend)
}

func TestNewConfigProvider_RejectsInvalidConfig(t *testing.T) {
	path := writeConfigFile(t, `
storage:
  backend: redis
`)

	_, err := NewConfigProvider(&structures.CliFlags{ConfigPath: path})
	assert.Error(t, err)
}
