package providers

import (
	"os"
	"path/filepath"
	"solobill/internal/structures"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loggerConfig(dir, level string) *structures.Config {
	return &structures.Config{
		Logger: structures.LoggerConfig{
			Level: level,
			Mode:  0644,
			Dir:   dir,
		},
	}
}

func TestNewLogProvider_CreatesLogFiles(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir, "info"))
	require.NoError(t, err)
	defer logger.Close()

	// Should be able to log without error
	logger.Infof(TypeApp, "test message")
	logger.Warnf(TypeStore, "store message")
	logger.Errorf(TypeBackup, "backup message")

	for _, name := range []string{"app.log", "store.log", "backup.log", "cli.log"} {
		_, err := os.Stat(filepath.Join(dir, name))
		assert.NoError(t, err, name)
	}
}

func TestNewLogProvider_WritesToChannelFile(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir, "info"))
	require.NoError(t, err)
	logger.Infof(TypeStore, "persisted %d records", 5)
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "store.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "persisted 5 records")

	appLog, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(appLog), "persisted 5 records")
}

func TestNewLogProvider_LevelFiltering(t *testing.T) {
	dir := t.TempDir()

	logger, err := NewLogProvider(loggerConfig(dir, "warn"))
	require.NoError(t, err)
	logger.Infof(TypeApp, "filtered out")
	logger.Warnf(TypeApp, "kept")
	logger.Close()

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.NotContains(t, string(data), "filtered out")
	assert.Contains(t, string(data), "kept")
}

func TestNewLogProvider_InvalidDir(t *testing.T) {
	_, err := NewLogProvider(loggerConfig("/nonexistent/directory/path", "info"))
	assert.Error(t, err)
}

func TestNewLogProvider_InvalidLevel(t *testing.T) {
	_, err := NewLogProvider(loggerConfig(t.TempDir(), "loud"))
	assert.Error(t, err)
}
