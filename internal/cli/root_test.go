package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCliConfig(t *testing.T) string {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
storage:
  backend: file
  dir: ` + filepath.Join(dir, "data") + `
logger:
  level: info
  dir: ` + filepath.Join(dir, "logs") + `
metrics:
  enabled: true
`
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "data"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "logs"), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCommand(t *testing.T, configPath string, args ...string) string {
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	require.NoError(t, cmd.Execute(), "command %v\noutput: %s", args, out.String())
	return out.String()
}

func TestRootCommand_StatusOnFreshStore(t *testing.T) {
	configPath := writeCliConfig(t)

	out := runCommand(t, configPath, "--format", "json", "status")
	assert.Contains(t, out, `"unreadNotifications"`)

	var resp statusResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "file", resp.Backend)
	assert.Equal(t, 0, resp.Clients)
	// a fresh store gets the welcome notification
	assert.Equal(t, 1, resp.Notifications)
	assert.Equal(t, 1, resp.UnreadNotifications)
}

func TestRootCommand_ClientAddPersistsAcrossRuns(t *testing.T) {
	configPath := writeCliConfig(t)

	out := runCommand(t, configPath, "client", "add", "--name", "Acme Corp", "--rate", "150")
	assert.Contains(t, out, "Added client Acme Corp")

	// A second process sees the stored client.
	out = runCommand(t, configPath, "client", "list")
	assert.Contains(t, out, "Acme Corp")
}

func TestRootCommand_RejectsInvalidFormat(t *testing.T) {
	configPath := writeCliConfig(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "--format", "yaml", "status"})
	assert.Error(t, cmd.Execute())
}

func TestRootCommand_ClientAddRequiresName(t *testing.T) {
	configPath := writeCliConfig(t)

	cmd := NewRootCommand()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--config", configPath, "client", "add"})
	assert.Error(t, cmd.Execute())
}

func TestShellCommand_ReleasesAppExactlyOnce(t *testing.T) {
	configPath := writeCliConfig(t)

	opts := &RootOptions{}
	cmd := newRootCommand(opts)
	out := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader("status\nexit\n"))
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs([]string{"--config", configPath, "shell"})
	require.NoError(t, cmd.Execute(), out.String())

	// The shell closed the app on the way out; PersistentPostRunE must see
	// nothing left to close.
	assert.Nil(t, opts.app)
	assert.False(t, opts.inShell)
	assert.Contains(t, out.String(), "Status:")
}

func TestRootCommand_ExportWritesBackupFile(t *testing.T) {
	configPath := writeCliConfig(t)
	outPath := filepath.Join(t.TempDir(), "backup.json")

	runCommand(t, configPath, "export", "--out", outPath)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"version": "1.0"`)
	assert.Contains(t, string(data), `"clients": []`)
}
