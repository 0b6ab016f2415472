package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSettingsFile(t *testing.T, home, dbPath string) {
	t.Helper()
	configPath := filepath.Join(home, ".file-wrangler", "config.yaml")
	require.NoError(t, os.MkdirAll(filepath.Dir(configPath), 0o755))
	content := "history:\n  db_path: " + dbPath + "\n"
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o644))
}

func TestHistoryOpensAtConfiguredSettingsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FW_HISTORY_DB", "")
	t.Setenv("FW_POSTGRES_DSN", "")

	custom := filepath.Join(home, "custom", "wrangler-history.db")
	writeSettingsFile(t, home, custom)

	dao, err := provideOperationDAO()
	require.NoError(t, err)
	defer dao.Close()

	assert.FileExists(t, custom)
	assert.NoFileExists(t, filepath.Join(home, ".file-wrangler", "history.db"))
}

func TestHistoryEnvOverridesSettingsPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("FW_POSTGRES_DSN", "")
	t.Setenv("HOME", home)

	fromSettings := filepath.Join(home, "settings", "history.db")
	writeSettingsFile(t, home, fromSettings)

	fromEnv := filepath.Join(home, "env", "history.db")
	t.Setenv("FW_HISTORY_DB", fromEnv)

	dao, err := provideOperationDAO()
	require.NoError(t, err)
	defer dao.Close()

	assert.FileExists(t, fromEnv)
	assert.NoFileExists(t, fromSettings)
}

func TestHistoryDefaultsWithoutSettingsOrEnv(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("FW_HISTORY_DB", "")
	t.Setenv("FW_POSTGRES_DSN", "")

	dao, err := provideOperationDAO()
	require.NoError(t, err)
	defer dao.Close()

	assert.FileExists(t, filepath.Join(home, ".file-wrangler", "history.db"))
}