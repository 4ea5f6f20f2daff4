package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"studytrack/internal/platform/config"
)

func TestLoadDefaultsWithoutFile(t *testing.T) {
	dir := t.TempDir()
	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, config.BackendFile, cfg.Storage.Backend)
	assert.Equal(t, config.DefaultStorageKey, cfg.Storage.Key)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, filepath.Join(dir, ".studytrack", "state.json"), cfg.StatePath)
	assert.Equal(t, filepath.Join(dir, ".studytrack", "studytrack.db"), cfg.DBPath)
}

func TestLoadReadsYAMLAndEnvOverrides(t *testing.T) {
	dir := t.TempDir()
	body := "storage:\n  backend: sqlite\nlog:\n  level: debug\n  format: json\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "studytrack.yaml"), []byte(body), 0o644))
	t.Setenv("STUDYTRACK_LOG_LEVEL", "warn")

	cfg, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, config.BackendSQLite, cfg.Storage.Backend)
	assert.Equal(t, "warn", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("STUDYTRACK_STORAGE_BACKEND", "redis")
	_, err := config.Load(dir, "")
	require.Error(t, err)
}

func TestNewRequiresDataDir(t *testing.T) {
	_, err := config.New("")
	require.Error(t, err)
}

func TestLoadStartsFromNewDefaults(t *testing.T) {
	dir := t.TempDir()
	want, err := config.New(dir)
	require.NoError(t, err)
	got, err := config.Load(dir, "")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	_, err = config.Load("", "")
	require.Error(t, err)
}
