package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test in an empty directory with no KUPU_ variables set.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	for _, name := range []string{
		"KUPU_ENV", "KUPU_LOG_LEVEL", "KUPU_LOG_FILE", "KUPU_DB_PATH",
		"KUPU_DB", "KUPU_NAMESPACE", "KUPU_SNAPSHOTS_KEEP", "KUPU_SPLASH",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return dir
}

func TestLoadDefaults(t *testing.T) {
	isolate(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "kupu", cfg.Namespace)
	assert.Equal(t, 10, cfg.SnapshotsKeep)
	assert.Empty(t, cfg.DBPath)
	assert.True(t, cfg.Splash)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	isolate(t)
	t.Setenv("KUPU_ENV", "production")
	t.Setenv("KUPU_LOG_LEVEL", "DEBUG")
	t.Setenv("KUPU_NAMESPACE", "tokotoko")
	t.Setenv("KUPU_SNAPSHOTS_KEEP", "3")
	t.Setenv("KUPU_DB", "/tmp/kupu-test.db")
	t.Setenv("KUPU_SPLASH", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "tokotoko", cfg.Namespace)
	assert.Equal(t, 3, cfg.SnapshotsKeep)
	assert.Equal(t, "/tmp/kupu-test.db", cfg.DBPath)
	assert.False(t, cfg.Splash)
}

func TestLoadFromConfigDir(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	yaml := "log_level: warn\nsnapshots_keep: 25\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte(yaml), 0o644))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, 25, cfg.SnapshotsKeep)
}

func TestLoadExplicitFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("namespace: tokotoko\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "tokotoko", cfg.Namespace)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadDotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("KUPU_LOG_LEVEL=error\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("KUPU_LOG_LEVEL") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := map[string]string{
		"KUPU_ENV":            "staging",
		"KUPU_LOG_LEVEL":      "loud",
		"KUPU_NAMESPACE":      "other",
		"KUPU_SNAPSHOTS_KEEP": "0",
	}
	for name, value := range tests {
		t.Run(name, func(t *testing.T) {
			isolate(t)
			t.Setenv(name, value)

			_, err := Load("")
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
