package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "http://localhost:11434", cfg.OllamaHost)
	assert.Equal(t, "3-card", cfg.DefaultSpread)
	assert.Equal(t, int64(1<<20), cfg.MaxFileSize)
}

func TestLoadWithoutConfigFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "gemini", cfg.Provider)
}

func TestLoadFromFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(`
provider = "openrouter"
default_spread = "celtic"
autosave_sessions = true
`), 0644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "openrouter", cfg.Provider)
	assert.Equal(t, "celtic", cfg.DefaultSpread)
	assert.True(t, cfg.AutosaveSessions)
}

func TestEnvOverridesFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte(`provider = "openrouter"`), 0644))

	t.Setenv("ORACLE_PROVIDER", "ollama")
	t.Setenv("TAROT_ORACLE_DEFAULT_SPREAD", "single")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "ollama", cfg.Provider)
	assert.Equal(t, "single", cfg.DefaultSpread)
}

func TestMalformedConfigFile(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	dir := filepath.Join(configHome, appDir)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"),
		[]byte(`provider = [broken`), 0644))

	_, err := Load()
	assert.Error(t, err)
}

func TestXDGPaths(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", "/data")
	t.Setenv("XDG_CONFIG_HOME", "/conf")
	t.Setenv("XDG_CACHE_HOME", "/cache")

	assert.Equal(t, filepath.Join("/conf", appDir, "config.toml"), GetConfigFilePath())
	assert.Equal(t, filepath.Join("/data", appDir, "decks"), GetDecksDir())
	assert.Equal(t, filepath.Join("/data", appDir, "spreads"), GetSpreadsDir())
	assert.Equal(t, filepath.Join("/data", appDir, "invocations"), GetInvocationsDir())
	assert.Equal(t, filepath.Join("/cache", appDir), GetCacheDir())
}
