package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("GEMINI_MODEL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, DefaultPort, cfg.Server.Port)
	assert.Equal(t, DefaultProxyPath, cfg.Proxy.Path)
	assert.Equal(t, DefaultGeminiModel, cfg.Gemini.Model)
	assert.Equal(t, DefaultEndpoint, cfg.Client.Endpoint)
	assert.False(t, cfg.R2.Configured())
}

func TestAPIKey_ReadAtCallTime(t *testing.T) {
	_, err := Load()
	require.NoError(t, err)

	t.Setenv("GEMINI_API_KEY", "")
	assert.Empty(t, APIKey())

	t.Setenv("GEMINI_API_KEY", "  key-1  ")
	assert.Equal(t, "key-1", APIKey())

	t.Setenv("GEMINI_API_KEY", "key-2")
	assert.Equal(t, "key-2", APIKey())
}

func TestReadSecret_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gemini_key")
	require.NoError(t, os.WriteFile(path, []byte("from-file\n"), 0o600))

	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("GEMINI_API_KEY_FILE", path)

	readSecret("GEMINI_API_KEY")
	assert.Equal(t, "from-file", os.Getenv("GEMINI_API_KEY"))
}

func TestReadSecret_DirectValueWins(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "direct")
	t.Setenv("GEMINI_API_KEY_FILE", filepath.Join(t.TempDir(), "missing"))

	readSecret("GEMINI_API_KEY")
	assert.Equal(t, "direct", os.Getenv("GEMINI_API_KEY"))
}
