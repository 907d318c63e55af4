package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(body), 0o600))
	return p
}

func clearKeys(t *testing.T) {
	for _, k := range []string{"API_KEY", "GEMINI_API_KEY", "OPENAI_API_KEY", "DEEPSEEK_API_KEY",
		"PROMPTLIB_LLM_API_KEY", "PROMPTLIB_LLM_PROVIDER", "PROMPTLIB_SERVER_ADDR"} {
		t.Setenv(k, "")
	}
}

func TestLoadFileAndDefaults(t *testing.T) {
	clearKeys(t)
	dir := t.TempDir()
	p := writeFile(t, dir, "config.yaml", `
llm:
  provider: openai
  model: gpt-4o-mini
  api_key: sk-file
  timeout: 15s
logging:
  format: json
`)
	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, "sk-file", cfg.LLM.APIKey)
	assert.Equal(t, 15*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadEnvOverrides(t *testing.T) {
	clearKeys(t)
	dir := t.TempDir()
	p := writeFile(t, dir, "config.yaml", "llm:\n  provider: gemini\n  api_key: from-file\n")
	t.Setenv("PROMPTLIB_LLM_API_KEY", "from-env")
	t.Setenv("PROMPTLIB_SERVER_ADDR", ":9999")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.LLM.APIKey)
	assert.Equal(t, ":9999", cfg.Server.Addr)
	assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
}

func TestLoadFallsBackToBareAPIKey(t *testing.T) {
	clearKeys(t)
	dir := t.TempDir()
	p := writeFile(t, dir, "config.yaml", "llm:\n  provider: gemini\n")
	t.Setenv("API_KEY", "bare")

	cfg, err := Load(p)
	require.NoError(t, err)
	assert.Equal(t, "bare", cfg.LLM.APIKey)
}

func TestLoadValidation(t *testing.T) {
	clearKeys(t)
	dir := t.TempDir()

	_, err := Load(writeFile(t, dir, "a.yaml", "llm:\n  provider: gemini\n"))
	assert.ErrorContains(t, err, "api_key")

	_, err = Load(writeFile(t, dir, "b.yaml", "llm:\n  provider: deepseek\n  api_key: k\n"))
	assert.ErrorContains(t, err, "base_url")

	_, err = Load(writeFile(t, dir, "c.yaml", "llm:\n  provider: llama\n"))
	assert.ErrorContains(t, err, "not supported")

	cfg, err := Load(writeFile(t, dir, "d.yaml", "llm:\n  provider: mock\n"))
	require.NoError(t, err)
	assert.Equal(t, "mock", cfg.LLM.Provider)

	_, err = Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)
}
