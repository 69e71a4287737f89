package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644))
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoad_Defaults(t *testing.T) {
	writeConfig(t, "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:50051", cfg.GRPCAddr())
	assert.Equal(t, "0.0.0.0:8080", cfg.HTTPAddr())
	assert.Equal(t, "development", cfg.Server.Env)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoad_Providers(t *testing.T) {
	writeConfig(t, `
server:
  grpc_port: 9000
providers:
  openai:
    type: openai
    api_key: sk-test
    enabled: true
    models: ["*"]
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.GRPCPort)
	p := cfg.Providers["openai"]
	assert.Equal(t, "openai", p.Type)
	assert.Equal(t, "sk-test", p.APIKey)
	assert.True(t, p.Enabled)
	assert.Equal(t, []string{"*"}, p.Models)
}

func TestLoad_APIKeyIndirection(t *testing.T) {
	t.Setenv("MY_SECRET_KEY", "from-env")
	writeConfig(t, `
providers:
  openai:
    type: openai
    api_key: "ENV:MY_SECRET_KEY"
    enabled: true
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.Providers["openai"].APIKey)
}

func TestLoad_APIKeyOverride(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "override")
	writeConfig(t, `
providers:
  openai:
    type: openai
    api_key: sk-from-file
    enabled: true
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "override", cfg.Providers["openai"].APIKey)
}

func TestLoad_ValidatesEnabledProviders(t *testing.T) {
	writeConfig(t, `
providers:
  broken:
    type: openai
    enabled: true
`)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "broken")
}

func TestLoad_SkipsDisabledProviderValidation(t *testing.T) {
	writeConfig(t, `
providers:
  parked:
    type: openai
    enabled: false
`)

	_, err := Load()
	assert.NoError(t, err)
}

func TestLoad_MockNeedsNoKey(t *testing.T) {
	writeConfig(t, `
providers:
  mock:
    type: mock
    enabled: true
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.Providers["mock"].Enabled)
}
