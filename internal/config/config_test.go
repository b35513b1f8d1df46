package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

// unsetAfter removes variables exported by LoadDotEnv once the test ends.
func unsetAfter(t *testing.T, names ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, name := range names {
			_ = os.Unsetenv(name)
		}
	})
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "oracle-sdk", cfg.App.Name)
	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.Equal(t, "http://localhost:8545", cfg.RPC.URL)
	assert.Equal(t, 10*time.Second, cfg.RPC.GetTimeout())
	assert.Equal(t, 15*time.Second, cfg.API.GetTimeout())
	assert.Equal(t, 8, cfg.Proxy.MaxWorkers)
	assert.Equal(t, 10*time.Minute, cfg.Proxy.GetCacheTTL())
	assert.Equal(t, 30*time.Minute, cfg.Cache.GetDefaultExpiration())
	assert.Equal(t, time.Hour, cfg.Cache.GetCleanupInterval())
	assert.Empty(t, cfg.Contracts.Addresses())
}

func TestLoad_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", `
rpc:
  url: https://file.example
  timeout: 3s
contracts:
  oracle: "0x00000000000000000000000000000000000000aa"
`)
	t.Setenv("ORACLE_SDK_RPC_URL", "https://env.example")
	t.Setenv("ORACLE_SDK_CONTRACTS_BOND_TOKEN", "0x00000000000000000000000000000000000000bb")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://env.example", cfg.RPC.URL)
	assert.Equal(t, 3*time.Second, cfg.RPC.Timeout)
	assert.Equal(t, map[string]string{
		"oracle":     "0x00000000000000000000000000000000000000aa",
		"bond_token": "0x00000000000000000000000000000000000000bb",
	}, cfg.Contracts.Addresses())
}

func TestLoad_DotEnv(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, ".env", "ORACLE_SDK_API_BASE_URL=https://dotenv.example/api\nORACLE_SDK_LOGGER_LEVEL=debug\n")
	unsetAfter(t, "ORACLE_SDK_API_BASE_URL")
	t.Setenv("ORACLE_SDK_LOGGER_LEVEL", "warn")

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://dotenv.example/api", cfg.API.BaseURL)
	assert.Equal(t, "warn", cfg.Logger.Level, "existing variables win over .env")
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "config.yaml", "rpc: [unterminated")

	_, err := Load(dir)
	require.Error(t, err)
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	assert.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}
