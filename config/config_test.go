package config_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/wdiam/config"
	"github.com/katalvlaran/wdiam/diameter"
)

// isolate runs the test in an empty directory with no WDIAM_* variables.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	for _, kv := range os.Environ() {
		key, _, _ := strings.Cut(kv, "=")
		if strings.HasPrefix(key, config.EnvPrefix) {
			unsetenv(t, key)
		}
	}

	return dir
}

// unsetenv clears key for the test; the original state is restored on cleanup.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
	assert.Equal(t, diameter.PolicyExclude, cfg.Policy())
}

func TestLoad_Precedence(t *testing.T) {
	dir := isolate(t)

	path := filepath.Join(dir, "wdiam.yaml")
	writeFile(t, path, `
solver:
  workers: 4
diameter:
  policy: strict
server:
  request_timeout: 5s
  cache_size: 16
`)
	writeFile(t, filepath.Join(dir, config.DotEnvFile), "WDIAM_SOLVER_WORKERS=6\nWDIAM_LOG_LEVEL=debug\n")
	unsetenv(t, "WDIAM_LOG_LEVEL") // set by .env below; cleanup unsets it again
	t.Setenv("WDIAM_SOLVER_WORKERS", "8")

	cfg, err := config.Load(path, func(c *config.Config) { c.Server.CacheSize = 0 })
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.Solver.Workers, "process env beats .env and YAML")
	assert.Equal(t, "debug", cfg.Log.Level, ".env fills what the process env lacks")
	assert.Equal(t, diameter.PolicyStrict, cfg.Policy())
	assert.Equal(t, 5*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, 0, cfg.Server.CacheSize, "overrides run last")
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	dir := isolate(t)

	_, err := config.Load(filepath.Join(dir, "absent.yaml"))
	assert.ErrorIs(t, err, config.ErrReadFile)

	bad := filepath.Join(dir, "bad.yaml")
	writeFile(t, bad, "solver: [1, 2\n")
	_, err = config.Load(bad)
	assert.Error(t, err)

	t.Setenv("WDIAM_SOLVER_WORKERS", "many")
	t.Setenv("WDIAM_LOG_JSON", "maybe")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrEnvValue)
	assert.Contains(t, err.Error(), "WDIAM_SOLVER_WORKERS")
	assert.Contains(t, err.Error(), "WDIAM_LOG_JSON")
}

func TestLoad_MaxVertices(t *testing.T) {
	isolate(t)

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 2048, cfg.Loader.MaxVertices)

	t.Setenv("WDIAM_LOADER_MAX_VERTICES", "512")
	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, 512, cfg.Loader.MaxVertices)

	t.Setenv("WDIAM_LOADER_MAX_VERTICES", "200000")
	_, err = config.Load("")
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "Config.Loader.MaxVertices")
}

func TestValidate_ReportsEveryViolation(t *testing.T) {
	cfg := config.Default()
	cfg.Solver.Workers = 0
	cfg.Diameter.Policy = "loose"
	cfg.Server.Addr = ""

	err := cfg.Validate()
	require.ErrorIs(t, err, config.ErrInvalid)
	assert.Contains(t, err.Error(), "Config.Solver.Workers")
	assert.Contains(t, err.Error(), "Config.Diameter.Policy")
	assert.Contains(t, err.Error(), "Config.Server.Addr")

	assert.NoError(t, config.Default().Validate())
}

func TestLogger_RespectsLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "warn"

	var buf bytes.Buffer
	log := cfg.Logger(&buf)
	log.Info("hidden")
	log.Warn("shown", "k", 1)

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "wdiam: shown")
}
