package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "routeplanner.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	cfg, err := Load(zap.NewNop(), "")
	require.NoError(t, err)
	assert.Equal(t, SourceCSV, cfg.Data.Source)
	assert.Equal(t, "attractions.csv", cfg.Data.AttractionsFile)
	assert.Equal(t, "roads.csv", cfg.Data.RoadsFile)
	assert.Equal(t, []string{".", "data"}, cfg.Data.SearchDirs)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 1024, cfg.Planner.CacheSize)
	assert.Equal(t, 0, cfg.Planner.Workers)
	assert.True(t, cfg.Metrics.Enabled)
}

func TestLoad_File(t *testing.T) {
	path := writeConfig(t, `
data:
  source: YAML
  network_file: world.yaml
  search_dirs: [/srv/data]
log:
  level: debug
http:
  addr: 127.0.0.1:9000
  allowed_origins: [https://trips.example.com]
planner:
  cache_size: 0
  workers: 4
metrics:
  enabled: false
`)

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, SourceYAML, cfg.Data.Source)
	assert.Equal(t, "world.yaml", cfg.Data.NetworkFile)
	assert.Equal(t, []string{"/srv/data"}, cfg.Data.SearchDirs)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTP.Addr)
	assert.Equal(t, []string{"https://trips.example.com"}, cfg.HTTP.AllowedOrigins)
	assert.Equal(t, 0, cfg.Planner.CacheSize)
	assert.Equal(t, 4, cfg.Planner.Workers)
	assert.False(t, cfg.Metrics.Enabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	path := writeConfig(t, "http:\n  addr: :1111\n")
	t.Setenv("ROUTEPLANNER_HTTP_ADDR", ":2222")
	t.Setenv("ROUTEPLANNER_PLANNER_WORKERS", "3")

	cfg, err := Load(nil, path)
	require.NoError(t, err)
	assert.Equal(t, ":2222", cfg.HTTP.Addr)
	assert.Equal(t, 3, cfg.Planner.Workers)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(nil, filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown source", "data:\n  source: ftp\n"},
		{"bad level", "log:\n  level: loud\n"},
		{"negative cache", "planner:\n  cache_size: -1\n"},
		{"postgres without url", "data:\n  source: postgres\n"},
		{"yaml without file", "data:\n  source: yaml\n  network_file: \"\"\n"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Load(nil, writeConfig(t, tc.body))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel("warning"))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel(" error "))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("whatever"))
}

func TestInitLogger(t *testing.T) {
	logger, err := InitLogger("warn")
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.WarnLevel))
	Cleanup()
}
