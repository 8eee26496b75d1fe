package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tekkamanmaverick/BoxRemap/catalog"
	"github.com/tekkamanmaverick/BoxRemap/internal/config"
	"github.com/tekkamanmaverick/BoxRemap/remap"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "boxremap.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, catalog.DefaultMaxBound, cfg.MaxBound)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, remap.DefaultWeights(), cfg.Weights())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "console", cfg.Logging.Format)
}

func TestLoad_MissingFileGivesDefaults(t *testing.T) {
	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)

	cfg, err = config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestLoad_OverridesOnlyGivenKeys(t *testing.T) {
	path := writeFile(t, "max_bound: 8\nscore:\n  descending: -3\nlogging:\n  format: json\n")
	cfg, err := config.Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8, cfg.MaxBound)
	assert.Equal(t, 0, cfg.Workers)
	assert.Equal(t, remap.Weights{Magnitude: 1, Negative: 1, Descending: -3}, cfg.Weights())
	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	opts := cfg.BuildOptions()
	assert.Equal(t, 8, opts.MaxBound)
	assert.Equal(t, cfg.Weights(), opts.Weights)
}

func TestLoad_BadYAML(t *testing.T) {
	_, err := config.Load(writeFile(t, "max_bound: [1, 2\n"))
	assert.Error(t, err)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv(config.EnvWorkers, "3")
	t.Setenv(config.EnvMaxBound, "5")
	t.Setenv(config.EnvLogLevel, "debug")

	cfg, err := config.Load(writeFile(t, "workers: 9\nmax_bound: 12\n"))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, 5, cfg.MaxBound)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoad_BadEnv(t *testing.T) {
	t.Setenv(config.EnvWorkers, "many")
	_, err := config.Load("")
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*config.Config)
	}{
		{"MaxBoundZero", func(c *config.Config) { c.MaxBound = 0 }},
		{"NegativeWorkers", func(c *config.Config) { c.Workers = -1 }},
		{"UnknownLevel", func(c *config.Config) { c.Logging.Level = "loud" }},
		{"UnknownFormat", func(c *config.Config) { c.Logging.Format = "xml" }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := config.Default()
			tc.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), config.ErrInvalidConfig)
		})
	}
}
