package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/staffdesk/pkg/config"
)

// Tests mutate process env and the shared cache, so none run in parallel.

type appConfig struct {
	Name    string `env:"CFGTEST_NAME" envDefault:"staffdesk"`
	MinAge  int    `env:"CFGTEST_MIN_AGE" envDefault:"18"`
	Enabled *bool  `env:"CFGTEST_ENABLED"`
}

type requiredConfig struct {
	Secret string `env:"CFGTEST_SECRET,required"`
}

func TestLoad_DefaultsAndEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("CFGTEST_MIN_AGE", "21")

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	assert.Equal(t, "staffdesk", cfg.Name)
	assert.Equal(t, 21, cfg.MinAge)
	assert.Nil(t, cfg.Enabled)
}

func TestLoad_Cached(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)
	t.Setenv("CFGTEST_NAME", "first")

	var first appConfig
	require.NoError(t, config.Load(&first))

	t.Setenv("CFGTEST_NAME", "second")
	var second appConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Name)

	require.NoError(t, config.Reload(&second))
	assert.Equal(t, "second", second.Name)
}

func TestLoad_Errors(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	assert.ErrorIs(t, config.Load[appConfig](nil), config.ErrNilPointer)

	var s string
	assert.ErrorIs(t, config.Load(&s), config.ErrInvalidConfigType)

	var req requiredConfig
	assert.ErrorIs(t, config.Load(&req), config.ErrParsingConfig)
	assert.Panics(t, func() { config.MustLoad(&req) })

	t.Setenv("CFGTEST_SECRET", "s3cret")
	require.NoError(t, config.Load(&req))
	assert.Equal(t, "s3cret", req.Secret)
}

func TestLoadEnv(t *testing.T) {
	config.ResetCache()
	t.Cleanup(config.ResetCache)

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("CFGTEST_ENABLED=true\n"), 0o600))
	t.Setenv("CFGTEST_ENABLED", "")
	require.NoError(t, os.Unsetenv("CFGTEST_ENABLED"))

	require.NoError(t, config.LoadEnv(path))
	t.Cleanup(func() { _ = os.Unsetenv("CFGTEST_ENABLED") })

	var cfg appConfig
	require.NoError(t, config.Load(&cfg))
	require.NotNil(t, cfg.Enabled)
	assert.True(t, *cfg.Enabled)

	assert.ErrorIs(t, config.LoadEnv(filepath.Join(t.TempDir(), "missing.env")), config.ErrLoadingEnvFile)
	assert.Panics(t, func() { config.MustLoadEnv(filepath.Join(t.TempDir(), "missing.env")) })
}
